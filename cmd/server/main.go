package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	"github.com/Kevolive/evaluapp-dashboard/internal/container"
	"github.com/Kevolive/evaluapp-dashboard/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	// En local el .env es opcional; en Lambda las variables vienen del
	// entorno de la función.
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		ExamHandler:    c.ExamContainer.Handler,
		SessionHandler: c.SessionContainer.Handler,
		UserHandler:    c.UserContainer.Handler,
		StatsHandler:   c.StatsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r.(*chi.Mux))
		lambda.Start(handler)
		return
	}

	addr := ":" + config.App.Port
	logrus.Infof("Panel de EvaluApp escuchando en %s (backend: %s)", addr, config.App.APIBaseURL)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("El servidor se detuvo")
	}
}
