package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/middlewares"
	"github.com/Kevolive/evaluapp-dashboard/internal/session"
	"github.com/Kevolive/evaluapp-dashboard/internal/stats"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
)

type RouterConfig struct {
	ExamHandler    *exam.Handler
	SessionHandler *session.Handler
	UserHandler    *user.Handler
	StatsHandler   *stats.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/salud", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Mount("/examenes", exam.Routes(cfg.ExamHandler))
	r.Mount("/sesiones", session.Routes(cfg.SessionHandler))
	r.Mount("/usuarios", user.Routes(cfg.UserHandler))
	r.Mount("/estadisticas", stats.Routes(cfg.StatsHandler))

	return r
}
