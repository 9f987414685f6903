package middlewares

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Kevolive/evaluapp-dashboard/internal/config"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		inicio := time.Now()

		next.ServeHTTP(ww, r)

		config.WithContext(r.Context()).
			WithField("status", ww.Status()).
			WithField("duration", time.Since(inicio).String()).
			Infof("%s %s", r.Method, r.URL.Path)
	})
}
