package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Crear)
	r.Get("/", h.Listar)
	r.Get("/activos", h.Activos)
	r.Put("/{id}", h.Actualizar)
	r.Delete("/{id}", h.Eliminar)
	r.Get("/{id}/preguntas", h.Preguntas)
	return r
}
