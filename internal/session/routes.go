package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Crear)
	r.Get("/{id}", h.Obtener)
	r.Post("/{id}/examenes/{examenId}", h.AbrirExamen)
	r.Put("/{id}/respuestas/{preguntaId}", h.Responder)
	r.Post("/{id}/envio", h.Enviar)
	return r
}
