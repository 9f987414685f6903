package user

import (
	"errors"
	"net/http"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	usuarios, err := h.service.Listar(r.Context())
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			config.JSON(w, http.StatusBadGateway, apiErr)
			return
		}
		log.WithError(err).Error("Error al listar usuarios")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if usuarios == nil {
		usuarios = []Usuario{}
	}
	config.JSON(w, http.StatusOK, usuarios)
}
