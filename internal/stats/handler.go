package stats

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

func (h *Handler) ExamenesPorMes(w http.ResponseWriter, r *http.Request) {
	estadisticas, err := h.service.ExamenesPorMes(r.Context())
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			config.JSON(w, http.StatusBadGateway, apiErr)
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Error al calcular estadísticas")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, estadisticas)
}
