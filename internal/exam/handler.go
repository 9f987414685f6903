package exam

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var in CreateExamenInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.WithError(err).Error("Cuerpo inválido para crear examen")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resultado, err := h.service.Crear(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, resultado)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	examenes, err := h.service.Listar(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if examenes == nil {
		examenes = []Examen{}
	}
	config.JSON(w, http.StatusOK, examenes)
}

func (h *Handler) Activos(w http.ResponseWriter, r *http.Request) {
	activos, err := h.service.Activos(r.Context(), util.Truncate(time.Now()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if activos == nil {
		activos = []Examen{}
	}
	config.JSON(w, http.StatusOK, activos)
}

func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := examenID(r)
	if err != nil {
		http.Error(w, "invalid exam id", http.StatusBadRequest)
		return
	}

	var dto ExamenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Cuerpo inválido para actualizar examen")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Actualizar(r.Context(), id, dto); err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"mensaje": "examen actualizado con éxito",
	})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := examenID(r)
	if err != nil {
		http.Error(w, "invalid exam id", http.StatusBadRequest)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"mensaje": "examen eliminado con éxito",
	})
}

func (h *Handler) Preguntas(w http.ResponseWriter, r *http.Request) {
	id, err := examenID(r)
	if err != nil {
		http.Error(w, "invalid exam id", http.StatusBadRequest)
		return
	}

	preguntas, err := h.service.Preguntas(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if preguntas == nil {
		preguntas = []Pregunta{}
	}
	config.JSON(w, http.StatusOK, preguntas)
}

func examenID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeError traduce los errores del servicio: las validaciones locales son
// 400 y los fallos del backend se reenvían como 502 con su contexto.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		config.JSON(w, http.StatusBadRequest, map[string]string{
			"campo":  vErr.Campo,
			"motivo": vErr.Motivo,
		})
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		config.JSON(w, http.StatusBadGateway, apiErr)
		return
	}

	config.WithContext(r.Context()).WithError(err).Error("Error inesperado")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
