package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
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

	var dto CrearSesionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil || !dto.Rol.IsValid() {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	sesion := h.service.Crear(dto.Rol)
	log.Infof("Sesión %s creada con rol %s", sesion.ID, sesion.Rol)
	config.JSON(w, http.StatusCreated, toResponse(sesion))
}

func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	id, err := sesionID(r)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	sesion, err := h.service.Obtener(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, toResponse(sesion))
}

func (h *Handler) AbrirExamen(w http.ResponseWriter, r *http.Request) {
	id, err := sesionID(r)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	examenID, err := strconv.ParseInt(chi.URLParam(r, "examenId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid exam id", http.StatusBadRequest)
		return
	}

	sesion, err := h.service.AbrirExamen(r.Context(), id, examenID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respuesta := ExamenAbiertoResponse{
		Sesion:    toResponse(sesion),
		Preguntas: make([]PreguntaVista, 0, len(sesion.Preguntas)),
	}
	for _, p := range sesion.Preguntas {
		respuesta.Preguntas = append(respuesta.Preguntas, toPreguntaVista(p))
	}
	config.JSON(w, http.StatusOK, respuesta)
}

func (h *Handler) Responder(w http.ResponseWriter, r *http.Request) {
	id, err := sesionID(r)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	preguntaID, err := strconv.ParseInt(chi.URLParam(r, "preguntaId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	var respuesta Respuesta
	if err := json.NewDecoder(r.Body).Decode(&respuesta); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !respuesta.Tipo.IsValid() {
		http.Error(w, "invalid answer type", http.StatusBadRequest)
		return
	}

	sesion, err := h.service.Responder(id, preguntaID, respuesta)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, toResponse(sesion))
}

func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	id, err := sesionID(r)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	if err := h.service.Enviar(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, map[string]string{
		"mensaje": "examen enviado con éxito",
	})
}

func sesionID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSesionNoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrExamenNoDisponible),
		errors.Is(err, ErrExamenNoAbierto),
		errors.Is(err, ErrSinRespuestas),
		errors.Is(err, ErrYaEnviada),
		errors.Is(err, ErrPreguntaAjena):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	var optErr *UnresolvedOptionError
	if errors.As(err, &optErr) {
		config.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"preguntaId": optErr.PreguntaID,
			"etiqueta":   optErr.Etiqueta,
			"mensaje":    optErr.Error(),
		})
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		config.JSON(w, http.StatusBadGateway, apiErr)
		return
	}

	config.WithContext(r.Context()).WithError(err).Error("Error inesperado en la sesión")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
