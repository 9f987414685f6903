package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

type Service interface {
	Crear(rol user.Rol) *Sesion
	Obtener(id uuid.UUID) (*Sesion, error)
	AbrirExamen(ctx context.Context, id uuid.UUID, examenID int64) (*Sesion, error)
	Responder(id uuid.UUID, preguntaID int64, r Respuesta) (*Sesion, error)
	Enviar(ctx context.Context, id uuid.UUID) error
}

type service struct {
	store    *Store
	examenes exam.Service
	client   *api.Client
}

func NewService(store *Store, examenes exam.Service, client *api.Client) Service {
	return &service{store: store, examenes: examenes, client: client}
}

func (s *service) Crear(rol user.Rol) *Sesion {
	return s.store.Crear(rol)
}

func (s *service) Obtener(id uuid.UUID) (*Sesion, error) {
	sesion, ok := s.store.Obtener(id)
	if !ok {
		return nil, ErrSesionNoEncontrada
	}
	return sesion, nil
}

// AbrirExamen carga las preguntas de un examen activo y deja la sesión
// lista para responder. Abrir un examen descarta cualquier respuesta
// acumulada antes.
func (s *service) AbrirExamen(ctx context.Context, id uuid.UUID, examenID int64) (*Sesion, error) {
	log := config.WithContext(ctx)

	sesion, ok := s.store.Obtener(id)
	if !ok {
		return nil, ErrSesionNoEncontrada
	}

	activos, err := s.examenes.Activos(ctx, util.Truncate(time.Now()))
	if err != nil {
		return nil, err
	}
	encontrado := false
	for _, e := range activos {
		if e.ID == examenID {
			encontrado = true
			break
		}
	}
	if !encontrado {
		return nil, ErrExamenNoDisponible
	}

	preguntas, err := s.examenes.Preguntas(ctx, examenID)
	if err != nil {
		return nil, err
	}

	sesion.ExamenID = examenID
	sesion.Preguntas = preguntas
	sesion.Respuestas = make(map[int64]Respuesta)
	sesion.Estado = EstadoVacia

	log.Infof("Sesión %s abrió el examen %d (%d preguntas)", sesion.ID, examenID, len(preguntas))
	return sesion, nil
}

// Responder registra la respuesta de una pregunta, reemplazando cualquier
// respuesta previa a esa misma pregunta.
func (s *service) Responder(id uuid.UUID, preguntaID int64, r Respuesta) (*Sesion, error) {
	sesion, ok := s.store.Obtener(id)
	if !ok {
		return nil, ErrSesionNoEncontrada
	}
	if sesion.ExamenID == 0 {
		return nil, ErrExamenNoAbierto
	}
	if sesion.Estado == EstadoEnviada {
		return nil, ErrYaEnviada
	}

	var pregunta *exam.Pregunta
	for i := range sesion.Preguntas {
		if sesion.Preguntas[i].ID == preguntaID {
			pregunta = &sesion.Preguntas[i]
			break
		}
	}
	if pregunta == nil {
		return nil, ErrPreguntaAjena
	}
	if r.Tipo != pregunta.Tipo {
		return nil, fmt.Errorf("la pregunta %d es de tipo %s, no %s", preguntaID, pregunta.Tipo, r.Tipo)
	}

	sesion.Respuestas[preguntaID] = r
	sesion.Estado = EstadoEnProgreso
	return sesion, nil
}

// Enviar arma el envío y lo entrega al backend. Solo el 201 del backend
// marca la sesión como enviada; con cualquier otro desenlace las respuestas
// quedan intactas para reintentar.
func (s *service) Enviar(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	sesion, ok := s.store.Obtener(id)
	if !ok {
		return ErrSesionNoEncontrada
	}
	if sesion.Estado == EstadoEnviada {
		return ErrYaEnviada
	}
	if sesion.Estado != EstadoEnProgreso || len(sesion.Respuestas) == 0 {
		return ErrSinRespuestas
	}

	envio, err := BuildSubmission(sesion.ExamenID, sesion.Respuestas, sesion.Preguntas)
	if err != nil {
		return err
	}

	status, apiErr := s.client.Do(ctx, http.MethodPost, api.EndpointResultados, api.Options{Body: envio}, nil)
	if apiErr != nil {
		log.WithError(apiErr).Errorf("Error al enviar el examen %d", sesion.ExamenID)
		return apiErr
	}
	if status != http.StatusCreated {
		return fmt.Errorf("se esperaba 201 al enviar el examen, se recibió %d", status)
	}

	sesion.Estado = EstadoEnviada
	log.Infof("Examen %d enviado con éxito (sesión %s)", sesion.ExamenID, sesion.ID)
	return nil
}
