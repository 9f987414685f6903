package exam

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

type Service interface {
	Crear(ctx context.Context, in CreateExamenInput) (*CreacionResultado, error)
	Listar(ctx context.Context) ([]Examen, error)
	Actualizar(ctx context.Context, id int64, dto ExamenRequestDTO) error
	Eliminar(ctx context.Context, id int64) error
	Preguntas(ctx context.Context, examenID int64) ([]Pregunta, error)
	Activos(ctx context.Context, hoy util.DateOnly) ([]Examen, error)
}

type service struct {
	client    *api.Client
	creadorID int64
}

func NewService(client *api.Client, creadorID int64) Service {
	return &service{client: client, creadorID: creadorID}
}

// Crear primero registra el examen con la lista de preguntas vacía y luego
// intenta crear cada pregunta por separado. Si el examen falla no se intenta
// ninguna pregunta; si una pregunta falla se registra el desenlace y se
// continúa con las siguientes, sin deshacer nada de lo ya creado.
func (s *service) Crear(ctx context.Context, in CreateExamenInput) (*CreacionResultado, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(in.Titulo) == "" {
		return nil, &ValidationError{Campo: "titulo", Motivo: "el título es obligatorio"}
	}
	if !in.FechaInicio.Before(in.FechaFin) {
		return nil, &ValidationError{Campo: "fechaInicio", Motivo: "la fecha de inicio debe ser anterior a la de fin"}
	}
	for _, p := range in.Preguntas {
		if !p.TipoPregunta.IsValid() {
			return nil, &ValidationError{
				Campo:  "tipoPregunta",
				Motivo: fmt.Sprintf("tipo de pregunta desconocido %q", p.TipoPregunta),
			}
		}
	}

	dto := ExamenRequestDTO{
		Titulo:       in.Titulo,
		Descripcion:  in.Descripcion,
		FechaInicio:  in.FechaInicio,
		FechaFin:     in.FechaFin,
		CreadorID:    s.creadorID,
		PreguntasIds: []int64{},
	}

	var creado Examen
	if _, apiErr := s.client.Do(ctx, http.MethodPost, api.EndpointExamenes, api.Options{Body: dto}, &creado); apiErr != nil {
		log.WithError(apiErr).Error("Error al crear el examen")
		return nil, apiErr
	}
	log.Infof("Examen creado con éxito. ID: %d", creado.ID)

	resultado := &CreacionResultado{Examen: creado}
	for _, p := range in.Preguntas {
		payload := PreguntaRequestDTO{
			TextoPregunta: p.TextoPregunta,
			TipoPregunta:  p.TipoPregunta,
			ExamenID:      creado.ID,
			Puntos:        p.Puntos,
			Opciones:      opcionesDe(p),
		}
		if payload.Puntos <= 0 {
			payload.Puntos = 1
		}

		var pregunta Pregunta
		_, apiErr := s.client.Do(ctx, http.MethodPost, api.EndpointPreguntas, api.Options{Body: payload}, &pregunta)

		desenlace := ResultadoPregunta{TextoPregunta: p.TextoPregunta, OK: apiErr == nil}
		if apiErr != nil {
			// Cada pregunta es independiente: se anota el fallo y se
			// sigue con las demás.
			desenlace.Error = apiErr.Error()
			resultado.Fallidas++
			log.WithError(apiErr).Errorf("Error al crear la pregunta: %s", p.TextoPregunta)
		} else {
			desenlace.ID = pregunta.ID
			resultado.Creadas++
			log.Infof("Pregunta agregada: %s", p.TextoPregunta)
		}
		resultado.Preguntas = append(resultado.Preguntas, desenlace)
	}

	return resultado, nil
}

func (s *service) Listar(ctx context.Context) ([]Examen, error) {
	var examenes []Examen
	if _, apiErr := s.client.Do(ctx, http.MethodGet, api.EndpointExamenes, api.Options{}, &examenes); apiErr != nil {
		return nil, apiErr
	}
	return examenes, nil
}

func (s *service) Actualizar(ctx context.Context, id int64, dto ExamenRequestDTO) error {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Titulo) == "" {
		return &ValidationError{Campo: "titulo", Motivo: "el título es obligatorio"}
	}
	if !dto.FechaInicio.Before(dto.FechaFin) {
		return &ValidationError{Campo: "fechaInicio", Motivo: "la fecha de inicio debe ser anterior a la de fin"}
	}

	opts := api.Options{Suffix: []string{strconv.FormatInt(id, 10)}, Body: dto}
	if _, apiErr := s.client.Do(ctx, http.MethodPut, api.EndpointExamenes, opts, nil); apiErr != nil {
		log.WithError(apiErr).Errorf("Error al actualizar el examen %d", id)
		return apiErr
	}
	log.Infof("Examen %d actualizado con éxito", id)
	return nil
}

func (s *service) Eliminar(ctx context.Context, id int64) error {
	log := config.WithContext(ctx)

	opts := api.Options{Suffix: []string{strconv.FormatInt(id, 10)}}
	status, apiErr := s.client.Do(ctx, http.MethodDelete, api.EndpointExamenes, opts, nil)
	if apiErr != nil {
		log.WithError(apiErr).Errorf("Error al eliminar el examen %d", id)
		return apiErr
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("se esperaba 204 al eliminar el examen %d, se recibió %d", id, status)
	}
	log.Infof("Examen %d eliminado con éxito", id)
	return nil
}

func (s *service) Preguntas(ctx context.Context, examenID int64) ([]Pregunta, error) {
	var preguntas []Pregunta
	opts := api.Options{Suffix: []string{strconv.FormatInt(examenID, 10), "preguntas"}}
	if _, apiErr := s.client.Do(ctx, http.MethodGet, api.EndpointExamenes, opts, &preguntas); apiErr != nil {
		return nil, apiErr
	}
	return preguntas, nil
}

func (s *service) Activos(ctx context.Context, hoy util.DateOnly) ([]Examen, error) {
	examenes, err := s.Listar(ctx)
	if err != nil {
		return nil, err
	}

	activos := make([]Examen, 0, len(examenes))
	for _, e := range examenes {
		if EsActivo(e, hoy) {
			activos = append(activos, e)
		}
	}
	return activos, nil
}

// Las opciones se crean sin marcar ninguna como correcta; eso se ajusta
// después desde la gestión del examen.
func opcionesDe(p PreguntaInput) []Opcion {
	if p.TipoPregunta != SELECCION_UNICA || len(p.Opciones) == 0 {
		return nil
	}
	opciones := make([]Opcion, 0, len(p.Opciones))
	for _, o := range p.Opciones {
		opciones = append(opciones, Opcion{Texto: o.Texto, EsCorrecta: false})
	}
	return opciones
}
