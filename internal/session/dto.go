package session

import (
	"github.com/google/uuid"

	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
)

type CrearSesionDTO struct {
	Rol user.Rol `json:"rol" validate:"required"`
}

type SesionResponse struct {
	ID          uuid.UUID `json:"id"`
	Rol         user.Rol  `json:"rol"`
	Estado      Estado    `json:"estado"`
	ExamenID    int64     `json:"examenId,omitempty"`
	Respondidas int       `json:"respondidas"`
}

// OpcionVista es la opción tal como la ve el estudiante: nunca incluye la
// marca de corrección.
type OpcionVista struct {
	ID    int64  `json:"id"`
	Texto string `json:"texto"`
}

type PreguntaVista struct {
	ID            int64             `json:"id"`
	TextoPregunta string            `json:"textoPregunta"`
	Tipo          exam.TipoPregunta `json:"tipo"`
	Puntos        int               `json:"puntos"`
	Opciones      []OpcionVista     `json:"opciones,omitempty"`
}

type ExamenAbiertoResponse struct {
	Sesion    SesionResponse  `json:"sesion"`
	Preguntas []PreguntaVista `json:"preguntas"`
}

func toResponse(s *Sesion) SesionResponse {
	return SesionResponse{
		ID:          s.ID,
		Rol:         s.Rol,
		Estado:      s.Estado,
		ExamenID:    s.ExamenID,
		Respondidas: len(s.Respuestas),
	}
}

func toPreguntaVista(p exam.Pregunta) PreguntaVista {
	vista := PreguntaVista{
		ID:            p.ID,
		TextoPregunta: p.TextoPregunta,
		Tipo:          p.Tipo,
		Puntos:        p.Puntos,
	}
	for _, o := range p.Opciones {
		vista.Opciones = append(vista.Opciones, OpcionVista{ID: o.ID, Texto: o.Texto})
	}
	return vista
}
