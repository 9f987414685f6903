package exam

import (
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

// ExamenRequestDTO es el cuerpo que el backend espera en POST y PUT de
// /examenes. El PUT reemplaza el registro completo: hay que reenviar todos
// los campos, incluidos los preguntasIds ya asociados, o se pierden.
type ExamenRequestDTO struct {
	Titulo       string        `json:"titulo" validate:"required"`
	Descripcion  string        `json:"descripcion"`
	FechaInicio  util.DateOnly `json:"fechaInicio"`
	FechaFin     util.DateOnly `json:"fechaFin"`
	CreadorID    int64         `json:"creadorId"`
	PreguntasIds []int64       `json:"preguntasIds"`
}

// PreguntaRequestDTO es el cuerpo de POST /preguntas.
type PreguntaRequestDTO struct {
	TextoPregunta string       `json:"textoPregunta"`
	TipoPregunta  TipoPregunta `json:"tipoPregunta"`
	ExamenID      int64        `json:"examenId"`
	Puntos        int          `json:"puntos"`
	Opciones      []Opcion     `json:"opciones,omitempty"`
}

type OpcionInput struct {
	Texto string `json:"texto" validate:"required"`
}

type PreguntaInput struct {
	TextoPregunta string        `json:"textoPregunta" validate:"required"`
	TipoPregunta  TipoPregunta  `json:"tipoPregunta" validate:"required"`
	Opciones      []OpcionInput `json:"opciones" validate:"dive"`
	Puntos        int           `json:"puntos"`
}

type CreateExamenInput struct {
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	FechaInicio util.DateOnly   `json:"fechaInicio"`
	FechaFin    util.DateOnly   `json:"fechaFin"`
	Preguntas   []PreguntaInput `json:"preguntas" validate:"dive"`
}

// ResultadoPregunta es el desenlace individual de crear una pregunta
// durante la creación de un examen.
type ResultadoPregunta struct {
	ID            int64  `json:"id,omitempty"`
	TextoPregunta string `json:"textoPregunta"`
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
}

// CreacionResultado reporta el examen creado junto con el desenlace de cada
// pregunta, sin colapsar los fallos parciales en un único pasa/no pasa.
type CreacionResultado struct {
	Examen    Examen              `json:"examen"`
	Preguntas []ResultadoPregunta `json:"preguntas"`
	Creadas   int                 `json:"creadas"`
	Fallidas  int                 `json:"fallidas"`
}
