package exam

import (
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

// Examen referencia a sus preguntas solo por id; el backend es el dueño de
// los objetos Pregunta.
type Examen struct {
	ID            int64         `json:"id,omitempty"`
	Titulo        string        `json:"titulo"`
	Descripcion   string        `json:"descripcion"`
	FechaInicio   util.DateOnly `json:"fechaInicio"`
	FechaFin      util.DateOnly `json:"fechaFin"`
	CreadorID     int64         `json:"creadorId"`
	CreadorNombre string        `json:"creadorNombre,omitempty"`
	PreguntasIds  []int64       `json:"preguntasIds"`
}

type Pregunta struct {
	ID            int64        `json:"id,omitempty"`
	ExamenID      int64        `json:"examenId,omitempty"`
	TextoPregunta string       `json:"textoPregunta"`
	Tipo          TipoPregunta `json:"tipo"`
	Puntos        int          `json:"puntos"`
	Opciones      []Opcion     `json:"opciones,omitempty"`
}

type Opcion struct {
	ID         int64  `json:"id,omitempty"`
	Texto      string `json:"textoPregunta"`
	EsCorrecta bool   `json:"esCorrecta"`
}
