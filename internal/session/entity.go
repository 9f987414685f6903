package session

import (
	"github.com/google/uuid"

	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
)

type Estado string

const (
	EstadoVacia      Estado = "VACIA"
	EstadoEnProgreso Estado = "EN_PROGRESO"
	EstadoEnviada    Estado = "ENVIADA"
)

// Respuesta es la respuesta en progreso a una pregunta: la etiqueta elegida
// en selección única o el texto libre en texto abierto.
type Respuesta struct {
	Tipo     exam.TipoPregunta `json:"tipo"`
	Etiqueta string            `json:"etiqueta,omitempty"`
	Texto    string            `json:"texto,omitempty"`
}

// Sesion es el contexto mutable de una interacción: el rol elegido, el
// examen abierto y las respuestas acumuladas. Pertenece en exclusiva a esa
// interacción; abrir otro examen reemplaza las respuestas.
type Sesion struct {
	ID         uuid.UUID
	Rol        user.Rol
	ExamenID   int64
	Estado     Estado
	Respuestas map[int64]Respuesta
	Preguntas  []exam.Pregunta
}
