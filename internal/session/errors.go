package session

import (
	"errors"
	"fmt"
)

var (
	ErrSesionNoEncontrada = errors.New("sesión no encontrada")
	ErrExamenNoDisponible = errors.New("el examen no está disponible actualmente")
	ErrExamenNoAbierto    = errors.New("la sesión no tiene un examen abierto")
	ErrSinRespuestas      = errors.New("la sesión no tiene respuestas registradas")
	ErrYaEnviada          = errors.New("el examen ya fue enviado en esta sesión")
	ErrPreguntaAjena      = errors.New("la pregunta no pertenece al examen abierto")
)

// UnresolvedOptionError indica que la etiqueta elegida no coincide con el
// texto de ninguna opción de la pregunta.
type UnresolvedOptionError struct {
	PreguntaID int64
	Etiqueta   string
}

func (e *UnresolvedOptionError) Error() string {
	return fmt.Sprintf("la pregunta %d no tiene una opción con el texto %q", e.PreguntaID, e.Etiqueta)
}
