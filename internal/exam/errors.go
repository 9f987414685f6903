package exam

import "fmt"

// ValidationError es un fallo local detectado antes de tocar la red.
type ValidationError struct {
	Campo  string
	Motivo string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Motivo)
}
