package exam

import (
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

// EsActivo indica si un examen puede rendirse en la fecha dada: la ventana
// [fechaInicio, fechaFin] la contiene (ambos extremos inclusive) y el examen
// tiene al menos una pregunta asociada.
func EsActivo(e Examen, hoy util.DateOnly) bool {
	if len(e.PreguntasIds) == 0 {
		return false
	}
	if e.FechaInicio.IsZero() || e.FechaFin.IsZero() {
		return false
	}
	return !hoy.Before(e.FechaInicio) && !hoy.After(e.FechaFin)
}
