package session

import (
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
)

type RespuestaTexto struct {
	PreguntaID int64  `json:"preguntaId"`
	Respuesta  string `json:"respuesta"`
}

// EnvioExamen es el cuerpo que el backend espera al entregar un examen.
// respuestasTexto es una lista: un examen puede tener varias preguntas de
// texto abierto.
type EnvioExamen struct {
	ExamenID              int64            `json:"examenId"`
	OpcionesSeleccionadas []int64          `json:"opcionesSeleccionadas"`
	RespuestasTexto       []RespuestaTexto `json:"respuestasTexto"`
}

// BuildSubmission arma el envío final a partir de las respuestas
// acumuladas. Para selección única la etiqueta elegida se resuelve al id de
// la opción cuyo texto coincide exactamente; el texto libre se copia tal
// cual. Recorre las preguntas en su orden para que el resultado sea
// determinista.
func BuildSubmission(examenID int64, respuestas map[int64]Respuesta, preguntas []exam.Pregunta) (*EnvioExamen, error) {
	envio := &EnvioExamen{
		ExamenID:              examenID,
		OpcionesSeleccionadas: []int64{},
		RespuestasTexto:       []RespuestaTexto{},
	}

	for _, p := range preguntas {
		r, ok := respuestas[p.ID]
		if !ok {
			continue
		}

		switch r.Tipo {
		case exam.SELECCION_UNICA:
			opcionID, ok := resolverOpcion(p, r.Etiqueta)
			if !ok {
				return nil, &UnresolvedOptionError{PreguntaID: p.ID, Etiqueta: r.Etiqueta}
			}
			envio.OpcionesSeleccionadas = append(envio.OpcionesSeleccionadas, opcionID)
		case exam.TEXTO_ABIERTO:
			envio.RespuestasTexto = append(envio.RespuestasTexto, RespuestaTexto{
				PreguntaID: p.ID,
				Respuesta:  r.Texto,
			})
		}
	}

	return envio, nil
}

func resolverOpcion(p exam.Pregunta, etiqueta string) (int64, bool) {
	for _, o := range p.Opciones {
		if o.Texto == etiqueta {
			return o.ID, true
		}
	}
	return 0, false
}
