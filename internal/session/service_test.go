package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kevolive/evaluapp-dashboard/internal/api"
	"github.com/Kevolive/evaluapp-dashboard/internal/config"
	"github.com/Kevolive/evaluapp-dashboard/internal/exam"
	"github.com/Kevolive/evaluapp-dashboard/internal/user"
	util "github.com/Kevolive/evaluapp-dashboard/internal/utils"
)

// entorno arma un backend falso con un examen activo listo para rendir.
type entorno struct {
	srv           *httptest.Server
	service       Service
	envios        []EnvioExamen
	estadoDeEnvio int
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()

	e := &entorno{estadoDeEnvio: http.StatusCreated}
	hoy := util.Truncate(time.Now())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /examenes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]exam.Examen{
			{ID: 1, Titulo: "Activo", FechaInicio: hoy, FechaFin: hoy, PreguntasIds: []int64{1, 2}},
			{ID: 2, Titulo: "Sin preguntas", FechaInicio: hoy, FechaFin: hoy},
		})
	})
	mux.HandleFunc("GET /examenes/1/preguntas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]exam.Pregunta{
			{ID: 1, Tipo: exam.SELECCION_UNICA, Opciones: []exam.Opcion{{ID: 10, Texto: "A"}, {ID: 11, Texto: "B"}}},
			{ID: 2, Tipo: exam.TEXTO_ABIERTO},
		})
	})
	mux.HandleFunc("POST /resultados", func(w http.ResponseWriter, r *http.Request) {
		var envio EnvioExamen
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envio))
		e.envios = append(e.envios, envio)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(e.estadoDeEnvio)
	})

	e.srv = httptest.NewServer(mux)
	t.Cleanup(e.srv.Close)

	client := api.NewClient(config.Settings{
		APIBaseURL:  e.srv.URL,
		Token:       "token-de-prueba",
		ResultsPath: "/resultados",
	})
	examenes := exam.NewService(client, 1)
	e.service = NewService(NewStore(), examenes, client)
	return e
}

func (e *entorno) sesionConExamen(t *testing.T) *Sesion {
	t.Helper()
	sesion := e.service.Crear(user.STUDENT)
	abierta, err := e.service.AbrirExamen(context.Background(), sesion.ID, 1)
	require.NoError(t, err)
	return abierta
}

func TestAbrirExamen(t *testing.T) {
	t.Run("ExamenActivo", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		require.Equal(t, EstadoVacia, sesion.Estado)
		require.Equal(t, int64(1), sesion.ExamenID)
		require.Len(t, sesion.Preguntas, 2)
		require.Empty(t, sesion.Respuestas)
	})

	t.Run("ExamenSinPreguntasNoEstaDisponible", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.service.Crear(user.STUDENT)

		_, err := e.service.AbrirExamen(context.Background(), sesion.ID, 2)
		require.ErrorIs(t, err, ErrExamenNoDisponible)
	})

	t.Run("AbrirOtroExamenDescartaRespuestas", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 2, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "borrador"})
		require.NoError(t, err)

		reabierta, err := e.service.AbrirExamen(context.Background(), sesion.ID, 1)
		require.NoError(t, err)
		require.Empty(t, reabierta.Respuestas)
		require.Equal(t, EstadoVacia, reabierta.Estado)
	})

	t.Run("SesionInexistente", func(t *testing.T) {
		e := nuevoEntorno(t)
		_, err := e.service.AbrirExamen(context.Background(), [16]byte{1}, 1)
		require.ErrorIs(t, err, ErrSesionNoEncontrada)
	})
}

func TestResponder(t *testing.T) {
	t.Run("TransicionAEnProgreso", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		actualizada, err := e.service.Responder(sesion.ID, 1, Respuesta{Tipo: exam.SELECCION_UNICA, Etiqueta: "B"})
		require.NoError(t, err)
		require.Equal(t, EstadoEnProgreso, actualizada.Estado)
		require.Len(t, actualizada.Respuestas, 1)
	})

	t.Run("SobrescribeLaRespuestaAnterior", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 1, Respuesta{Tipo: exam.SELECCION_UNICA, Etiqueta: "B"})
		require.NoError(t, err)
		actualizada, err := e.service.Responder(sesion.ID, 1, Respuesta{Tipo: exam.SELECCION_UNICA, Etiqueta: "A"})
		require.NoError(t, err)

		require.Len(t, actualizada.Respuestas, 1)
		require.Equal(t, "A", actualizada.Respuestas[1].Etiqueta)
	})

	t.Run("PreguntaDeOtroExamen", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 99, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "x"})
		require.ErrorIs(t, err, ErrPreguntaAjena)
	})

	t.Run("TipoQueNoCoincide", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 1, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "x"})
		require.Error(t, err)
	})
}

func TestEnviar(t *testing.T) {
	t.Run("Con201QuedaEnviada", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 1, Respuesta{Tipo: exam.SELECCION_UNICA, Etiqueta: "B"})
		require.NoError(t, err)
		_, err = e.service.Responder(sesion.ID, 2, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "hello"})
		require.NoError(t, err)

		require.NoError(t, e.service.Enviar(context.Background(), sesion.ID))

		enviada, err := e.service.Obtener(sesion.ID)
		require.NoError(t, err)
		require.Equal(t, EstadoEnviada, enviada.Estado)

		require.Len(t, e.envios, 1)
		require.Equal(t, []int64{11}, e.envios[0].OpcionesSeleccionadas)
		require.Len(t, e.envios[0].RespuestasTexto, 1)
		require.Equal(t, "hello", e.envios[0].RespuestasTexto[0].Respuesta)
	})

	t.Run("SinRespuestasNoEnvia", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		require.ErrorIs(t, e.service.Enviar(context.Background(), sesion.ID), ErrSinRespuestas)
		require.Empty(t, e.envios)
	})

	t.Run("EstadoDistintoDe201SigueEnProgreso", func(t *testing.T) {
		e := nuevoEntorno(t)
		e.estadoDeEnvio = http.StatusOK
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 2, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "borrador"})
		require.NoError(t, err)

		require.Error(t, e.service.Enviar(context.Background(), sesion.ID))

		intacta, err := e.service.Obtener(sesion.ID)
		require.NoError(t, err)
		require.Equal(t, EstadoEnProgreso, intacta.Estado)
		require.Len(t, intacta.Respuestas, 1, "las respuestas quedan intactas para reintentar")
	})

	t.Run("EtiquetaIrresolubleNoEnvia", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		// La respuesta se registra con una etiqueta que luego no coincide
		// con ninguna opción al armar el envío.
		sesionInterna, err := e.service.Obtener(sesion.ID)
		require.NoError(t, err)
		sesionInterna.Respuestas[1] = Respuesta{Tipo: exam.SELECCION_UNICA, Etiqueta: "Z"}
		sesionInterna.Estado = EstadoEnProgreso

		err = e.service.Enviar(context.Background(), sesion.ID)
		var optErr *UnresolvedOptionError
		require.ErrorAs(t, err, &optErr)
		require.Empty(t, e.envios)
	})

	t.Run("ReenvioDeUnaSesionEnviada", func(t *testing.T) {
		e := nuevoEntorno(t)
		sesion := e.sesionConExamen(t)

		_, err := e.service.Responder(sesion.ID, 2, Respuesta{Tipo: exam.TEXTO_ABIERTO, Texto: "hello"})
		require.NoError(t, err)
		require.NoError(t, e.service.Enviar(context.Background(), sesion.ID))

		require.True(t, errors.Is(e.service.Enviar(context.Background(), sesion.ID), ErrYaEnviada))
	})
}
