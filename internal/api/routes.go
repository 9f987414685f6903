package api

import (
	"fmt"
	"strings"
)

// Endpoint es el nombre lógico de un recurso del backend de EvaluApp.
type Endpoint string

const (
	EndpointExamenes   Endpoint = "examenes"
	EndpointPreguntas  Endpoint = "preguntas"
	EndpointResultados Endpoint = "resultados"
	EndpointUsuarios   Endpoint = "usuarios"
)

var paths = map[Endpoint]string{
	EndpointExamenes:  "/examenes",
	EndpointPreguntas: "/preguntas",
	EndpointUsuarios:  "/admin/users",
}

// Path devuelve la ruta relativa de un recurso. Un nombre desconocido es un
// error de programación, no una condición recuperable.
func Path(endpoint Endpoint) string {
	p, ok := paths[endpoint]
	if !ok {
		panic(fmt.Sprintf("api: endpoint desconocido %q", endpoint))
	}
	return p
}

// BuildURL une la URL base con la ruta del recurso y los segmentos
// anidados, p. ej. BuildURL(base, EndpointExamenes, "15", "preguntas").
func BuildURL(base string, endpoint Endpoint, suffix ...string) string {
	return joinURL(base, Path(endpoint), suffix...)
}

func joinURL(base, path string, suffix ...string) string {
	u := strings.TrimRight(base, "/") + path
	for _, s := range suffix {
		u += "/" + strings.Trim(s, "/")
	}
	return u
}
