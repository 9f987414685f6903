package api

import "fmt"

type ErrorKind int

const (
	KindConnection ErrorKind = iota + 1
	KindHTTP
	KindContentType
	KindDecode
)

// Los errores muestran como máximo este prefijo del cuerpo recibido.
const snippetLimit = 500

// APIError describe un fallo al hablar con el backend, con contexto
// suficiente (estado, URL, fragmento del cuerpo) para diagnosticarlo sin
// herramientas de desarrollo.
type APIError struct {
	Kind        ErrorKind `json:"-"`
	Status      int       `json:"status,omitempty"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType,omitempty"`
	Snippet     string    `json:"snippet,omitempty"`
	Mensaje     string    `json:"mensaje"`
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindConnection:
		return fmt.Sprintf("error de conexión con la API (%s): %s", e.URL, e.Mensaje)
	case KindHTTP:
		return fmt.Sprintf("la API respondió %d (%s): %s", e.Status, e.URL, e.Snippet)
	case KindContentType:
		return fmt.Sprintf("la API no devolvió JSON (tipo %q, %s): %s", e.ContentType, e.URL, e.Snippet)
	case KindDecode:
		return fmt.Sprintf("error al procesar la respuesta de la API (%s): %s", e.URL, e.Mensaje)
	default:
		return e.Mensaje
	}
}

func connectionError(url string, err error) *APIError {
	return &APIError{Kind: KindConnection, URL: url, Mensaje: err.Error()}
}

func httpError(status int, url string, body []byte) *APIError {
	return &APIError{
		Kind:    KindHTTP,
		Status:  status,
		URL:     url,
		Snippet: snippet(body),
		Mensaje: fmt.Sprintf("estado HTTP inesperado %d", status),
	}
}

func contentTypeError(contentType, url string, body []byte) *APIError {
	return &APIError{
		Kind:        KindContentType,
		URL:         url,
		ContentType: contentType,
		Snippet:     snippet(body),
		Mensaje:     "el tipo de contenido no es application/json",
	}
}

func decodeError(url string, err error, body []byte) *APIError {
	return &APIError{
		Kind:    KindDecode,
		URL:     url,
		Snippet: snippet(body),
		Mensaje: err.Error(),
	}
}

func snippet(body []byte) string {
	if len(body) <= snippetLimit {
		return string(body)
	}
	return string(body[:snippetLimit]) + "..."
}
