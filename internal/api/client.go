package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kevolive/evaluapp-dashboard/internal/config"
)

// Options son los extras opcionales de una petición.
type Options struct {
	// Suffix son segmentos anidados bajo el recurso, p. ej. {"15", "preguntas"}.
	Suffix []string
	// Body se serializa como JSON cuando no es nil.
	Body interface{}
	// Query se codifica en la URL cuando no está vacío.
	Query url.Values
}

// Client habla con el backend de EvaluApp. No muta estado del llamador:
// solo devuelve resultados para que el llamador los interprete.
type Client struct {
	http        *http.Client
	baseURL     string
	token       string
	resultsPath string
	maxDepth    int
}

func NewClient(cfg config.Settings) *Client {
	return &Client{
		http:        &http.Client{Timeout: 15 * time.Second},
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		token:       cfg.Token,
		resultsPath: cfg.ResultsPath,
		maxDepth:    DefaultMaxDepth,
	}
}

func (c *Client) url(endpoint Endpoint, suffix ...string) string {
	// La ruta de resultados la decide la configuración, no el registro.
	if endpoint == EndpointResultados {
		return joinURL(c.baseURL, c.resultsPath, suffix...)
	}
	return BuildURL(c.baseURL, endpoint, suffix...)
}

// Do ejecuta una petición contra el backend y decodifica la respuesta en
// out cuando no es nil. Devuelve el estado HTTP recibido junto con el error
// tipificado; nunca entra en pánico por una respuesta malformada.
func (c *Client) Do(ctx context.Context, method string, endpoint Endpoint, opts Options, out interface{}) (int, *APIError) {
	log := config.WithContext(ctx)
	u := c.url(endpoint, opts.Suffix...)

	var reqBody io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return 0, decodeError(u, err, nil)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, connectionError(u, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(opts.Query) > 0 {
		req.URL.RawQuery = opts.Query.Encode()
	}

	log.Debugf("[API] %s %s", method, u)

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Errorf("Error en la conexión con la API: %s", u)
		return 0, connectionError(u, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, connectionError(u, err)
	}

	if resp.StatusCode/100 != 2 {
		log.Warnf("[API] %s %s devolvió %d", method, u, resp.StatusCode)
		return resp.StatusCode, httpError(resp.StatusCode, u, data)
	}

	if out == nil {
		return resp.StatusCode, nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "application/json") {
		return resp.StatusCode, contentTypeError(contentType, u, data)
	}

	if err := DecodeBody(data, c.maxDepth, out); err != nil {
		log.WithError(err).Errorf("Error al procesar la respuesta de la API: %s", u)
		return resp.StatusCode, decodeError(u, err, data)
	}
	return resp.StatusCode, nil
}
