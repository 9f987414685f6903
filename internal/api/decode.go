package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultMaxDepth acota el anidamiento aceptado al decodificar respuestas,
// como defensa frente a cuerpos patológicos.
const DefaultMaxDepth = 100

// DecodeBody decodifica el cuerpo de una respuesta en v. Un cuerpo vacío
// equivale a cero registros, no a un error. Si la pasada estricta falla se
// hace exactamente un intento de recuperación: recortar espacios y, solo si
// el texto queda delimitado por corchetes o llaves, volver a decodificar.
func DecodeBody(data []byte, maxDepth int, v interface{}) error {
	if v == nil {
		return nil
	}

	body := data
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("[]")
	}

	err := unmarshalBounded(body, maxDepth, v)
	if err == nil {
		return nil
	}

	trimmed := bytes.TrimSpace(body)
	if isDelimited(trimmed) {
		return unmarshalBounded(trimmed, maxDepth, v)
	}
	return err
}

func unmarshalBounded(data []byte, maxDepth int, v interface{}) error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth := nestingDepth(data); depth > maxDepth {
		return fmt.Errorf("límite de anidamiento alcanzado (máximo %d)", maxDepth)
	}
	return json.Unmarshal(data, v)
}

func isDelimited(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	first, last := b[0], b[len(b)-1]
	return (first == '[' && last == ']') || (first == '{' && last == '}')
}

// nestingDepth recorre los tokens del documento y devuelve la profundidad
// máxima de objetos y arreglos. Los errores de sintaxis se ignoran aquí:
// los reporta la decodificación propiamente dicha.
func nestingDepth(data []byte) int {
	dec := json.NewDecoder(bytes.NewReader(data))
	depth, max := 0, 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return max
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '[', '{':
				depth++
				if depth > max {
					max = depth
				}
			case ']', '}':
				depth--
			}
		}
	}
}
