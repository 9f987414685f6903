package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyUnmarshal(t *testing.T) {
	casos := []struct {
		nombre string
		in     string
		want   string
	}{
		{"FechaPlana", `"2026-09-01"`, "2026-09-01"},
		{"FechaConHora", `"2026-09-01T00:00:00"`, "2026-09-01"},
		{"Null", `null`, ""},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			var d DateOnly
			if err := json.Unmarshal([]byte(c.in), &d); err != nil {
				t.Fatalf("Unmarshal falló: %v", err)
			}
			if d.String() != c.want {
				t.Errorf("se esperaba %q, se recibió %q", c.want, d.String())
			}
		})
	}

	t.Run("FechaInvalida", func(t *testing.T) {
		var d DateOnly
		if err := json.Unmarshal([]byte(`"no es fecha"`), &d); err == nil {
			t.Error("una fecha malformada debía fallar")
		}
	})
}

func TestDateOnlyMarshal(t *testing.T) {
	d := NewDateOnly(2026, time.September, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal falló: %v", err)
	}
	if string(b) != `"2026-09-01"` {
		t.Errorf("JSON incorrecto: %s", b)
	}

	vacia, _ := json.Marshal(DateOnly{})
	if string(vacia) != "null" {
		t.Errorf("una fecha cero debe serializarse como null: %s", vacia)
	}
}
