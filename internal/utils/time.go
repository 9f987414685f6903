package util

import (
	"strings"
	"time"
)

// DateOnly representa las fechas ISO (yyyy-mm-dd) que maneja el backend
// de EvaluApp en fechaInicio y fechaFin.
type DateOnly struct {
	time.Time
}

const layout = "2006-01-02"

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Truncate recorta un instante a su día en UTC.
func Truncate(t time.Time) DateOnly {
	return NewDateOnly(t.Year(), t.Month(), t.Day())
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	// El backend a veces devuelve la fecha con hora adjunta.
	if idx := strings.IndexAny(s, "T "); idx > 0 {
		s = s[:idx]
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(layout) + `"`), nil
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Time.Equal(other.Time)
}

func (d DateOnly) Before(other DateOnly) bool {
	return d.Time.Before(other.Time)
}

func (d DateOnly) After(other DateOnly) bool {
	return d.Time.After(other.Time)
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layout)
}
