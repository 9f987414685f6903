package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// CreatorIDFromToken extrae el id del usuario de las claims del token
// configurado, sin verificar la firma: quien valida el token es el backend,
// aquí solo hace falta el id para creadorId. Si no se puede extraer se usa
// el valor por defecto.
func CreatorIDFromToken(token string, fallback int64) int64 {
	if token == "" {
		return fallback
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	for _, campo := range []string{"userId", "creadorId", "sub"} {
		if id, ok := numericClaim(claims[campo]); ok {
			return id
		}
	}
	return fallback
}

func numericClaim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int64(n), true
		}
	case string:
		if id, err := strconv.ParseInt(n, 10, 64); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
