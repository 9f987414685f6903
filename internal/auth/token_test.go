package auth_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kevolive/evaluapp-dashboard/internal/auth"
)

func tokenConClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	if err != nil {
		t.Fatalf("no se pudo firmar el token de prueba: %v", err)
	}
	return token
}

func TestCreatorIDFromToken(t *testing.T) {
	t.Run("ClaimNumerico", func(t *testing.T) {
		token := tokenConClaims(t, jwt.MapClaims{"userId": 7})
		if got := auth.CreatorIDFromToken(token, 1); got != 7 {
			t.Errorf("se esperaba 7, se recibió %d", got)
		}
	})

	t.Run("SubComoCadena", func(t *testing.T) {
		token := tokenConClaims(t, jwt.MapClaims{"sub": "42"})
		if got := auth.CreatorIDFromToken(token, 1); got != 42 {
			t.Errorf("se esperaba 42, se recibió %d", got)
		}
	})

	t.Run("TokenVacioUsaElValorPorDefecto", func(t *testing.T) {
		if got := auth.CreatorIDFromToken("", 3); got != 3 {
			t.Errorf("se esperaba 3, se recibió %d", got)
		}
	})

	t.Run("TokenMalformadoUsaElValorPorDefecto", func(t *testing.T) {
		if got := auth.CreatorIDFromToken("no-es-un-jwt", 3); got != 3 {
			t.Errorf("se esperaba 3, se recibió %d", got)
		}
	})

	t.Run("SinClaimsUtilesUsaElValorPorDefecto", func(t *testing.T) {
		token := tokenConClaims(t, jwt.MapClaims{"rol": "TEACHER"})
		if got := auth.CreatorIDFromToken(token, 5); got != 5 {
			t.Errorf("se esperaba 5, se recibió %d", got)
		}
	})
}
