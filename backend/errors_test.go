package backend

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiErrorFromBody(t *testing.T, status int, body string) *APIError {
	t.Helper()
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
	err := decodeAPIError(resp)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestDecodeAPIError(t *testing.T) {
	t.Run("string detail", func(t *testing.T) {
		apiErr := apiErrorFromBody(t, 401, `{"detail": "Credenciales inválidas"}`)
		assert.Equal(t, 401, apiErr.Status)
		assert.Equal(t, "Credenciales inválidas", apiErr.Message)
		assert.True(t, apiErr.IsUnauthorized())
	})

	t.Run("validation detail list", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "password"], "type": "string_too_short", "msg": "too short", "ctx": {"min_length": 8}}]}`
		apiErr := apiErrorFromBody(t, 422, body)
		require.Len(t, apiErr.Detail, 1)
		assert.Equal(t, "string_too_short", apiErr.Detail[0].Type)
		assert.Equal(t, []string{"body", "password"}, apiErr.Detail[0].Loc)
	})

	t.Run("non JSON body keeps the status message", func(t *testing.T) {
		apiErr := apiErrorFromBody(t, 500, `<html>Internal Server Error</html>`)
		assert.Equal(t, "HTTP 500", apiErr.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		apiErr := apiErrorFromBody(t, 503, "")
		assert.Equal(t, "HTTP 503", apiErr.Message)
	})
}

func TestParseServerError_General(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		err := apiErrorFromBody(t, 401, `{"detail": "Credenciales inválidas"}`)
		fielded := ParseServerError(err)
		assert.Equal(t, "Correo electrónico o contraseña incorrectos", fielded.GeneralError)
		assert.Empty(t, fielded.FieldErrors)
	})

	t.Run("user not found", func(t *testing.T) {
		err := apiErrorFromBody(t, 404, `{"detail": "Usuario no encontrado"}`)
		fielded := ParseServerError(err)
		assert.Equal(t, "No existe una cuenta con este correo electrónico", fielded.GeneralError)
	})

	t.Run("blocked account", func(t *testing.T) {
		err := apiErrorFromBody(t, 403, `{"detail": "Cuenta bloqueada por demasiados intentos"}`)
		fielded := ParseServerError(err)
		assert.Equal(t, "Tu cuenta ha sido bloqueada. Contacta soporte", fielded.GeneralError)
	})

	t.Run("unverified email", func(t *testing.T) {
		err := apiErrorFromBody(t, 403, `{"detail": "Email no verificado"}`)
		fielded := ParseServerError(err)
		assert.Equal(t, "Debes verificar tu correo electrónico antes de iniciar sesión", fielded.GeneralError)
	})

	t.Run("unknown phrase passes through", func(t *testing.T) {
		err := apiErrorFromBody(t, 409, `{"detail": "La habitación ya está reservada"}`)
		fielded := ParseServerError(err)
		assert.Equal(t, "La habitación ya está reservada", fielded.GeneralError)
	})

	t.Run("plain error keeps its message", func(t *testing.T) {
		fielded := ParseServerError(errors.New("algo salió mal"))
		assert.Equal(t, "algo salió mal", fielded.GeneralError)
	})

	t.Run("transport failure", func(t *testing.T) {
		fielded := ParseServerError(&TransportError{Err: errors.New("dial tcp: connection refused")})
		assert.Equal(t, "Servicio no disponible. Inténtalo nuevamente.", fielded.GeneralError)
	})

	t.Run("nil error degrades to unknown", func(t *testing.T) {
		assert.Equal(t, "Error desconocido", ParseServerError(nil).GeneralError)
	})
}

func TestParseServerError_Fields(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "login"], "type": "missing", "msg": "Field required"}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Empty(t, fielded.GeneralError)
		assert.Equal(t, "Este campo es requerido", fielded.FieldErrors["login"])
	})

	t.Run("email maps to the login field", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "email"], "type": "value_error", "msg": "value is not a valid email address"}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "Ingresa un correo electrónico válido", fielded.FieldErrors["login"])
	})

	t.Run("short password uses the ctx minimum", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "password"], "type": "string_too_short", "msg": "too short", "ctx": {"min_length": 12}}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "La contraseña debe tener al menos 12 caracteres", fielded.FieldErrors["password"])
	})

	t.Run("short password without ctx defaults to eight", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "password"], "type": "string_too_short", "msg": "too short"}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", fielded.FieldErrors["password"])
	})

	t.Run("overlong field uses the ctx maximum", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "first_name"], "type": "string_too_long", "msg": "too long", "ctx": {"max_length": 50}}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "Este campo no puede tener más de 50 caracteres", fielded.FieldErrors["first_name"])
	})

	t.Run("snake case date fields map to form names", func(t *testing.T) {
		body := `{"detail": [
			{"loc": ["body", "check_in_date"], "type": "missing", "msg": "Field required"},
			{"loc": ["body", "check_out_date"], "type": "missing", "msg": "Field required"}
		]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "Este campo es requerido", fielded.FieldErrors["checkInDate"])
		assert.Equal(t, "Este campo es requerido", fielded.FieldErrors["checkOutDate"])
	})

	t.Run("unmapped field keeps its backend name and message", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "adults"], "type": "greater_than", "msg": "Input should be greater than 0"}]}`
		fielded := ParseServerError(apiErrorFromBody(t, 422, body))
		assert.Equal(t, "Input should be greater than 0", fielded.FieldErrors["adults"])
	})
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := &TransportError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "backend unreachable")
}
