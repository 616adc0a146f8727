package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ValidationError is one entry of the backend's field-validation detail
// list ({loc, type, msg, ctx}).
type ValidationError struct {
	Loc  []string       `json:"loc"`
	Type string         `json:"type"`
	Msg  string         `json:"msg"`
	Ctx  map[string]any `json:"ctx,omitempty"`
}

// APIError is a non-2xx backend response. Detail mirrors the backend
// envelope: either a plain message or a list of validation records.
type APIError struct {
	Status  int
	Message string
	Detail  []ValidationError
	raw     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Detail) > 0 {
		return fmt.Sprintf("validation failed (%d fields)", len(e.Detail))
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsUnauthorized reports whether the backend rejected the session token.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// TransportError is a network-level failure: unreachable host, timeout,
// connection reset. It carries no backend payload.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "backend unreachable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// decodeAPIError turns a non-2xx response into an *APIError, tolerating
// bodies that are not the standard envelope.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	apiErr.raw = string(body)

	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	if len(envelope.Detail) > 0 {
		var msg string
		if json.Unmarshal(envelope.Detail, &msg) == nil {
			apiErr.Message = msg
			return apiErr
		}
		var fields []ValidationError
		if json.Unmarshal(envelope.Detail, &fields) == nil {
			apiErr.Detail = fields
			apiErr.Message = ""
			return apiErr
		}
	}
	if envelope.Message != "" {
		apiErr.Message = envelope.Message
	}
	return apiErr
}

// FieldedError is the user-facing translation of an arbitrary failure:
// either a single general message or a per-field message map, never both.
type FieldedError struct {
	GeneralError string            `json:"generalError,omitempty"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
}

const unknownErrorMessage = "Error desconocido"

// generalSubstitutions rewrites known backend phrases into user-facing
// Spanish. Matched case-insensitively by substring.
var generalSubstitutions = []struct {
	contains string
	friendly string
}{
	{"credenciales inválidas", "Correo electrónico o contraseña incorrectos"},
	{"invalid credentials", "Correo electrónico o contraseña incorrectos"},
	{"usuario no encontrado", "No existe una cuenta con este correo electrónico"},
	{"user not found", "No existe una cuenta con este correo electrónico"},
	{"cuenta bloqueada", "Tu cuenta ha sido bloqueada. Contacta soporte"},
	{"account blocked", "Tu cuenta ha sido bloqueada. Contacta soporte"},
	{"email no verificado", "Debes verificar tu correo electrónico antes de iniciar sesión"},
	{"email not verified", "Debes verificar tu correo electrónico antes de iniciar sesión"},
}

// fieldNameMapping maps backend field locations to the form-field names
// the frontend uses.
var fieldNameMapping = map[string]string{
	"login":              "login",
	"email":              "login",
	"password":           "password",
	"first_name":         "first_name",
	"last_name":          "last_name",
	"username":           "username",
	"telephone":          "telephone",
	"id_document_number": "id_document_number",
	"check_in_date":      "checkInDate",
	"check_out_date":     "checkOutDate",
}

// ParseServerError deterministically translates any failure into a
// FieldedError. It never panics; anything unparseable degrades to a
// generic message.
func ParseServerError(err error) FieldedError {
	if err == nil {
		return FieldedError{GeneralError: unknownErrorMessage}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Detail) > 0 {
			return FieldedError{FieldErrors: mapFieldErrors(apiErr.Detail)}
		}
		if apiErr.Message != "" {
			return FieldedError{GeneralError: friendlyGeneralMessage(apiErr.Message)}
		}
		return FieldedError{GeneralError: unknownErrorMessage}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return FieldedError{GeneralError: "Servicio no disponible. Inténtalo nuevamente."}
	}

	if msg := err.Error(); msg != "" {
		return FieldedError{GeneralError: friendlyGeneralMessage(msg)}
	}
	return FieldedError{GeneralError: unknownErrorMessage}
}

func friendlyGeneralMessage(msg string) string {
	lower := strings.ToLower(msg)
	for _, sub := range generalSubstitutions {
		if strings.Contains(lower, sub.contains) {
			return sub.friendly
		}
	}
	return msg
}

func mapFieldErrors(details []ValidationError) map[string]string {
	fieldErrors := make(map[string]string, len(details))
	for _, ve := range details {
		field := ""
		if len(ve.Loc) > 0 {
			field = ve.Loc[len(ve.Loc)-1]
		}
		if mapped, ok := fieldNameMapping[field]; ok {
			fieldErrors[mapped] = validationMessage(field, ve)
		} else {
			fieldErrors[field] = validationMessage(field, ve)
		}
	}
	return fieldErrors
}

func validationMessage(field string, ve ValidationError) string {
	switch ve.Type {
	case "string_too_short":
		minLength := ctxInt(ve.Ctx, "min_length", 8)
		if field == "password" {
			return fmt.Sprintf("La contraseña debe tener al menos %d caracteres", minLength)
		}
		return fmt.Sprintf("Este campo debe tener al menos %d caracteres", minLength)
	case "string_too_long":
		maxLength := ctxInt(ve.Ctx, "max_length", 100)
		return fmt.Sprintf("Este campo no puede tener más de %d caracteres", maxLength)
	case "value_error":
		if strings.Contains(ve.Msg, "email") {
			return "Ingresa un correo electrónico válido"
		}
		return "El valor ingresado no es válido"
	case "missing":
		return "Este campo es requerido"
	case "type_error":
		if strings.Contains(ve.Msg, "email") {
			return "Ingresa un correo electrónico válido"
		}
		return "El formato del campo no es válido"
	default:
		switch field {
		case "login", "email":
			if strings.Contains(ve.Msg, "email") || strings.Contains(ve.Msg, "format") {
				return "Ingresa un correo electrónico válido"
			}
			return "El correo electrónico no es válido"
		case "password":
			return "La contraseña no cumple con los requisitos"
		}
		return ve.Msg
	}
}

func ctxInt(ctx map[string]any, key string, fallback int) int {
	if ctx == nil {
		return fallback
	}
	switch v := ctx[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
