package session

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpired reports whether a bearer token carries an exp claim that
// has already passed. The backend owns token validity; this is only a
// local fast path that skips a doomed round trip. Opaque (non-JWT)
// tokens never report expired.
func TokenExpired(token string) bool {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
