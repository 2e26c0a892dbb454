package context

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// KeyBearerToken is the echo.Context key for the caller's bearer token.
const KeyBearerToken ContextKey = "bearer_token"

const bearerScheme = "bearer"

// ParseBearerToken returns the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively; anything else yields "".
func ParseBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization)), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}

// SetBearerToken stores the caller's token in echo.Context.
func SetBearerToken(c echo.Context, token string) {
	c.Set(string(KeyBearerToken), token)
}

// GetBearerToken returns the token stored by the auth middleware, or "".
func GetBearerToken(c echo.Context) string {
	if token, ok := c.Get(string(KeyBearerToken)).(string); ok {
		return token
	}

	return ""
}
