package context

import "github.com/labstack/echo/v4"

const (
	// KeyUsername is the key for the authenticated account's username.
	KeyUsername ContextKey = "username"

	// KeyRole is the key for the authenticated account's role.
	KeyRole ContextKey = "role"
)

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, username, role string) {
	c.Set(string(KeyUsername), username)
	c.Set(string(KeyRole), role)
}

// GetUsername extracts the authenticated username from echo.Context.
// Returns empty string when the request is unauthenticated.
func GetUsername(c echo.Context) string {
	if username, ok := c.Get(string(KeyUsername)).(string); ok {
		return username
	}

	return ""
}

// GetRole extracts the authenticated role from echo.Context.
func GetRole(c echo.Context) string {
	if role, ok := c.Get(string(KeyRole)).(string); ok {
		return role
	}

	return ""
}
