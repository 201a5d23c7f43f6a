package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context. userRoleKey stores the user's role claim.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// AdminRole is the role claim value that grants access to admin routes.
const AdminRole = "admin"

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// IsAdmin reports whether the authenticated user carries the admin role.
func IsAdmin(c *gin.Context) bool {
	role, ok := c.Request.Context().Value(userRoleKey).(string)
	return ok && role == AdminRole
}
