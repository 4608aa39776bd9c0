package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
)

const userUUIDKey = "x-user-id"

// AuthGuard rejects requests without a verifiable bearer token. Every
// failure yields the same generic 401 body so the reason never leaks.
func AuthGuard(tokens port.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" || !strings.HasPrefix(bearer, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		userUUID, err := tokens.VerifyToken(strings.TrimPrefix(bearer, "Bearer "))

		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(userUUIDKey, userUUID)
		c.Next()
	}
}

// CurrentUserUUID returns the authenticated principal set by AuthGuard.
func CurrentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(userUUIDKey)

	if !ok {
		return uuid.Nil, false
	}

	userUUID, ok := value.(uuid.UUID)

	return userUUID, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
		Success: false,
		Message: "Unauthorized request",
	})
}
