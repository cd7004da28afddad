package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/service"
)

const userContextKey = "user"

// AuthMiddleware validates the bearer token and attaches the user to the
// request context
func AuthMiddleware(authService service.AuthService, responder *Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			responder.Fail(c, domain.NewAuthenticationError("No token provided"))
			c.Abort()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			responder.Fail(c, err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid bearer token is
// supplied but never rejects the request
func OptionalAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := authService.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}
