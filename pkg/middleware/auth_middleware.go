package middleware

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resto/internal/models/response_models"
	"resto/pkg/memcache"
	"resto/pkg/utils"
)

const authUserKey = "auth_user"

// TokenValidator checks a bearer token against the identity provider and
// returns the normalized claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (response_models.AuthUser, error)
}

// AuthGate resolves the caller's identity from, in order: an identity a
// previous middleware already attached, the session cookie, and finally a
// bearer token validated against the identity provider.
type AuthGate struct {
	sessions   memcache.SessionStore
	validator  TokenValidator
	cookieName string
}

func NewAuthGate(sessions memcache.SessionStore, validator TokenValidator) *AuthGate {
	cookieName := os.Getenv("SESSION_COOKIE_NAME")
	if cookieName == "" {
		cookieName = "resto_session"
	}
	return &AuthGate{
		sessions:   sessions,
		validator:  validator,
		cookieName: cookieName,
	}
}

func (g *AuthGate) CookieName() string {
	return g.cookieName
}

// Resolve returns the caller's identity, caching it on the gin context so
// the lookup runs at most once per request.
func (g *AuthGate) Resolve(c *gin.Context) (response_models.AuthUser, bool) {
	if v, ok := c.Get(authUserKey); ok {
		if user, ok := v.(response_models.AuthUser); ok && user.ID != "" {
			return user, true
		}
	}

	if token, err := c.Cookie(g.cookieName); err == nil && token != "" {
		if user, ok := g.sessions.Get(token); ok {
			c.Set(authUserKey, user)
			return user, true
		}
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := g.validator.ValidateToken(c.Request.Context(), token)
		if err == nil && user.ID != "" {
			c.Set(authUserKey, user)
			return user, true
		}
	}

	return response_models.AuthUser{}, false
}

func (g *AuthGate) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.Resolve(c); !ok {
			utils.HandleServiceError(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (g *AuthGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := g.Resolve(c)
		if !ok {
			utils.HandleServiceError(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}
		if !user.IsAdmin {
			utils.HandleServiceError(c, utils.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser reads the identity resolved by RequireAuth/RequireAdmin.
func CurrentUser(c *gin.Context) (response_models.AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return response_models.AuthUser{}, false
	}
	user, ok := v.(response_models.AuthUser)
	return user, ok && user.ID != ""
}
