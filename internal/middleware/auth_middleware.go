package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key holding the caller's Firebase UID.
const UserIDKey = "userID"

// TokenVerifier verifies Firebase credentials. *auth.Client implements it.
type TokenVerifier interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware resolves the caller's identity from a Firebase session
// cookie or, failing that, a bearer ID token.
type AuthMiddleware struct {
	verifier   TokenVerifier
	cookieName string
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier TokenVerifier, cookieName string, logger *zap.Logger) *AuthMiddleware {
	if verifier == nil {
		panic("AuthMiddleware requires a non-nil TokenVerifier")
	}
	return &AuthMiddleware{verifier: verifier, cookieName: cookieName, logger: logger}
}

// Identify sets UserIDKey when the request carries valid credentials and
// lets every request through.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := m.resolve(c); uid != "" {
			c.Set(UserIDKey, uid)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without valid credentials with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := m.resolve(c)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("login required"))
			return
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) string {
	ctx := c.Request.Context()

	if m.cookieName != "" {
		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
			token, err := m.verifier.VerifySessionCookie(ctx, cookie)
			if err == nil {
				return token.UID
			}
			m.logger.Debug("Session cookie rejected", zap.Error(err))
		}
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		m.logger.Debug("Malformed Authorization header")
		return ""
	}
	token, err := m.verifier.VerifyIDToken(ctx, parts[1])
	if err != nil {
		m.logger.Debug("ID token rejected", zap.Error(err))
		return ""
	}
	return token.UID
}

// UserID returns the UID set by the auth middleware, or "" when the caller
// is anonymous.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// errorBody mirrors the api result envelope, which this package cannot import.
func errorBody(message string) gin.H {
	return gin.H{"ok": false, "data": nil, "message": message}
}
