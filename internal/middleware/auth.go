package middleware

import (
	"context"
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Role-specific session cookies. Exactly one is set per session, so
	// which cookie carried the token tells the middleware the role.
	AdminCookie  = "adminToken"
	WorkerCookie = "workerToken"

	principalKey = "principal"
)

// Principal is the typed identity attached to every authenticated request.
type Principal struct {
	UserID uuid.UUID
	Role   string
	Token  string
}

// SessionClaims is the token payload: the subject's user id.
type SessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// SessionStore answers whether a token has been revoked by logout.
type SessionStore interface {
	Revoked(ctx context.Context, token string) (bool, error)
}

// Authenticated accepts either role cookie and attaches the principal.
func Authenticated(secret string, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, role := sessionCookie(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.Body("User not authenticated"))
			return
		}
		verify(c, secret, sessions, token, role)
	}
}

// AdminOnly accepts only the admin cookie.
func AdminOnly(secret string, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.Body("Admin not authenticated"))
			return
		}
		verify(c, secret, sessions, token, model.RoleAdmin)
	}
}

// verify decodes the token, fails closed on any parse/expiry/revocation
// problem, and stores the typed principal for downstream handlers.
func verify(c *gin.Context, secret string, sessions SessionStore, token, role string) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Body("Invalid or expired session"))
		return
	}

	if revoked, err := sessions.Revoked(c.Request.Context(), token); err != nil || revoked {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Body("Invalid or expired session"))
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Body("Invalid or expired session"))
		return
	}

	c.Set(principalKey, Principal{UserID: userID, Role: role, Token: token})
	c.Next()
}

// sessionCookie returns whichever role cookie is present.
func sessionCookie(c *gin.Context) (token, role string) {
	if t, err := c.Cookie(AdminCookie); err == nil && t != "" {
		return t, model.RoleAdmin
	}
	if t, err := c.Cookie(WorkerCookie); err == nil && t != "" {
		return t, model.RoleWorker
	}
	return "", ""
}

// GetPrincipal retrieves the typed principal set by the auth middleware.
func GetPrincipal(c *gin.Context) Principal {
	p, _ := c.MustGet(principalKey).(Principal)
	return p
}
