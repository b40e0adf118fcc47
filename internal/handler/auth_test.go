package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestSecret = "handler-test-secret"

// stubAuthService satisfies service.AuthService and middleware.SessionStore.
type stubAuthService struct {
	revokeErr error
	revoked   []string
}

func (s *stubAuthService) Login(context.Context, dto.LoginRequest) (*dto.LoginResult, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthService) RevokeToken(_ context.Context, token string) error {
	if s.revokeErr != nil {
		return s.revokeErr
	}
	s.revoked = append(s.revoked, token)
	return nil
}

func (s *stubAuthService) Revoked(context.Context, string) (bool, error) {
	return false, nil
}

func signSessionToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":  uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authTestSecret))
	require.NoError(t, err)
	return token
}

func logoutRequest(t *testing.T, svc *stubAuthService) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/auth/logout", middleware.Authenticated(authTestSecret, svc), h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookie, Value: signSessionToken(t)})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogoutRevokesThenClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	rec := logoutRequest(t, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.revoked, 1)

	// the role cookie is expired in the response
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AdminCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogoutKeepsCookieWhenRevocationFails(t *testing.T) {
	svc := &stubAuthService{revokeErr: errors.New("store unreachable")}
	rec := logoutRequest(t, svc)

	// revocation failure is a 500 and the cookie survives, so the client
	// still holds the token and can retry the logout
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Empty(t, svc.revoked)
}
