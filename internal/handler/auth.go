package handler

import (
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/middleware"
	"github.com/EN-BAAK/Company-management-system-server/internal/model"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

// Sessions are long-lived; the cookie sticks around for ten years unless
// logout clears it.
const sessionCookieMaxAge = 10 * 365 * 24 * 60 * 60

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Log in by phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	cookie := middleware.WorkerCookie
	if result.Role == model.RoleAdmin {
		cookie = middleware.AdminCookie
	}
	c.SetCookie(cookie, result.Token, sessionCookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "User login successfully",
		Token:   result.Token,
	})
}

// Logout revokes the token, then clears whichever role cookie carried it.
// Revocation comes first: if it fails the cookie survives, so the client
// still holds the token and can retry the logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	p := middleware.GetPrincipal(c)

	if err := h.svc.RevokeToken(c.Request.Context(), p.Token); err != nil {
		fail(c, err)
		return
	}

	cookie := middleware.WorkerCookie
	if p.Role == model.RoleAdmin {
		cookie = middleware.AdminCookie
	}
	c.SetCookie(cookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logged out successfully",
	})
}

// Verify confirms the session and echoes the authenticated user id.
func (h *AuthHandler) Verify(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Success: true,
		UserID:  p.UserID.String(),
	})
}
