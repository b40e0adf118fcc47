package handler

import (
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) EditFullName(c *gin.Context) {
	var req dto.EditFullNameRequest
	if !bindAndValidate(c, &req) {
		return
	}

	fullName, err := h.svc.EditFullName(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminFullNameResponse{
		Success:  true,
		Message:  "Admin full name updated successfully",
		FullName: fullName,
	})
}

func (h *AdminHandler) EditPassword(c *gin.Context) {
	var req dto.EditPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.EditPassword(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin updated successfully",
	})
}

func (h *AdminHandler) EditPhone(c *gin.Context) {
	var req dto.EditPhoneRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.EditPhone(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin phone updated successfully",
	})
}
