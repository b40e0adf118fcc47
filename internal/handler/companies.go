package handler

import (
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

type CompaniesHandler struct{ svc service.CompanyService }

func NewCompaniesHandler(svc service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{svc: svc}
}

func (h *CompaniesHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	company, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyEnvelope{
		Success: true,
		Message: "Company added successfully",
		Company: *company,
	})
}

func (h *CompaniesHandler) Edit(c *gin.Context) {
	id, ok := idParam(c, "companyId")
	if !ok {
		return
	}
	var req dto.EditCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	company, err := h.svc.Edit(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyEnvelope{
		Success: true,
		Message: "Company updated successfully",
		Company: *company,
	})
}

// Delete removes a company; its shifts go with it.
func (h *CompaniesHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "companyId")
	if !ok {
		return
	}

	deletedID, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Deleted{
		Success: true,
		Message: "Company deleted successfully",
		ID:      deletedID.String(),
	})
}

func (h *CompaniesHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	resp, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompaniesHandler) Identity(c *gin.Context) {
	items, err := h.svc.ListIdentity(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyIdentityResponse{Success: true, Companies: items})
}
