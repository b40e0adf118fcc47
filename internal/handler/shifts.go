package handler

import (
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

type ShiftsHandler struct{ svc service.ShiftService }

func NewShiftsHandler(svc service.ShiftService) *ShiftsHandler { return &ShiftsHandler{svc: svc} }

// Create godoc
// @Summary Create a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param body body dto.CreateShiftRequest true "Shift"
// @Success 200 {object} dto.ShiftEnvelope
// @Failure 400 {object} apierror.Envelope
// @Router /shift [post]
func (h *ShiftsHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}

	shift, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ShiftEnvelope{
		Success: true,
		Message: "Shift created successfully",
		Shift:   *shift,
	})
}

func (h *ShiftsHandler) Edit(c *gin.Context) {
	id, ok := idParam(c, "shiftId")
	if !ok {
		return
	}
	var req dto.EditShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}

	shift, err := h.svc.Edit(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ShiftEnvelope{
		Success: true,
		Message: "Shift updated successfully",
		Shift:   *shift,
	})
}

func (h *ShiftsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "shiftId")
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
		Message: "Shift deleted successfully",
		ID:      deletedID.String(),
	})
}

// List applies the optional shift filters; see dto.ShiftQuery.
func (h *ShiftsHandler) List(c *gin.Context) {
	var q dto.ShiftQuery
	if !bindQuery(c, &q) {
		return
	}

	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
