package handler

import (
	"net/http"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create godoc
// @Summary Create a worker
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateWorkerRequest true "Worker"
// @Success 200 {object} dto.WorkerEnvelope
// @Failure 400 {object} apierror.Envelope
// @Router /user [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	worker, err := h.svc.CreateWorker(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WorkerEnvelope{
		Success: true,
		Message: "Worker added successfully",
		Worker:  *worker,
	})
}

func (h *UsersHandler) Edit(c *gin.Context) {
	id, ok := idParam(c, "userId")
	if !ok {
		return
	}
	var req dto.EditWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	worker, err := h.svc.EditWorker(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WorkerEnvelope{
		Success: true,
		Message: "User updated successfully",
		Worker:  *worker,
	})
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "userId")
	if !ok {
		return
	}

	deletedID, err := h.svc.DeleteWorker(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Deleted{
		Success: true,
		Message: "Worker deleted successfully",
		ID:      deletedID.String(),
	})
}

func (h *UsersHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if !bindQuery(c, &page) {
		return
	}

	resp, err := h.svc.ListWorkers(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Identity lists id+name pairs for selection widgets; the admin record is
// excluded.
func (h *UsersHandler) Identity(c *gin.Context) {
	items, err := h.svc.ListIdentity(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WorkerIdentityResponse{Success: true, Workers: items})
}
