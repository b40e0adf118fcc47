package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Build godoc
// @Summary Generate the shifts report PDF
// @Tags reports
// @Produce application/pdf
// @Param workerName query string false "Single-worker report subject (substring match)"
// @Param lang query string false "en or he"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.Envelope
// @Router /report [get]
func (h *ReportsHandler) Build(c *gin.Context) {
	var q dto.ReportQuery
	if !bindQuery(c, &q) {
		return
	}

	file, err := h.svc.Build(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}

	// Subject names may be non-ASCII (Hebrew); percent-encode the filename.
	filename := url.PathEscape(file.SubjectName) + "_shifts_report.pdf"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", file.Data)
}
