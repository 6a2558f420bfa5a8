package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armahcreates/iwil/internal/api/dto"
	"github.com/armahcreates/iwil/internal/repository"
)

// ReportsHandler lists wellness report summaries.
type ReportsHandler struct {
	reports repository.ReportRepository
}

// NewReportsHandler constructs the handler.
func NewReportsHandler(reports repository.ReportRepository) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// List handles GET /api/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	if err := h.reports.EnsureSchema(c.Context()); err != nil {
		return err
	}
	reports, err := h.reports.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		resp = append(resp, dto.NewReportResponse(&reports[i]))
	}
	return c.JSON(resp)
}
