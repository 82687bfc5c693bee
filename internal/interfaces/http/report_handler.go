package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/reports"
)

// ReportHandler maneja los endpoints del Audit Trail (protegido).
type ReportHandler struct {
	summary *reports.SummaryUseCase
	pdf     *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(summary *reports.SummaryUseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{summary: summary, pdf: pdf}
}

// EmployeeActivity godoc
// @Summary      Resumen de actividad por empleado
// @Description  Conteo de movimientos y suma de varianza negativa por empleado
//
//	sobre la ventana reciente del log. Sin empleado -> UNKNOWN.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeActivityResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/employee-activity [get]
func (h *ReportHandler) EmployeeActivity(c *fiber.Ctx) error {
	resp, err := h.summary.GetEmployeeActivity(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(resp)
}

// EmployeeActivityPDF godoc
// @Summary      Resumen de actividad por empleado en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/employee-activity/pdf [get]
func (h *ReportHandler) EmployeeActivityPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.GenerateEmployeeActivityPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="employee-activity.pdf"`)
	return c.Send(pdfBytes)
}
