// Package reports casos de uso del Audit Trail: resumen de actividad por
// empleado sobre la ventana reciente del log y su exportación a PDF.
package reports

import (
	"context"
	"fmt"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/report"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

// DefaultAuditWindow movimientos recientes considerados por el resumen.
const DefaultAuditWindow = 50

// SummaryUseCase calcula el resumen de actividad por empleado.
// La agregación es pura (report.SummarizeByEmployee); este caso de uso solo
// lee la ventana del store y mapea el resultado a DTO.
type SummaryUseCase struct {
	movRepo     repository.MovementRecordRepository
	auditWindow int
}

// NewSummaryUseCase construye el caso de uso. auditWindow <= 0 usa el default.
func NewSummaryUseCase(movRepo repository.MovementRecordRepository, auditWindow int) *SummaryUseCase {
	if auditWindow <= 0 {
		auditWindow = DefaultAuditWindow
	}
	return &SummaryUseCase{movRepo: movRepo, auditWindow: auditWindow}
}

// GetEmployeeActivity agrupa la ventana reciente por empleado normalizado
// (NULL/vacío → "UNKNOWN") con conteo y suma de varianza negativa por grupo.
func (uc *SummaryUseCase) GetEmployeeActivity(ctx context.Context) (*dto.EmployeeActivityResponse, error) {
	window, err := uc.movRepo.ListRecent(ctx, uc.auditWindow)
	if err != nil {
		return nil, fmt.Errorf("ventana de auditoría: %w", err)
	}

	rows := report.SummarizeByEmployee(window)
	out := make([]dto.EmployeeActivityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EmployeeActivityDTO{
			EmployeeID:            r.EmployeeID,
			TotalMovements:        r.TotalMovements,
			TotalNegativeVariance: r.TotalNegativeVariance,
		})
	}
	return &dto.EmployeeActivityResponse{
		WindowSize: len(window),
		Rows:       out,
	}, nil
}
