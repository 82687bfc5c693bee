package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
)

// ActivityPDFGenerator puerto de generación del PDF del resumen de actividad.
// Implementado en infraestructura (Maroto).
type ActivityPDFGenerator interface {
	GenerateActivityPDF(ctx context.Context, generatedAt time.Time, summary *dto.EmployeeActivityResponse) ([]byte, error)
}

// PDFUseCase exporta el resumen de actividad por empleado como PDF.
type PDFUseCase struct {
	summary   *SummaryUseCase
	generator ActivityPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(summary *SummaryUseCase, generator ActivityPDFGenerator) *PDFUseCase {
	return &PDFUseCase{summary: summary, generator: generator}
}

// GenerateEmployeeActivityPDF calcula el resumen y lo renderiza.
func (uc *PDFUseCase) GenerateEmployeeActivityPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.summary.GetEmployeeActivity(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateActivityPDF(ctx, time.Now(), summary)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de actividad: %w", err)
	}
	return pdf, nil
}
