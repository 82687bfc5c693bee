// Package leaks contiene los casos de uso del Leak Detector: vistas de casos
// abiertos/resueltos, drill-down por parte y cierre con veredicto.
package leaks

import (
	"context"
	"fmt"
	"strings"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

// Límites de la vista. El tope es configurable porque los borradores del
// dashboard oscilaron entre 50 y 100; aquí se fija explícito y acotado en
// lugar de quedar ilimitado por accidente.
const (
	DefaultViewCap  = 50
	MaxViewCap      = 100
	PartHistorySize = 30
)

// QueryUseCase construye las vistas de casos (solo lectura).
type QueryUseCase struct {
	movRepo repository.MovementRecordRepository
	viewCap int
}

// NewQueryUseCase construye el caso de uso. viewCap fuera de [1, MaxViewCap]
// se normaliza a DefaultViewCap.
func NewQueryUseCase(movRepo repository.MovementRecordRepository, viewCap int) *QueryUseCase {
	if viewCap < 1 || viewCap > MaxViewCap {
		viewCap = DefaultViewCap
	}
	return &QueryUseCase{movRepo: movRepo, viewCap: viewCap}
}

// ViewCap devuelve el tope efectivo de la vista.
func (uc *QueryUseCase) ViewCap() int { return uc.viewCap }

// ListCases devuelve la vista solicitada.
//
//	open:     registros que cumplen el predicado del clasificador y siguen
//	          abiertos, los más recientes primero (timestamp DESC).
//	resolved: registros con veredicto terminal, resolved_at DESC.
//
// Los filtros de texto se aplican en la consulta (ILIKE parametrizado), en
// AND con el predicado del modo: el resultado filtrado siempre es
// subconjunto de la vista sin filtrar. Un fallo del store se propaga como
// error; nunca se confunde con "sin resultados".
func (uc *QueryUseCase) ListCases(ctx context.Context, req dto.LeakListRequest) (*dto.LeakListResponse, error) {
	mode, err := parseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	filters := repository.LeakFilters{
		PartNumberContains: strings.TrimSpace(req.PartNumber),
		EmployeeIDContains: strings.TrimSpace(req.EmployeeID),
	}

	records, err := uc.movRepo.ListLeaks(ctx, mode, filters, uc.viewCap)
	if err != nil {
		return nil, fmt.Errorf("listar casos %s: %w", mode, err)
	}

	resp := &dto.LeakListResponse{
		Mode:  strings.ToLower(string(mode)),
		Total: len(records),
		Cap:   uc.viewCap,
		Cases: toCaseDTOs(records),
	}
	return resp, nil
}

// GetCaseDetail drill-down: el registro completo más el histórico acotado de
// movimientos del mismo número de parte (PartHistorySize, timestamp DESC).
func (uc *QueryUseCase) GetCaseDetail(ctx context.Context, id int64) (*dto.CaseDetailDTO, error) {
	rec, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener caso %d: %w", id, err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	history, err := uc.movRepo.ListByPart(ctx, rec.PartNumber, PartHistorySize)
	if err != nil {
		return nil, fmt.Errorf("histórico de parte %s: %w", rec.PartNumber, err)
	}

	return &dto.CaseDetailDTO{
		Case:    toCaseDTO(rec),
		History: toCaseDTOs(history),
	}, nil
}

func parseMode(s string) (repository.LeakViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		return repository.ViewOpen, nil
	case "resolved":
		return repository.ViewResolved, nil
	}
	return "", domain.ErrInvalidInput
}

func toCaseDTO(rec *entity.MovementRecord) dto.LeakCaseDTO {
	return dto.LeakCaseDTO{
		ID:               rec.ID,
		PartNumber:       rec.PartNumber,
		Description:      rec.Description,
		Quantity:         rec.Quantity,
		EmployeeID:       rec.EmployeeID,
		MovementType:     rec.MovementType,
		LocationBin:      rec.LocationBin,
		VarianceAmount:   rec.VarianceAmount,
		SeverityLevel:    rec.SeverityLevel,
		Timestamp:        rec.Timestamp,
		ResolutionStatus: rec.ResolutionStatus,
		ResolutionNote:   rec.ResolutionNote,
		ResolvedBy:       rec.ResolvedBy,
		ResolvedAt:       rec.ResolvedAt,
	}
}

func toCaseDTOs(records []*entity.MovementRecord) []dto.LeakCaseDTO {
	out := make([]dto.LeakCaseDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, toCaseDTO(rec))
	}
	return out
}
