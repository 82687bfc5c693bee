package leaks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/resolution"
)

// ResolveUseCase cierra un caso abierto con un veredicto terminal.
//
// La única salvaguarda de concurrencia del sistema vive aquí: el repositorio
// aplica un UPDATE condicionado a que el caso siga abierto, de modo que si
// dos revisores compiten por el mismo caso exactamente uno gana y el otro
// recibe ErrAlreadyResolved. No hay reintentos automáticos.
type ResolveUseCase struct {
	movRepo repository.MovementRecordRepository
}

// NewResolveUseCase construye el caso de uso.
func NewResolveUseCase(movRepo repository.MovementRecordRepository) *ResolveUseCase {
	return &ResolveUseCase{movRepo: movRepo}
}

// SubmitVerdict valida y aplica el veredicto sobre el caso id.
//
// Precondiciones (cualquier violación rechaza sin escribir nada):
//   - verdict pertenece al conjunto terminal (el placeholder del selector y
//     valores desconocidos devuelven ErrInvalidVerdict)
//   - resolvedBy no vacío (ErrInvalidVerdict)
//   - el caso existe (ErrNotFound) y sigue abierto (ErrAlreadyResolved)
//
// En éxito escribe status, note, resolved_by y resolved_at en un único
// UPDATE atómico; no hay escrituras en cascada ni actualizaciones parciales.
func (uc *ResolveUseCase) SubmitVerdict(ctx context.Context, id int64, verdictRaw, note, resolvedBy string, resolvedAt time.Time) error {
	verdict, ok := resolution.Parse(verdictRaw)
	if !ok {
		return domain.ErrInvalidVerdict
	}
	if strings.TrimSpace(resolvedBy) == "" {
		return domain.ErrInvalidVerdict
	}
	if resolvedAt.IsZero() {
		resolvedAt = time.Now()
	}

	updated, err := uc.movRepo.Resolve(ctx, id, string(verdict), strings.TrimSpace(note), resolvedBy, resolvedAt)
	if err != nil {
		return fmt.Errorf("resolver caso %d: %w", id, err)
	}
	if updated {
		return nil
	}

	// El UPDATE no tocó ninguna fila: o el caso no existe o ya está cerrado.
	rec, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar caso %d: %w", id, err)
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return domain.ErrAlreadyResolved
}
