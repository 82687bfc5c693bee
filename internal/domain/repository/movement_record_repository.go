package repository

import (
	"context"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
)

// LeakViewMode modo de la vista de casos: abiertos o resueltos.
type LeakViewMode string

const (
	ViewOpen     LeakViewMode = "OPEN"
	ViewResolved LeakViewMode = "RESOLVED"
)

// LeakFilters filtros de texto opcionales de la vista. Se aplican como
// contención de subcadena case-insensitive, en AND con el predicado del modo;
// el resultado filtrado siempre es subconjunto del resultado del modo.
type LeakFilters struct {
	PartNumberContains string
	EmployeeIDContains string
}

// MovementRecordRepository puerto de persistencia del log de movimientos.
//
// El log es append-only: la única mutación permitida es Resolve, un UPDATE
// condicionado al estado abierto. Los métodos de lectura propagan errores de
// consulta; nunca degradan un fallo a "cero resultados".
type MovementRecordRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.MovementRecord, error)

	// ListLeaks devuelve la vista de casos según el modo:
	//   OPEN: predicado del clasificador en SQL + estado abierto,
	//         ordenado por timestamp DESC.
	//   RESOLVED: estado terminal, ordenado por resolved_at DESC
	//             (timestamp DESC como desempate/fallback).
	// Acotado a limit filas.
	ListLeaks(ctx context.Context, mode LeakViewMode, filters LeakFilters, limit int) ([]*entity.MovementRecord, error)

	// ListByPart histórico de movimientos de un número de parte
	// (drill-down), ordenado por timestamp DESC y acotado a limit.
	ListByPart(ctx context.Context, partNumber string, limit int) ([]*entity.MovementRecord, error)

	// ListRecent ventana reciente del log completo (auditoría y reportes),
	// ordenada por timestamp DESC y acotada a limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementRecord, error)

	// Resolve aplica el veredicto con un único UPDATE condicional: escribe
	// status, note, resolved_by y resolved_at solo si el caso sigue abierto
	// (update-where-open, nunca read-then-write). Devuelve false si ninguna
	// fila cumplió la condición; el caller distingue inexistente de ya
	// resuelto con GetByID.
	Resolve(ctx context.Context, id int64, status, note, resolvedBy string, resolvedAt time.Time) (bool, error)

	// BulkInsert inserta registros en bloque (carga masiva CSV).
	BulkInsert(ctx context.Context, records []*entity.MovementRecord) (int64, error)
}
