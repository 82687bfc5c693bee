package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

var _ repository.MovementRecordRepository = (*MovementRecordRepo)(nil)

// Predicado de fuga en SQL. Debe mantenerse equivalente a leak.IsSuspicious:
// varianza negativa, severidad media/alta, o empleado NULL o cadena vacía
// (dos representaciones distintas, dos comprobaciones).
const leakPredicate = `(
	    (variance_amount IS NOT NULL AND variance_amount < 0)
	    OR severity_level IN ('MEDIUM', 'HIGH')
	    OR employee_id IS NULL
	    OR employee_id = ''
	)`

// Estado abierto. Debe mantenerse equivalente a resolution.IsOpen: NULL y
// cadena vacía equivalen a OPEN; 'Unresolved' es la forma legada.
const openStatus = `(resolution_status IS NULL OR resolution_status IN ('', 'OPEN', 'Unresolved'))`

const movementColumns = `
	id, part_number, description, quantity, employee_id, movement_type,
	location_bin, variance_amount, severity_level, timestamp,
	resolution_status, resolution_note, resolved_by, resolved_at`

// MovementRecordRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRecordRepo struct {
	q Querier
}

// NewMovementRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRecordRepository(q Querier) *MovementRecordRepo {
	return &MovementRecordRepo{q: q}
}

// GetByID obtiene un registro por ID. Devuelve nil, nil si no existe.
func (r *MovementRecordRepo) GetByID(ctx context.Context, id int64) (*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM receiving_log WHERE id = $1`
	rec, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return rec, nil
}

// ListLeaks construye la vista de casos del modo pedido.
//
// OPEN aplica el predicado de fuga y el estado abierto, timestamp DESC.
// RESOLVED selecciona estados terminales, resolved_at DESC con timestamp
// DESC como fallback (resolved_at nunca debería ser NULL en un caso
// cerrado, pero el orden queda definido también para datos legados).
// Los filtros se añaden como ILIKE parametrizado; nunca se interpola texto
// del usuario en el SQL.
func (r *MovementRecordRepo) ListLeaks(ctx context.Context, mode repository.LeakViewMode, filters repository.LeakFilters, limit int) ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM receiving_log WHERE `
	var orderBy string
	switch mode {
	case repository.ViewResolved:
		query += `NOT ` + openStatus
		orderBy = ` ORDER BY resolved_at DESC NULLS LAST, timestamp DESC`
	default:
		query += leakPredicate + ` AND ` + openStatus
		orderBy = ` ORDER BY timestamp DESC`
	}

	args := []any{}
	pos := 1
	if filters.PartNumberContains != "" {
		query += fmt.Sprintf(" AND part_number ILIKE '%%' || $%d || '%%'", pos)
		args = append(args, filters.PartNumberContains)
		pos++
	}
	if filters.EmployeeIDContains != "" {
		query += fmt.Sprintf(" AND employee_id ILIKE '%%' || $%d || '%%'", pos)
		args = append(args, filters.EmployeeIDContains)
		pos++
	}
	query += orderBy + fmt.Sprintf(" LIMIT $%d", pos)
	args = append(args, limit)

	return r.queryMovements(ctx, "list leaks", query, args...)
}

// ListByPart histórico de una parte, timestamp DESC, acotado.
func (r *MovementRecordRepo) ListByPart(ctx context.Context, partNumber string, limit int) ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + `
		FROM receiving_log WHERE part_number = $1
		ORDER BY timestamp DESC LIMIT $2`
	return r.queryMovements(ctx, "list by part", query, partNumber, limit)
}

// ListRecent ventana reciente del log completo, timestamp DESC, acotada.
func (r *MovementRecordRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + `
		FROM receiving_log ORDER BY timestamp DESC LIMIT $1`
	return r.queryMovements(ctx, "list recent", query, limit)
}

// Resolve escribe el veredicto con un UPDATE condicionado al estado abierto.
// Los cuatro campos de resolución se fijan juntos o no se fija ninguno; si
// otro revisor cerró el caso primero, RowsAffected es cero y se devuelve
// false sin tocar la fila.
func (r *MovementRecordRepo) Resolve(ctx context.Context, id int64, status, note, resolvedBy string, resolvedAt time.Time) (bool, error) {
	query := `
		UPDATE receiving_log
		SET resolution_status = $2,
		    resolution_note   = $3,
		    resolved_by       = $4,
		    resolved_at       = $5
		WHERE id = $1 AND ` + openStatus
	notePtr := (*string)(nil)
	if note != "" {
		notePtr = &note
	}
	tag, err := r.q.Exec(ctx, query, id, status, notePtr, resolvedBy, resolvedAt)
	if err != nil {
		return false, fmt.Errorf("resolve movement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// BulkInsert carga registros con COPY (pgx CopyFrom).
func (r *MovementRecordRepo) BulkInsert(ctx context.Context, records []*entity.MovementRecord) (int64, error) {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{
			rec.PartNumber, rec.Description, rec.Quantity, rec.EmployeeID,
			rec.MovementType, rec.LocationBin, rec.VarianceAmount,
			rec.SeverityLevel, rec.Timestamp,
		})
	}
	n, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"receiving_log"},
		[]string{"part_number", "description", "quantity", "employee_id", "movement_type", "location_bin", "variance_amount", "severity_level", "timestamp"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk insert movements: %w", err)
	}
	return n, nil
}

func (r *MovementRecordRepo) queryMovements(ctx context.Context, op, query string, args ...any) ([]*entity.MovementRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.MovementRecord
	for rows.Next() {
		rec, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.MovementRecord, error) {
	var m entity.MovementRecord
	err := row.Scan(
		&m.ID, &m.PartNumber, &m.Description, &m.Quantity, &m.EmployeeID,
		&m.MovementType, &m.LocationBin, &m.VarianceAmount, &m.SeverityLevel,
		&m.Timestamp, &m.ResolutionStatus, &m.ResolutionNote, &m.ResolvedBy,
		&m.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
