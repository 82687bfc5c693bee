package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el God View.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountOpenLeaks cuenta los registros que cumplen el predicado de fuga y
// siguen en estado abierto. Reusa los mismos fragmentos SQL que la vista
// OPEN para que el KPI y la tabla nunca diverjan.
func (r *AnalyticsRepo) CountOpenLeaks(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM receiving_log WHERE ` + leakPredicate + ` AND ` + openStatus
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountOpenLeaks: %w", err)
	}
	return n, nil
}

// CountUnattributedMovements cuenta movimientos sin empleado atribuible
// (NULL y cadena vacía por separado, ambas formas existen en los datos).
func (r *AnalyticsRepo) CountUnattributedMovements(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM receiving_log WHERE employee_id IS NULL OR employee_id = ''`
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountUnattributedMovements: %w", err)
	}
	return n, nil
}

// CountResolvedSince cuenta casos cerrados desde la fecha dada.
func (r *AnalyticsRepo) CountResolvedSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM receiving_log WHERE NOT ` + openStatus + ` AND resolved_at >= $1`
	var n int64
	if err := r.pool.QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountResolvedSince: %w", err)
	}
	return n, nil
}

// TotalPartsOnHand suma quantity_on_hand sobre inventory_items.
// COALESCE devuelve cero con la tabla vacía (sin filas no es un fallo).
func (r *AnalyticsRepo) TotalPartsOnHand(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity_on_hand), 0) FROM inventory_items`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.TotalPartsOnHand: %w", err)
	}
	return total, nil
}
