package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas agregadas de solo lectura para los KPIs del
// dashboard. Los agregados se calculan en SQL; un fallo de consulta se
// propaga, nunca se reporta como cero.
type AnalyticsRepository interface {
	// CountOpenLeaks casos que cumplen el predicado de fuga y siguen abiertos.
	CountOpenLeaks(ctx context.Context) (int64, error)

	// CountUnattributedMovements movimientos sin empleado (NULL o vacío).
	CountUnattributedMovements(ctx context.Context) (int64, error)

	// CountResolvedSince casos cerrados con resolved_at >= since.
	CountResolvedSince(ctx context.Context, since time.Time) (int64, error)

	// TotalPartsOnHand suma de quantity_on_hand sobre inventory_items.
	TotalPartsOnHand(ctx context.Context) (decimal.Decimal, error)
}
