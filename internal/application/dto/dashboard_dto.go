package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs calculados sobre datos reales (reemplazan las tarjetas estáticas de
// los primeros borradores del dashboard).
type DashboardSummaryDTO struct {
	TotalPartsOnHand       decimal.Decimal `json:"total_parts_on_hand"`      // SUM(quantity_on_hand)
	OpenLeaks              int64           `json:"open_leaks"`               // casos sospechosos abiertos
	UnattributedMovements  int64           `json:"unattributed_movements"`   // movimientos sin empleado
	ResolvedLastSevenDays  int64           `json:"resolved_last_seven_days"` // veredictos de la última semana
	GeneratedAt            string          `json:"generated_at"`             // RFC3339
}
