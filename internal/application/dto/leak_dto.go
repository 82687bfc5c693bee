package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeakCaseDTO un caso (movimiento sospechoso) en las vistas open/resolved.
// Los campos puntero reflejan columnas NULL de receiving_log.
type LeakCaseDTO struct {
	ID             int64            `json:"id"`
	PartNumber     string           `json:"part_number"`
	Description    string           `json:"description"`
	Quantity       decimal.Decimal  `json:"quantity"`
	EmployeeID     *string          `json:"employee_id"`
	MovementType   string           `json:"movement_type"`
	LocationBin    string           `json:"location_bin"`
	VarianceAmount *decimal.Decimal `json:"variance_amount"`
	SeverityLevel  *string          `json:"severity_level"`
	Timestamp      time.Time        `json:"timestamp"`

	ResolutionStatus *string    `json:"resolution_status,omitempty"`
	ResolutionNote   *string    `json:"resolution_note,omitempty"`
	ResolvedBy       *string    `json:"resolved_by,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
}

// LeakListRequest parámetros de la vista de casos.
type LeakListRequest struct {
	Mode       string `query:"mode"`        // "open" (default) | "resolved"
	PartNumber string `query:"part_number"` // contención case-insensitive
	EmployeeID string `query:"employee_id"` // contención case-insensitive
}

// LeakListResponse respuesta de GET /api/leaks.
type LeakListResponse struct {
	Mode  string        `json:"mode"`
	Total int           `json:"total"`
	Cap   int           `json:"cap"` // tope configurado de la vista
	Cases []LeakCaseDTO `json:"cases"`
}

// CaseDetailDTO drill-down de un caso: el registro completo más el histórico
// acotado de movimientos del mismo número de parte.
type CaseDetailDTO struct {
	Case    LeakCaseDTO   `json:"case"`
	History []LeakCaseDTO `json:"history"`
}

// ResolveRequest cuerpo de POST /api/leaks/:id/resolve. La identidad del
// resolutor no viaja en el body: se toma del token.
type ResolveRequest struct {
	Verdict string `json:"verdict"`
	Note    string `json:"note"`
}
