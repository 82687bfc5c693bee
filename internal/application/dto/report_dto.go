package dto

import "github.com/shopspring/decimal"

// EmployeeActivityDTO fila del resumen de actividad por empleado.
// Los movimientos sin empleado atribuible se consolidan en "UNKNOWN".
type EmployeeActivityDTO struct {
	EmployeeID            string          `json:"employee_id"`
	TotalMovements        int             `json:"total_movements"`
	TotalNegativeVariance decimal.Decimal `json:"total_negative_variance"`
}

// EmployeeActivityResponse respuesta de GET /api/reports/employee-activity.
type EmployeeActivityResponse struct {
	WindowSize int                   `json:"window_size"` // movimientos considerados
	Rows       []EmployeeActivityDTO `json:"rows"`
}
