// Package report agrega la actividad por empleado sobre una ventana
// reciente del log de movimientos (servicio de dominio puro).
package report

import (
	"sort"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UnknownEmployee cubeta para movimientos sin employee_id (NULL o vacío).
const UnknownEmployee = "UNKNOWN"

// EmployeeActivity resumen de un empleado dentro de la ventana.
type EmployeeActivity struct {
	EmployeeID            string
	TotalMovements        int
	TotalNegativeVariance decimal.Decimal // suma de varianzas estrictamente negativas; cero si no hay
}

// SummarizeByEmployee agrupa los movimientos por empleado normalizado y
// calcula conteo total y suma de varianza negativa por grupo. Determinista:
// mismo input, mismo output; la salida se ordena por conteo descendente y
// empleado ascendente como desempate.
//
// Normalización: employee_id NULL o cadena vacía caen en UnknownEmployee.
// Varianzas ausentes o >= 0 no aportan a la suma negativa.
func SummarizeByEmployee(records []*entity.MovementRecord) []EmployeeActivity {
	groups := make(map[string]*EmployeeActivity)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		key := UnknownEmployee
		if rec.EmployeeID != nil && *rec.EmployeeID != "" {
			key = *rec.EmployeeID
		}
		g, ok := groups[key]
		if !ok {
			g = &EmployeeActivity{EmployeeID: key, TotalNegativeVariance: decimal.Zero}
			groups[key] = g
		}
		g.TotalMovements++
		if rec.VarianceAmount != nil && rec.VarianceAmount.LessThan(decimal.Zero) {
			g.TotalNegativeVariance = g.TotalNegativeVariance.Add(*rec.VarianceAmount)
		}
	}

	out := make([]EmployeeActivity, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMovements != out[j].TotalMovements {
			return out[i].TotalMovements > out[j].TotalMovements
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}
