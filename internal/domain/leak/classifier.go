// Package leak contiene el clasificador de movimientos sospechosos
// (servicio de dominio puro, sin acceso a datos).
package leak

import (
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IsSuspicious decide si un movimiento pertenece al conjunto sospechoso.
// Función total y sin efectos: los campos ausentes no la hacen fallar.
//
// Basta una de cuatro señales (OR lógico):
//  1. variance_amount presente y estrictamente negativo
//  2. severity_level presente y MEDIUM o HIGH
//  3. employee_id ausente (NULL)
//  4. employee_id presente pero igual a cadena vacía
//
// Las señales 3 y 4 son representaciones distintas de "sin empleado
// atribuible" y se comprueban por separado: el almacenamiento puede traer
// cualquiera de las dos formas. Varianza cero o ausente no dispara la señal 1.
func IsSuspicious(rec *entity.MovementRecord) bool {
	if rec == nil {
		return false
	}
	if rec.VarianceAmount != nil && rec.VarianceAmount.LessThan(decimal.Zero) {
		return true
	}
	if rec.SeverityLevel != nil {
		switch *rec.SeverityLevel {
		case entity.SeverityMedium, entity.SeverityHigh:
			return true
		}
	}
	if rec.EmployeeID == nil {
		return true
	}
	if *rec.EmployeeID == "" {
		return true
	}
	return false
}
