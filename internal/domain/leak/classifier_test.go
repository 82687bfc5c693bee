package leak_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/leak"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// cleanRecord movimiento que no dispara ninguna señal.
func cleanRecord() *entity.MovementRecord {
	return &entity.MovementRecord{
		ID:           1,
		PartNumber:   "PN-1001",
		Quantity:     decimal.NewFromInt(10),
		EmployeeID:   strPtr("E-042"),
		MovementType: entity.MovementTypeRECEIVING,
	}
}

func TestIsSuspicious_RegistroLimpioNoDispara(t *testing.T) {
	assert.False(t, leak.IsSuspicious(cleanRecord()),
		"un movimiento con empleado, sin varianza y sin severidad no es sospechoso")
}

func TestIsSuspicious_VarianzaNegativa(t *testing.T) {
	rec := cleanRecord()
	rec.VarianceAmount = decPtr("-3.5")
	assert.True(t, leak.IsSuspicious(rec), "varianza estrictamente negativa debe disparar")
}

func TestIsSuspicious_VarianzaCeroNoDispara(t *testing.T) {
	rec := cleanRecord()
	rec.VarianceAmount = decPtr("0")
	assert.False(t, leak.IsSuspicious(rec), "varianza cero no es señal")
}

func TestIsSuspicious_VarianzaPositivaNoDispara(t *testing.T) {
	rec := cleanRecord()
	rec.VarianceAmount = decPtr("7.25")
	assert.False(t, leak.IsSuspicious(rec), "varianza positiva no es señal")
}

func TestIsSuspicious_Severidad(t *testing.T) {
	cases := []struct {
		severity string
		want     bool
	}{
		{entity.SeverityLow, false},
		{entity.SeverityMedium, true},
		{entity.SeverityHigh, true},
	}
	for _, tc := range cases {
		rec := cleanRecord()
		rec.SeverityLevel = strPtr(tc.severity)
		assert.Equal(t, tc.want, leak.IsSuspicious(rec),
			"severidad %s: se esperaba %v", tc.severity, tc.want)
	}
}

// NULL y cadena vacía son dos representaciones distintas de "sin empleado";
// ambas deben disparar por separado.
func TestIsSuspicious_EmpleadoNULL(t *testing.T) {
	rec := cleanRecord()
	rec.EmployeeID = nil
	assert.True(t, leak.IsSuspicious(rec), "employee_id NULL debe disparar")
}

func TestIsSuspicious_EmpleadoCadenaVacia(t *testing.T) {
	rec := cleanRecord()
	rec.EmployeeID = strPtr("")
	assert.True(t, leak.IsSuspicious(rec), "employee_id \"\" debe disparar")
}

func TestIsSuspicious_NilNoDispara(t *testing.T) {
	assert.False(t, leak.IsSuspicious(nil), "un registro nil no es sospechoso ni debe fallar")
}

// Basta una señal: un registro con varias señales simultáneas sigue siendo un
// único caso sospechoso.
func TestIsSuspicious_SenalesCombinadas(t *testing.T) {
	rec := cleanRecord()
	rec.EmployeeID = nil
	rec.VarianceAmount = decPtr("-1")
	rec.SeverityLevel = strPtr(entity.SeverityHigh)
	assert.True(t, leak.IsSuspicious(rec))
}
