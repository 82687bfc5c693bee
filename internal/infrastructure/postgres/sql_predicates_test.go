package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El fragmento SQL de estado abierto debe cubrir las mismas formas que
// resolution.IsOpen: NULL, cadena vacía, 'OPEN' y 'Unresolved'. Si divergen,
// una fila con resolution_status = '' caería en la vista de resueltos y a la
// vez sería rechazada por Resolve.
func TestOpenStatus_CubreLasFormasAbiertasDelDominio(t *testing.T) {
	assert.Contains(t, openStatus, "resolution_status IS NULL")
	for _, form := range []string{"''", "'OPEN'", "'Unresolved'"} {
		assert.Contains(t, openStatus, form,
			"forma abierta %s ausente del fragmento SQL", form)
	}
}

// El predicado de fuga en SQL debe comprobar las cuatro señales del
// clasificador, con NULL y cadena vacía de employee_id por separado.
func TestLeakPredicate_CubreLasCuatroSenales(t *testing.T) {
	assert.Contains(t, leakPredicate, "variance_amount < 0")
	assert.Contains(t, leakPredicate, "severity_level IN ('MEDIUM', 'HIGH')")
	assert.Contains(t, leakPredicate, "employee_id IS NULL")
	assert.Contains(t, leakPredicate, "employee_id = ''")
}
