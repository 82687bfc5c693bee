package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento registrados en receiving_log.
const (
	MovementTypeRECEIVING  = "RECEIVING"  // entrada de mercancía
	MovementTypeSALE       = "SALE"       // salida por venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste de inventario
	MovementTypeRETURN     = "RETURN"     // devolución
)

// Niveles de severidad asignados por el proceso de carga.
const (
	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// MovementRecord es un evento del log de movimientos (receiving_log).
//
// El log es append-only: los registros los crea únicamente el proceso de
// carga masiva. El núcleo solo los lee (clasificación, vistas) y aplica una
// única mutación: el cierre de un caso vía el flujo de resolución.
//
// Los campos puntero modelan columnas NULL de la tabla. EmployeeID distingue
// deliberadamente NULL (puntero nil) de cadena vacía: ambos significan
// "sin empleado atribuible" pero llegan con representación distinta según la
// fuente de carga, y el clasificador debe cubrir las dos.
type MovementRecord struct {
	ID             int64
	PartNumber     string
	Description    string
	Quantity       decimal.Decimal
	EmployeeID     *string
	MovementType   string
	LocationBin    string
	VarianceAmount *decimal.Decimal // delta esperado vs. real; negativo = faltante
	SeverityLevel  *string          // LOW | MEDIUM | HIGH
	Timestamp      time.Time

	// Campos del flujo de resolución. Un caso abierto tiene los cuatro en NULL
	// (o ResolutionStatus en 'OPEN'/'Unresolved'); al resolver se escriben los
	// cuatro juntos en un único UPDATE condicional y no vuelven a cambiar.
	ResolutionStatus *string
	ResolutionNote   *string
	ResolvedBy       *string
	ResolvedAt       *time.Time
}
