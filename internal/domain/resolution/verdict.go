// Package resolution define la máquina de estados del flujo de resolución:
// un caso nace OPEN y pasa exactamente una vez a un veredicto terminal.
package resolution

import "strings"

// Verdict es el estado terminal asignado por un revisor humano.
type Verdict string

// Conjunto terminal de veredictos. No existe transición de un veredicto a
// otro ni de vuelta a OPEN: una corrección posterior es un asunto nuevo,
// fuera de este flujo.
const (
	VerdictConfirmedTheft       Verdict = "Confirmed Theft"
	VerdictPaperworkError       Verdict = "Paperwork Error"
	VerdictMisplacedItem        Verdict = "Misplaced Item"
	VerdictDamagedScrapped      Verdict = "Damaged/Scrapped"
	VerdictLegitimateAdjustment Verdict = "Legitimate Adjustment"
	VerdictUnderWatch           Verdict = "Suspicious/Under Watch"
	VerdictResolvedWithNote     Verdict = "Resolved with Note"
)

// Representaciones de "caso abierto" en resolution_status. NULL en la tabla
// equivale a OpenStatusDefault.
const (
	OpenStatusDefault    = "OPEN"
	OpenStatusUnresolved = "Unresolved"
)

// Placeholder del selector de la UI; nunca es un veredicto válido.
const VerdictPlaceholder = "-- Select Verdict --"

var terminalSet = map[Verdict]struct{}{
	VerdictConfirmedTheft:       {},
	VerdictPaperworkError:       {},
	VerdictMisplacedItem:        {},
	VerdictDamagedScrapped:      {},
	VerdictLegitimateAdjustment: {},
	VerdictUnderWatch:           {},
	VerdictResolvedWithNote:     {},
}

// Terminal indica si v pertenece al conjunto terminal.
func Terminal(v Verdict) bool {
	_, ok := terminalSet[v]
	return ok
}

// Parse valida un veredicto recibido de la capa de entrada. Rechaza el
// placeholder, la cadena vacía y cualquier valor fuera del conjunto terminal.
func Parse(s string) (Verdict, bool) {
	v := Verdict(strings.TrimSpace(s))
	if !Terminal(v) {
		return "", false
	}
	return v, true
}

// Verdicts devuelve el conjunto terminal en orden estable (para selectores).
func Verdicts() []Verdict {
	return []Verdict{
		VerdictConfirmedTheft,
		VerdictPaperworkError,
		VerdictMisplacedItem,
		VerdictDamagedScrapped,
		VerdictLegitimateAdjustment,
		VerdictUnderWatch,
		VerdictResolvedWithNote,
	}
}

// IsOpen interpreta el valor de resolution_status de un registro: NULL,
// "OPEN" y "Unresolved" cuentan como caso abierto.
func IsOpen(status *string) bool {
	if status == nil {
		return true
	}
	switch *status {
	case "", OpenStatusDefault, OpenStatusUnresolved:
		return true
	}
	return false
}
