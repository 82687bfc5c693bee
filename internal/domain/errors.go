package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrAlreadyResolved: el caso ya tiene veredicto; ninguna transición sale
	// de un estado terminal y nada vuelve a OPEN. El UPDATE condicional no
	// tocó la fila.
	ErrAlreadyResolved = errors.New("el caso ya fue resuelto")

	// ErrInvalidVerdict: veredicto desconocido/placeholder o identidad del
	// resolutor vacía. Se rechaza antes de cualquier escritura.
	ErrInvalidVerdict = errors.New("veredicto inválido")
)
