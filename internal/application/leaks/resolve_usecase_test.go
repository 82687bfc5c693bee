package leaks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/leaks"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/resolution"
)

func TestSubmitVerdict_CierraCasoAbierto(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	when := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	err := uc.SubmitVerdict(context.Background(), 1, "Confirmed Theft", "cámara 4 lo confirma", "auditor.principal", when)
	require.NoError(t, err)

	rec := repo.records[1]
	require.NotNil(t, rec.ResolutionStatus)
	assert.Equal(t, string(resolution.VerdictConfirmedTheft), *rec.ResolutionStatus)
	require.NotNil(t, rec.ResolutionNote)
	assert.Equal(t, "cámara 4 lo confirma", *rec.ResolutionNote)
	require.NotNil(t, rec.ResolvedBy)
	assert.Equal(t, "auditor.principal", *rec.ResolvedBy)
	require.NotNil(t, rec.ResolvedAt)
	assert.True(t, rec.ResolvedAt.Equal(when))
}

func TestSubmitVerdict_VeredictoInvalidoNoEscribe(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	for _, bad := range []string{"", resolution.VerdictPlaceholder, "Cerrado", "OPEN"} {
		err := uc.SubmitVerdict(context.Background(), 1, bad, "", "auditor", time.Now())
		assert.ErrorIs(t, err, domain.ErrInvalidVerdict, "veredicto %q debe rechazarse", bad)
	}
	assert.Zero(t, repo.resolveCalls, "la validación rechaza antes de tocar el store")
	assert.Nil(t, repo.records[1].ResolutionStatus, "el caso sigue abierto")
}

func TestSubmitVerdict_ResolutorVacioNoEscribe(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	err := uc.SubmitVerdict(context.Background(), 1, "Paperwork Error", "", "   ", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidVerdict)
	assert.Zero(t, repo.resolveCalls)
}

func TestSubmitVerdict_CasoInexistente(t *testing.T) {
	uc := leaks.NewResolveUseCase(newFakeMovementRepo())

	err := uc.SubmitVerdict(context.Background(), 404, "Misplaced Item", "", "auditor", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un caso ya cerrado rechaza cualquier veredicto nuevo sin modificar nada:
// no hay transición de un veredicto a otro.
func TestSubmitVerdict_CasoYaResuelto(t *testing.T) {
	repo := newFakeMovementRepo(resolvedCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	err := uc.SubmitVerdict(context.Background(), 1, "Paperwork Error", "", "otro.auditor", time.Now())
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	assert.Equal(t, "Confirmed Theft", *repo.records[1].ResolutionStatus,
		"el veredicto original queda intacto")
	assert.Nil(t, repo.records[1].ResolvedBy, "el segundo intento no escribe nada")
}

// Dos revisores compiten por el mismo caso: exactamente uno gana. El segundo
// UPDATE condicional no toca filas y el caller recibe ErrAlreadyResolved.
func TestSubmitVerdict_CarreraExactamenteUnoGana(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	err1 := uc.SubmitVerdict(context.Background(), 1, "Confirmed Theft", "", "revisor.a", time.Now())
	err2 := uc.SubmitVerdict(context.Background(), 1, "Legitimate Adjustment", "", "revisor.b", time.Now())

	require.NoError(t, err1, "el primer veredicto gana")
	assert.ErrorIs(t, err2, domain.ErrAlreadyResolved, "el segundo pierde sin escribir")
	assert.Equal(t, "Confirmed Theft", *repo.records[1].ResolutionStatus)
	assert.Equal(t, "revisor.a", *repo.records[1].ResolvedBy)
}

func TestSubmitVerdict_FalloDelStoreSePropaga(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	repo.failWith = errors.New("conexión rechazada")
	uc := leaks.NewResolveUseCase(repo)

	err := uc.SubmitVerdict(context.Background(), 1, "Confirmed Theft", "", "auditor", time.Now())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyResolved)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitVerdict_FechaCeroSeRellena(t *testing.T) {
	repo := newFakeMovementRepo(openCase(1, "PN-1"))
	uc := leaks.NewResolveUseCase(repo)

	err := uc.SubmitVerdict(context.Background(), 1, "Resolved with Note", "nota", "auditor", time.Time{})
	require.NoError(t, err)
	require.NotNil(t, repo.records[1].ResolvedAt)
	assert.False(t, repo.records[1].ResolvedAt.IsZero(), "resolved_at nunca queda en cero")
}
