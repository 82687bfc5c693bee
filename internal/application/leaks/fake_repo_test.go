package leaks_test

import (
	"context"
	"strings"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/resolution"
)

// fakeMovementRepo implementación en memoria del puerto de movimientos.
// Resolve replica la semántica update-where-open del repositorio real.
type fakeMovementRepo struct {
	records map[int64]*entity.MovementRecord

	// forzar fallos de store
	failWith error

	// última llamada a ListLeaks, para aserciones
	lastMode    repository.LeakViewMode
	lastFilters repository.LeakFilters
	lastLimit   int

	resolveCalls int
}

func newFakeMovementRepo(records ...*entity.MovementRecord) *fakeMovementRepo {
	m := make(map[int64]*entity.MovementRecord, len(records))
	for _, r := range records {
		m[r.ID] = r
	}
	return &fakeMovementRepo{records: m}
}

func (f *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.MovementRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.records[id], nil
}

func (f *fakeMovementRepo) ListLeaks(_ context.Context, mode repository.LeakViewMode, filters repository.LeakFilters, limit int) ([]*entity.MovementRecord, error) {
	f.lastMode = mode
	f.lastFilters = filters
	f.lastLimit = limit
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.MovementRecord
	for _, r := range f.records {
		open := resolution.IsOpen(r.ResolutionStatus)
		if mode == repository.ViewOpen && !open {
			continue
		}
		if mode == repository.ViewResolved && open {
			continue
		}
		if filters.PartNumberContains != "" &&
			!strings.Contains(strings.ToLower(r.PartNumber), strings.ToLower(filters.PartNumberContains)) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListByPart(_ context.Context, partNumber string, limit int) ([]*entity.MovementRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.MovementRecord
	for _, r := range f.records {
		if r.PartNumber == partNumber {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.MovementRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.MovementRecord
	for _, r := range f.records {
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) Resolve(_ context.Context, id int64, status, note, resolvedBy string, resolvedAt time.Time) (bool, error) {
	f.resolveCalls++
	if f.failWith != nil {
		return false, f.failWith
	}
	rec, ok := f.records[id]
	if !ok || !resolution.IsOpen(rec.ResolutionStatus) {
		return false, nil
	}
	rec.ResolutionStatus = &status
	if note != "" {
		rec.ResolutionNote = &note
	}
	rec.ResolvedBy = &resolvedBy
	rec.ResolvedAt = &resolvedAt
	return true, nil
}

func (f *fakeMovementRepo) BulkInsert(_ context.Context, records []*entity.MovementRecord) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	for _, r := range records {
		f.records[r.ID] = r
	}
	return int64(len(records)), nil
}
