// Package analytics contiene el caso de uso del God View: los KPIs del
// encabezado del Command Center calculados sobre datos reales.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

// resolvedWindow ventana del KPI de casos cerrados.
const resolvedWindow = 7 * 24 * time.Hour

// SummaryCache puerto de caché del resumen (implementado sobre Redis).
// Un fallo de caché nunca es fatal: se registra y se recalcula.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 60 * time.Second
)

// DashboardUseCase calcula el DashboardSummaryDTO.
//
// Cuatro agregados de solo lectura vía AnalyticsRepository; el resultado se
// cachea con TTL corto porque el encabezado se consulta en cada carga de
// página y los agregados recorren el log completo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         SummaryCache // opcional; nil = sin caché
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache}
}

// GetSummary devuelve los KPIs del encabezado. Con caché disponible intenta
// primero la entrada cacheada; en miss o error de caché consulta el store y
// repuebla. Un fallo del store se propaga siempre como error.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, summaryCacheKey); err == nil && raw != nil {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	now := time.Now()

	onHand, err := uc.analyticsRepo.TotalPartsOnHand(ctx)
	if err != nil {
		return nil, fmt.Errorf("total partes en mano: %w", err)
	}
	openLeaks, err := uc.analyticsRepo.CountOpenLeaks(ctx)
	if err != nil {
		return nil, fmt.Errorf("casos abiertos: %w", err)
	}
	unattributed, err := uc.analyticsRepo.CountUnattributedMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("movimientos sin empleado: %w", err)
	}
	resolved, err := uc.analyticsRepo.CountResolvedSince(ctx, now.Add(-resolvedWindow))
	if err != nil {
		return nil, fmt.Errorf("casos resueltos recientes: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalPartsOnHand:      onHand,
		OpenLeaks:             openLeaks,
		UnattributedMovements: unattributed,
		ResolvedLastSevenDays: resolved,
		GeneratedAt:           now.Format(time.RFC3339),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, summaryCacheKey, raw, summaryCacheTTL)
		}
	}
	return summary, nil
}
