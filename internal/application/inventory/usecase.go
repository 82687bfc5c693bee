// Package inventory caso de uso del navegador de existencias (solo lectura).
package inventory

import (
	"context"
	"fmt"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

// UseCase lectura paginada de existencias por número de parte.
type UseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(itemRepo repository.InventoryItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// List devuelve una página de existencias ordenada por número de parte.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.InventoryItemDTO, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar existencias: %w", err)
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// GetByPartNumber devuelve las existencias de una parte.
func (uc *UseCase) GetByPartNumber(ctx context.Context, partNumber string) (*dto.InventoryItemDTO, error) {
	it, err := uc.itemRepo.GetByPartNumber(ctx, partNumber)
	if err != nil {
		return nil, fmt.Errorf("existencias de %s: %w", partNumber, err)
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	item := toItemDTO(it)
	return &item, nil
}

func toItemDTO(it *entity.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		PartNumber:     it.PartNumber,
		Description:    it.Description,
		QuantityOnHand: it.QuantityOnHand,
		LocationBin:    it.LocationBin,
	}
}
