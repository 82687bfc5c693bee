package repository

import (
	"context"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia de existencias por parte.
// Solo lectura para el núcleo de fugas; la carga masiva usa BulkUpsert.
type InventoryItemRepository interface {
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.InventoryItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error)
	BulkUpsert(ctx context.Context, items []*entity.InventoryItem) (int64, error)
}
