package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// GetByPartNumber obtiene un ítem por número de parte. nil, nil si no existe.
func (r *InventoryItemRepo) GetByPartNumber(ctx context.Context, partNumber string) (*entity.InventoryItem, error) {
	query := `
		SELECT part_number, description, quantity_on_hand, location_bin
		FROM inventory_items WHERE part_number = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, partNumber).Scan(
		&it.PartNumber, &it.Description, &it.QuantityOnHand, &it.LocationBin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List lista ítems paginados por número de parte.
func (r *InventoryItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT part_number, description, quantity_on_hand, location_bin
		FROM inventory_items ORDER BY part_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.PartNumber, &it.Description, &it.QuantityOnHand, &it.LocationBin); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// BulkUpsert inserta o reemplaza existencias por part_number (carga masiva).
func (r *InventoryItemRepo) BulkUpsert(ctx context.Context, items []*entity.InventoryItem) (int64, error) {
	query := `
		INSERT INTO inventory_items (part_number, description, quantity_on_hand, location_bin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (part_number)
		DO UPDATE SET description = EXCLUDED.description,
		              quantity_on_hand = EXCLUDED.quantity_on_hand,
		              location_bin = EXCLUDED.location_bin`
	var n int64
	for _, it := range items {
		if _, err := r.q.Exec(ctx, query, it.PartNumber, it.Description, it.QuantityOnHand, it.LocationBin); err != nil {
			return n, fmt.Errorf("upsert inventory item %s: %w", it.PartNumber, err)
		}
		n++
	}
	return n, nil
}
