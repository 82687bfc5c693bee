package dto

import "github.com/shopspring/decimal"

// InventoryItemDTO existencias de una parte.
type InventoryItemDTO struct {
	PartNumber     string          `json:"part_number"`
	Description    string          `json:"description"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	LocationBin    string          `json:"location_bin"`
}
