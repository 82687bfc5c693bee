package entity

import "github.com/shopspring/decimal"

// InventoryItem es el agregado de existencias por número de parte
// (tabla inventory_items). Solo lectura para el núcleo de fugas; lo escribe
// únicamente la carga masiva. Alimenta los totales del dashboard.
type InventoryItem struct {
	PartNumber     string
	Description    string
	QuantityOnHand decimal.Decimal
	LocationBin    string
}
