package inventory

// InventoryItem is a stock-count entry keyed by product code.
//
// ProductCode is indexed but deliberately not unique: the schema never
// enforced uniqueness and lookups take the store's first match.
type InventoryItem struct {
	ID                string `gorm:"primarykey;size:36" json:"id"`
	ProductCode       string `gorm:"size:50;not null;index" json:"productCode"`
	Quantity          int    `gorm:"not null;default:0" json:"quantity"`
	WarehouseLocation string `gorm:"size:100" json:"warehouseLocation"`
	// ProductID references a product in the product service. It is a
	// cross-service reference, not a foreign key; no local integrity
	// check is performed.
	ProductID string `gorm:"size:36;not null;index" json:"productId"`
}

// TableName returns the table name for the InventoryItem model.
func (InventoryItem) TableName() string {
	return "inventory_items"
}
