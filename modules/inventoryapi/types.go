package inventoryapi

import "time"

// InventoryItemRequest is the payload for creating or replacing an
// inventory item.
type InventoryItemRequest struct {
	ProductCode       string `json:"productCode" validate:"required"`
	Quantity          *int   `json:"quantity" validate:"required,gte=0"`
	WarehouseLocation string `json:"warehouseLocation"`
	ProductID         string `json:"productId" validate:"required"`
}

// QuantityChangeRequest is the payload for the quantity patch endpoint.
// QuantityChange is a pointer so a missing field is distinguishable
// from an explicit zero.
type QuantityChangeRequest struct {
	QuantityChange *int `json:"quantityChange"`
}

// StockStatusResponse is the check-stock payload.
type StockStatusResponse struct {
	InStock bool `json:"inStock"`
}

// ErrorDetails is the structured error body for non-validation
// failures.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}
