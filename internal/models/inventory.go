package models

// DefaultMinStockLevel is the low-stock threshold used when an item has none.
const DefaultMinStockLevel = 5

// InventoryItem is a stocked part.
type InventoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description,omitempty"`

	QuantityOnHand float64 `json:"quantityOnHand"`

	// MinStockLevel is the reorder point. Zero means unset.
	MinStockLevel float64 `json:"minStockLevel"`

	UnitCost  float64 `json:"unitCost"`
	UnitPrice float64 `json:"unitPrice"`
	CreatedAt int64   `json:"createdAt"`
}

// ReorderPoint returns MinStockLevel, or DefaultMinStockLevel when unset.
func (i *InventoryItem) ReorderPoint() float64 {
	if i.MinStockLevel <= 0 {
		return DefaultMinStockLevel
	}
	return i.MinStockLevel
}

// ServiceItem is an entry in the labour catalog.
type ServiceItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DefaultPrice float64 `json:"defaultPrice"`
	CreatedAt    int64   `json:"createdAt"`
}

// Spending is an operational expense (rent, utilities, oil purchase...).
type Spending struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        int64   `json:"date"`
	Description string  `json:"description,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
}
