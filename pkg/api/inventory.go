package api

import (
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

type InventoryItemInput struct {
	Name           string       `json:"name" validate:"required"`
	SKU            string       `json:"sku,omitempty"`
	Description    string       `json:"description,omitempty"`
	QuantityOnHand money.Amount `json:"quantityOnHand" validate:"gte=0"`
	MinStockLevel  money.Amount `json:"minStockLevel" validate:"gte=0"`
	UnitCost       money.Amount `json:"unitCost" validate:"gte=0"`
	UnitPrice      money.Amount `json:"unitPrice" validate:"gte=0"`
}

type InventoryItemSummary struct {
	*models.InventoryItem
	LowStock bool `json:"lowStock"`
}

type CreateInventoryItemRequest struct {
	Item InventoryItemInput `json:"item"`
}

type CreateInventoryItemResponse struct {
	Item *models.InventoryItem `json:"item"`
}

type ListInventoryItemsRequest struct{}

type ListInventoryItemsResponse struct {
	Items []*InventoryItemSummary `json:"items"`
}

type UpdateInventoryItemRequest struct {
	ID   string             `json:"id"`
	Item InventoryItemInput `json:"item"`
}

type UpdateInventoryItemResponse struct {
	Item *models.InventoryItem `json:"item"`
}

type DeleteInventoryItemRequest struct {
	ID string `json:"id"`
}

type DeleteInventoryItemResponse struct{}

type ListLowStockRequest struct{}

type ListLowStockResponse struct {
	Items []*models.InventoryItem `json:"items"`
}

type ServiceItemInput struct {
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description,omitempty"`
	DefaultPrice money.Amount `json:"defaultPrice" validate:"gte=0"`
}

type CreateServiceItemRequest struct {
	Item ServiceItemInput `json:"item"`
}

type CreateServiceItemResponse struct {
	Item *models.ServiceItem `json:"item"`
}

type ListServiceItemsRequest struct{}

type ListServiceItemsResponse struct {
	Items []*models.ServiceItem `json:"items"`
}

type UpdateServiceItemRequest struct {
	ID   string           `json:"id"`
	Item ServiceItemInput `json:"item"`
}

type UpdateServiceItemResponse struct {
	Item *models.ServiceItem `json:"item"`
}

type DeleteServiceItemRequest struct {
	ID string `json:"id"`
}

type DeleteServiceItemResponse struct{}
