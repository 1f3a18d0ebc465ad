package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/metrics"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/validate"
	"github.com/mmynk/garagedesk/pkg/api"
)

// InventoryService implements the Connect InventoryService.
type InventoryService struct {
	store storage.Store
}

// NewInventoryService creates a new InventoryService with the given storage backend.
func NewInventoryService(store storage.Store) *InventoryService {
	return &InventoryService{store: store}
}

// CreateInventoryItem adds a stocked part. A blank SKU is generated by the store.
func (s *InventoryService) CreateInventoryItem(ctx context.Context, req *connect.Request[api.CreateInventoryItemRequest]) (*connect.Response[api.CreateInventoryItemResponse], error) {
	slog.Info("CreateInventoryItem request received", "name", req.Msg.Item.Name, "sku", req.Msg.Item.SKU)

	if err := validate.Struct(&req.Msg.Item); err != nil {
		return nil, toConnectError("CreateInventoryItem", err)
	}

	item := &models.InventoryItem{}
	applyInventoryInput(item, req.Msg.Item)
	if err := s.store.CreateInventoryItem(ctx, item); err != nil {
		return nil, toConnectError("CreateInventoryItem", err)
	}

	slog.Info("Inventory item created", "inventory_item_id", item.ID, "sku", item.SKU)
	return connect.NewResponse(&api.CreateInventoryItemResponse{Item: item}), nil
}

// ListInventoryItems returns every stocked part flagged with its low stock state.
func (s *InventoryService) ListInventoryItems(ctx context.Context, req *connect.Request[api.ListInventoryItemsRequest]) (*connect.Response[api.ListInventoryItemsResponse], error) {
	slog.Info("ListInventoryItems request received")

	items, err := s.store.ListInventoryItems(ctx)
	if err != nil {
		return nil, toConnectError("ListInventoryItems", err)
	}

	summaries := make([]*api.InventoryItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, &api.InventoryItemSummary{InventoryItem: item, LowStock: calculator.IsLowStock(item)})
	}

	slog.Info("ListInventoryItems successful", "count", len(summaries))
	return connect.NewResponse(&api.ListInventoryItemsResponse{Items: summaries}), nil
}

// UpdateInventoryItem overwrites a stocked part. A blank SKU keeps the current one.
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, req *connect.Request[api.UpdateInventoryItemRequest]) (*connect.Response[api.UpdateInventoryItemResponse], error) {
	slog.Info("UpdateInventoryItem request received", "inventory_item_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validate.Struct(&req.Msg.Item); err != nil {
		return nil, toConnectError("UpdateInventoryItem", err, "inventory_item_id", req.Msg.ID)
	}

	var item *models.InventoryItem
	err := s.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		item, err = tx.GetInventoryItem(ctx, req.Msg.ID)
		if err != nil {
			return err
		}
		applyInventoryInput(item, req.Msg.Item)
		return tx.UpdateInventoryItem(ctx, item)
	})
	if err != nil {
		return nil, toConnectError("UpdateInventoryItem", err, "inventory_item_id", req.Msg.ID)
	}

	slog.Info("Inventory item updated", "inventory_item_id", item.ID, "quantity_on_hand", item.QuantityOnHand)
	return connect.NewResponse(&api.UpdateInventoryItemResponse{Item: item}), nil
}

// DeleteInventoryItem removes a stocked part. Work orders that reference it
// skip the deduction when completed.
func (s *InventoryService) DeleteInventoryItem(ctx context.Context, req *connect.Request[api.DeleteInventoryItemRequest]) (*connect.Response[api.DeleteInventoryItemResponse], error) {
	slog.Info("DeleteInventoryItem request received", "inventory_item_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteInventoryItem(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteInventoryItem", err, "inventory_item_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteInventoryItemResponse{}), nil
}

// ListLowStock returns the parts at or below their reorder point.
func (s *InventoryService) ListLowStock(ctx context.Context, req *connect.Request[api.ListLowStockRequest]) (*connect.Response[api.ListLowStockResponse], error) {
	items, err := s.store.ListInventoryItems(ctx)
	if err != nil {
		return nil, toConnectError("ListLowStock", err)
	}

	low := calculator.LowStock(items)
	metrics.LowStockItems.Set(float64(len(low)))

	slog.Info("ListLowStock successful", "count", len(low))
	return connect.NewResponse(&api.ListLowStockResponse{Items: low}), nil
}

func applyInventoryInput(item *models.InventoryItem, in api.InventoryItemInput) {
	item.Name = strings.TrimSpace(in.Name)
	if sku := strings.TrimSpace(in.SKU); sku != "" {
		item.SKU = sku
	}
	item.Description = in.Description
	item.QuantityOnHand = in.QuantityOnHand.Float64()
	item.MinStockLevel = in.MinStockLevel.Float64()
	item.UnitCost = in.UnitCost.Float64()
	item.UnitPrice = in.UnitPrice.Float64()
}

// CatalogService implements the Connect CatalogService over service items.
type CatalogService struct {
	store storage.Store
}

// NewCatalogService creates a new CatalogService with the given storage backend.
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// CreateServiceItem adds a labour entry to the catalog.
func (s *CatalogService) CreateServiceItem(ctx context.Context, req *connect.Request[api.CreateServiceItemRequest]) (*connect.Response[api.CreateServiceItemResponse], error) {
	slog.Info("CreateServiceItem request received", "name", req.Msg.Item.Name)

	if err := validate.Struct(&req.Msg.Item); err != nil {
		return nil, toConnectError("CreateServiceItem", err)
	}

	item := &models.ServiceItem{}
	applyServiceInput(item, req.Msg.Item)
	if err := s.store.CreateServiceItem(ctx, item); err != nil {
		return nil, toConnectError("CreateServiceItem", err)
	}

	slog.Info("Service item created", "service_item_id", item.ID)
	return connect.NewResponse(&api.CreateServiceItemResponse{Item: item}), nil
}

// ListServiceItems returns the whole catalog.
func (s *CatalogService) ListServiceItems(ctx context.Context, req *connect.Request[api.ListServiceItemsRequest]) (*connect.Response[api.ListServiceItemsResponse], error) {
	items, err := s.store.ListServiceItems(ctx)
	if err != nil {
		return nil, toConnectError("ListServiceItems", err)
	}
	return connect.NewResponse(&api.ListServiceItemsResponse{Items: items}), nil
}

// UpdateServiceItem overwrites a catalog entry.
func (s *CatalogService) UpdateServiceItem(ctx context.Context, req *connect.Request[api.UpdateServiceItemRequest]) (*connect.Response[api.UpdateServiceItemResponse], error) {
	slog.Info("UpdateServiceItem request received", "service_item_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validate.Struct(&req.Msg.Item); err != nil {
		return nil, toConnectError("UpdateServiceItem", err, "service_item_id", req.Msg.ID)
	}

	var item *models.ServiceItem
	err := s.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		item, err = tx.GetServiceItem(ctx, req.Msg.ID)
		if err != nil {
			return err
		}
		applyServiceInput(item, req.Msg.Item)
		return tx.UpdateServiceItem(ctx, item)
	})
	if err != nil {
		return nil, toConnectError("UpdateServiceItem", err, "service_item_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.UpdateServiceItemResponse{Item: item}), nil
}

// DeleteServiceItem removes a catalog entry.
func (s *CatalogService) DeleteServiceItem(ctx context.Context, req *connect.Request[api.DeleteServiceItemRequest]) (*connect.Response[api.DeleteServiceItemResponse], error) {
	slog.Info("DeleteServiceItem request received", "service_item_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteServiceItem(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteServiceItem", err, "service_item_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteServiceItemResponse{}), nil
}

func applyServiceInput(item *models.ServiceItem, in api.ServiceItemInput) {
	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.DefaultPrice = in.DefaultPrice.Float64()
}
