package api

import (
	"context"

	"acodelab/internal/gateway"
)

// StoreService wraps the PCon rewards store endpoints.
type StoreService struct {
	api Doer
}

func (s *StoreService) Items(ctx context.Context, params ListParams) ([]StoreItem, error) {
	var out []StoreItem
	err := s.api.Get(ctx, "/api/store/items", params.values(), &out)
	return out, err
}

func (s *StoreService) Item(ctx context.Context, id string) (StoreItem, error) {
	var out StoreItem
	err := s.api.Get(ctx, gateway.Path("api", "store", "items", id), nil, &out)
	return out, err
}

// Purchase buys quantity units of an item with PCon points.
func (s *StoreService) Purchase(ctx context.Context, itemID string, quantity int) (Purchase, error) {
	if quantity <= 0 {
		quantity = 1
	}
	var out Purchase
	err := s.api.Post(ctx, gateway.Path("api", "store", "items", itemID, "purchase"), purchaseRequest{Quantity: quantity}, &out)
	return out, err
}

func (s *StoreService) Inventory(ctx context.Context) ([]InventoryItem, error) {
	var out []InventoryItem
	err := s.api.Get(ctx, "/api/store/inventory", nil, &out)
	return out, err
}

func (s *StoreService) Purchases(ctx context.Context) ([]Purchase, error) {
	var out []Purchase
	err := s.api.Get(ctx, "/api/store/purchases", nil, &out)
	return out, err
}
