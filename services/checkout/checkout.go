package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
	"github.com/caffeinepub/minecraft-rank-store/services/orders"
)

// Service turns a cart into backend orders. Placement is strictly
// sequential: one order per cart line, in cart order, with at most one
// request in flight. On the first failure no further placements are
// attempted and the cart is left untouched; orders already placed
// stay placed. There is deliberately no rollback: checkout is
// at-least-once, and the backend's status workflow reconciles any
// partial run. Only a fully successful run clears the cart and
// invalidates the order views.
type Service interface {
	PlaceOrders(ctx context.Context, token string, store *cart.Store, minecraftUsername string) ([]string, error)
}

type service struct {
	client backend.Client
	orders orders.Service
}

var _ Service = (*service)(nil)

func NewService(client backend.Client, orderService orders.Service) Service {
	return &service{
		client: client,
		orders: orderService,
	}
}

func (s *service) PlaceOrders(ctx context.Context, token string, store *cart.Store, minecraftUsername string) ([]string, error) {
	// Callers enforce the preconditions (authenticated, non-empty
	// username, non-empty cart); hitting these here is a caller bug.
	username := strings.TrimSpace(minecraftUsername)
	items := store.Items()

	orderIDs, err := placeSequential(ctx, items, func(ctx context.Context, rank backend.Rank) (string, error) {
		return s.client.PlaceOrder(ctx, token, username, rank.ID)
	})
	if err != nil {
		slog.With("error", err.Error()).With("username", username).Error("checkout failed, cart left intact")
		return nil, err
	}

	store.Clear()
	s.orders.Invalidate()
	slog.With("username", username).With("orders", len(orderIDs)).Info("checkout complete")
	return orderIDs, nil
}

// placeSequential runs one placement at a time and stops at the first
// failure. The ordering and fail-fast contract live here so the API
// shape makes them visible.
func placeSequential(ctx context.Context, items []backend.Rank, place func(context.Context, backend.Rank) (string, error)) ([]string, error) {
	orderIDs := make([]string, 0, len(items))
	for _, rank := range items {
		orderID, err := place(ctx, rank)
		if err != nil {
			return nil, fmt.Errorf("failed to place order for rank %s: %w", rank.ID, err)
		}
		orderIDs = append(orderIDs, orderID)
	}
	return orderIDs, nil
}
