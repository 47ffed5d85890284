package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
	"github.com/caffeinepub/minecraft-rank-store/services/orders"
)

type fakeBackend struct {
	backend.Client

	placed     []string // rank IDs in placement order
	usernames  []string
	failOnRank string
	nextID     int

	ordersFetches int
}

func (f *fakeBackend) PlaceOrder(_ context.Context, _ string, minecraftUsername string, rankID string) (string, error) {
	if rankID == f.failOnRank {
		return "", errors.New("backend unavailable")
	}
	f.nextID++
	f.placed = append(f.placed, rankID)
	f.usernames = append(f.usernames, minecraftUsername)
	return fmt.Sprintf("order-%d", f.nextID), nil
}

func (f *fakeBackend) GetOrdersByUsername(_ context.Context, _ string) ([]backend.Order, error) {
	f.ordersFetches++
	return []backend.Order{}, nil
}

func newCart(ranks ...backend.Rank) *cart.Store {
	store := cart.NewStore()
	for _, r := range ranks {
		store.AddItem(r)
	}
	return store
}

var (
	rankA = backend.Rank{ID: "a", Name: "VIP", Price: 5}
	rankB = backend.Rank{ID: "b", Name: "MVP", Price: 3}
	rankC = backend.Rank{ID: "c", Name: "Elite", Price: 10}
)

func TestPlaceOrdersSuccess(t *testing.T) {
	fake := &fakeBackend{}
	svc := NewService(fake, orders.NewService(fake))
	store := newCart(rankA, rankB)

	orderIDs, err := svc.PlaceOrders(context.Background(), "token", store, "Steve")
	require.NoError(t, err)

	assert.Equal(t, []string{"order-1", "order-2"}, orderIDs)
	assert.Equal(t, []string{"a", "b"}, fake.placed, "placements must follow cart order")
	assert.Equal(t, 0, store.Size(), "cart must be cleared on full success")
}

func TestPlaceOrdersTrimsUsername(t *testing.T) {
	fake := &fakeBackend{}
	svc := NewService(fake, orders.NewService(fake))

	_, err := svc.PlaceOrders(context.Background(), "token", newCart(rankA), "  Steve  ")
	require.NoError(t, err)
	require.Equal(t, []string{"Steve"}, fake.usernames)
}

func TestPlaceOrdersFailFast(t *testing.T) {
	fake := &fakeBackend{failOnRank: "b"}
	svc := NewService(fake, orders.NewService(fake))
	store := newCart(rankA, rankB, rankC)

	orderIDs, err := svc.PlaceOrders(context.Background(), "token", store, "Steve")
	require.Error(t, err)
	assert.Nil(t, orderIDs)

	// The first order went through, the third was never attempted, and
	// the cart is left intact for a retry.
	assert.Equal(t, []string{"a"}, fake.placed)
	assert.Equal(t, 3, store.Size())
}

func TestPlaceOrdersInvalidatesOrderViews(t *testing.T) {
	fake := &fakeBackend{}
	orderService := orders.NewService(fake)
	svc := NewService(fake, orderService)

	// Prime the by-username cache.
	_, err := orderService.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	_, err = orderService.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	require.Equal(t, 1, fake.ordersFetches, "second read should hit the cache")

	_, err = svc.PlaceOrders(context.Background(), "token", newCart(rankA), "Steve")
	require.NoError(t, err)

	_, err = orderService.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.ordersFetches, "checkout must invalidate the cached view")
}

func TestPlaceOrdersEmptyCart(t *testing.T) {
	fake := &fakeBackend{}
	svc := NewService(fake, orders.NewService(fake))

	orderIDs, err := svc.PlaceOrders(context.Background(), "token", cart.NewStore(), "Steve")
	require.NoError(t, err)
	assert.Empty(t, orderIDs)
	assert.Empty(t, fake.placed)
}
