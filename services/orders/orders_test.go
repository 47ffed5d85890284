package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

type fakeBackend struct {
	backend.Client

	byUsername     map[string][]backend.Order
	all            []backend.Order
	usernameCalls  int
	allCalls       int
	statusUpdates  []string
	statusUpdateID string
}

func (f *fakeBackend) GetOrdersByUsername(_ context.Context, username string) ([]backend.Order, error) {
	f.usernameCalls++
	return f.byUsername[username], nil
}

func (f *fakeBackend) GetAllOrders(_ context.Context, _ string) ([]backend.Order, error) {
	f.allCalls++
	return f.all, nil
}

func (f *fakeBackend) GetOrder(_ context.Context, orderID string) (*backend.Order, error) {
	for _, o := range f.all {
		if o.ID == orderID {
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeBackend) UpdateOrderStatus(_ context.Context, _ string, orderID string, status string) error {
	f.statusUpdateID = orderID
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

var steveOrder = backend.Order{ID: "o1", RankID: "vip", RankName: "VIP", Price: 5, MinecraftUsername: "Steve", Status: "pending"}

func TestEmptyUsernameShortCircuits(t *testing.T) {
	fake := &fakeBackend{}
	svc := NewService(fake)

	for _, username := range []string{"", "   "} {
		result, err := svc.GetOrdersByUsername(context.Background(), username)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	}
	assert.Equal(t, 0, fake.usernameCalls, "empty usernames must not issue a request")
}

func TestOrdersByUsernameCached(t *testing.T) {
	fake := &fakeBackend{byUsername: map[string][]backend.Order{"Steve": {steveOrder}}}
	svc := NewService(fake)

	first, err := svc.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = svc.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.usernameCalls)
}

func TestOrdersByUsernameTrimsBeforeCaching(t *testing.T) {
	fake := &fakeBackend{byUsername: map[string][]backend.Order{"Steve": {steveOrder}}}
	svc := NewService(fake)

	first, err := svc.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	require.Len(t, first, 1)

	padded, err := svc.GetOrdersByUsername(context.Background(), "  Steve  ")
	require.NoError(t, err)
	assert.Len(t, padded, 1)
	assert.Equal(t, 1, fake.usernameCalls, "padded spelling must hit the same cache entry")
}

func TestAllOrdersCached(t *testing.T) {
	fake := &fakeBackend{all: []backend.Order{steveOrder}}
	svc := NewService(fake)

	_, err := svc.GetAllOrders(context.Background(), "token")
	require.NoError(t, err)
	_, err = svc.GetAllOrders(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.allCalls)
}

func TestUpdateOrderStatusInvalidatesBothViews(t *testing.T) {
	fake := &fakeBackend{
		byUsername: map[string][]backend.Order{"Steve": {steveOrder}},
		all:        []backend.Order{steveOrder},
	}
	svc := NewService(fake)

	_, err := svc.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	_, err = svc.GetAllOrders(context.Background(), "token")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), "token", "o1", "delivered"))
	assert.Equal(t, "o1", fake.statusUpdateID)
	assert.Equal(t, []string{"delivered"}, fake.statusUpdates)

	_, err = svc.GetOrdersByUsername(context.Background(), "Steve")
	require.NoError(t, err)
	_, err = svc.GetAllOrders(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.usernameCalls)
	assert.Equal(t, 2, fake.allCalls)
}

func TestUpdateOrderStatusRejectsEmptyStatus(t *testing.T) {
	fake := &fakeBackend{}
	svc := NewService(fake)

	err := svc.UpdateOrderStatus(context.Background(), "token", "o1", "   ")
	require.ErrorIs(t, err, ErrEmptyStatus)
	assert.Empty(t, fake.statusUpdates, "no request on empty status")
}

func TestGetOrderPassThrough(t *testing.T) {
	fake := &fakeBackend{all: []backend.Order{steveOrder}}
	svc := NewService(fake)

	order, err := svc.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "VIP", order.RankName)

	missing, err := svc.GetOrder(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
