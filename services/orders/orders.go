package orders

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

var ErrEmptyStatus = errors.New("order status must not be empty")

// Service is the order read path (per-player history and the
// unrestricted admin view) plus the admin status mutation. Both read
// views are cached until a mutation invalidates them; placements in the
// checkout workflow invalidate through here as well.
type Service interface {
	// GetOrdersByUsername short-circuits an empty username to an empty
	// result without issuing a request.
	GetOrdersByUsername(ctx context.Context, username string) ([]backend.Order, error)
	GetAllOrders(ctx context.Context, token string) ([]backend.Order, error)
	// GetOrder returns (nil, nil) for an unknown ID.
	GetOrder(ctx context.Context, orderID string) (*backend.Order, error)
	// UpdateOrderStatus accepts any non-empty status string; the set of
	// recognized values is advisory labeling only, never validation.
	UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) error
	// Invalidate discards both cached order views.
	Invalidate()
}

type service struct {
	client backend.Client

	mu         sync.Mutex
	byUsername map[string][]backend.Order
	all        []backend.Order
	haveAll    bool
}

var _ Service = (*service)(nil)

func NewService(client backend.Client) Service {
	return &service{
		client:     client,
		byUsername: make(map[string][]backend.Order),
	}
}

func (s *service) GetOrdersByUsername(ctx context.Context, username string) ([]backend.Order, error) {
	// Trim once so padded spellings of the same name share a cache entry.
	username = strings.TrimSpace(username)
	if username == "" {
		return []backend.Order{}, nil
	}

	s.mu.Lock()
	if cached, ok := s.byUsername[username]; ok {
		s.mu.Unlock()
		return copyOrders(cached), nil
	}
	s.mu.Unlock()

	orders, err := s.client.GetOrdersByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.byUsername[username] = orders
	s.mu.Unlock()
	return copyOrders(orders), nil
}

func (s *service) GetAllOrders(ctx context.Context, token string) ([]backend.Order, error) {
	s.mu.Lock()
	if s.haveAll {
		cached := copyOrders(s.all)
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	orders, err := s.client.GetAllOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.all = orders
	s.haveAll = true
	s.mu.Unlock()
	return copyOrders(orders), nil
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*backend.Order, error) {
	return s.client.GetOrder(ctx, orderID)
}

func (s *service) UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrEmptyStatus
	}
	if err := s.client.UpdateOrderStatus(ctx, token, orderID, status); err != nil {
		return err
	}
	slog.With("orderId", orderID).With("status", status).Info("order status updated")
	s.Invalidate()
	return nil
}

func (s *service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUsername = make(map[string][]backend.Order)
	s.all = nil
	s.haveAll = false
}

func copyOrders(orders []backend.Order) []backend.Order {
	out := make([]backend.Order, len(orders))
	copy(out, orders)
	return out
}
