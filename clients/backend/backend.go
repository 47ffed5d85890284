package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Client is the call contract of the remote rank/order backend. The
// storefront never touches backend state directly; every read and write
// goes through one of these calls. Authenticated calls carry the
// caller's bearer token; the backend decides what that identity may do.
type Client interface {
	GetActiveRanks(ctx context.Context) ([]Rank, error)
	// GetRank returns (nil, nil) when no rank has the given ID.
	GetRank(ctx context.Context, rankID string) (*Rank, error)
	CreateRank(ctx context.Context, token string, rank Rank) error
	UpdateRank(ctx context.Context, token string, rank Rank) error
	DeleteRank(ctx context.Context, token string, rankID string) error

	GetAllOrders(ctx context.Context, token string) ([]Order, error)
	// GetOrder returns (nil, nil) when no order has the given ID.
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	GetOrdersByUsername(ctx context.Context, username string) ([]Order, error)
	PlaceOrder(ctx context.Context, token string, minecraftUsername string, rankID string) (string, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) error

	GetCallerUserProfile(ctx context.Context, token string) (*UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, token string, profile UserProfile) error
	GetUserProfile(ctx context.Context, token string, principal string) (*UserProfile, error)
	IsCallerAdmin(ctx context.Context, token string) (bool, error)
	GetCallerUserRole(ctx context.Context, token string) (Role, error)
	AssignCallerUserRole(ctx context.Context, token string, principal string, role Role) error
}

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	http *resty.Client
}

func NewClient(client *resty.Client) *HTTPClient {
	return &HTTPClient{
		http: client,
	}
}

func (c *HTTPClient) GetActiveRanks(ctx context.Context) ([]Rank, error) {
	ranks := make([]Rank, 0)
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ranks).
		SetError(responseError).
		Get("/ranks/active")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching active ranks")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching active ranks: %s", responseError.Error())
	}
	return ranks, nil
}

func (c *HTTPClient) GetRank(ctx context.Context, rankID string) (*Rank, error) {
	rank := &Rank{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(rank).
		SetError(responseError).
		SetPathParam("rankId", rankID).
		Get("/ranks/{rankId}")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching rank")
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching rank %s: %s", rankID, responseError.Error())
	}
	return rank, nil
}

func (c *HTTPClient) CreateRank(ctx context.Context, token string, rank Rank) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(rank).
		SetError(responseError).
		Post("/ranks")
	if err != nil {
		slog.With("error", err.Error()).Error("Error creating rank")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error creating rank %s: %s", rank.ID, responseError.Error())
	}
	return nil
}

func (c *HTTPClient) UpdateRank(ctx context.Context, token string, rank Rank) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(rank).
		SetError(responseError).
		SetPathParam("rankId", rank.ID).
		Put("/ranks/{rankId}")
	if err != nil {
		slog.With("error", err.Error()).Error("Error updating rank")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error updating rank %s: %s", rank.ID, responseError.Error())
	}
	return nil
}

func (c *HTTPClient) DeleteRank(ctx context.Context, token string, rankID string) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(responseError).
		SetPathParam("rankId", rankID).
		Delete("/ranks/{rankId}")
	if err != nil {
		slog.With("error", err.Error()).Error("Error deleting rank")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error deleting rank %s: %s", rankID, responseError.Error())
	}
	return nil
}

func (c *HTTPClient) GetAllOrders(ctx context.Context, token string) ([]Order, error) {
	orders := make([]Order, 0)
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&orders).
		SetError(responseError).
		Get("/orders")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching all orders")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching all orders: %s", responseError.Error())
	}
	return orders, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order := &Order{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(order).
		SetError(responseError).
		SetPathParam("orderId", orderID).
		Get("/orders/{orderId}")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching order")
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching order %s: %s", orderID, responseError.Error())
	}
	return order, nil
}

func (c *HTTPClient) GetOrdersByUsername(ctx context.Context, username string) ([]Order, error) {
	orders := make([]Order, 0)
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&orders).
		SetError(responseError).
		SetQueryParam("username", username).
		Get("/orders/search")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching orders by username")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching orders for %s: %s", username, responseError.Error())
	}
	return orders, nil
}

type placeOrderRequest struct {
	MinecraftUsername string `json:"minecraftUsername"`
	RankID            string `json:"rankId"`
}

type placeOrderResponse struct {
	OrderID string `json:"orderId"`
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, token string, minecraftUsername string, rankID string) (string, error) {
	response := &placeOrderResponse{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(placeOrderRequest{
			MinecraftUsername: minecraftUsername,
			RankID:            rankID,
		}).
		SetResult(response).
		SetError(responseError).
		Post("/orders")
	if err != nil {
		slog.With("error", err.Error()).Error("Error placing order")
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("error placing order for rank %s: %s", rankID, responseError.Error())
	}
	return response.OrderID, nil
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(statusUpdateRequest{Status: status}).
		SetError(responseError).
		SetPathParam("orderId", orderID).
		Patch("/orders/{orderId}/status")
	if err != nil {
		slog.With("error", err.Error()).Error("Error updating order status")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error updating status of order %s: %s", orderID, responseError.Error())
	}
	return nil
}
