package backend

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/net/context"
)

// Identity-scoped calls: caller profile, roles, admin checks. The
// backend resolves the caller from the bearer token; the storefront
// never interprets the token beyond extracting its principal for logs.

func (c *HTTPClient) GetCallerUserProfile(ctx context.Context, token string) (*UserProfile, error) {
	profile := &UserProfile{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(profile).
		SetError(responseError).
		Get("/caller/profile")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching caller profile")
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching caller profile: %s", responseError.Error())
	}
	return profile, nil
}

func (c *HTTPClient) SaveCallerUserProfile(ctx context.Context, token string, profile UserProfile) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(profile).
		SetError(responseError).
		Put("/caller/profile")
	if err != nil {
		slog.With("error", err.Error()).Error("Error saving caller profile")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error saving caller profile: %s", responseError.Error())
	}
	return nil
}

func (c *HTTPClient) GetUserProfile(ctx context.Context, token string, principal string) (*UserProfile, error) {
	profile := &UserProfile{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(profile).
		SetError(responseError).
		SetPathParam("principal", principal).
		Get("/users/{principal}/profile")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching user profile")
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching profile for %s: %s", principal, responseError.Error())
	}
	return profile, nil
}

type adminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

func (c *HTTPClient) IsCallerAdmin(ctx context.Context, token string) (bool, error) {
	response := &adminCheckResponse{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(response).
		SetError(responseError).
		Get("/caller/admin")
	if err != nil {
		slog.With("error", err.Error()).Error("Error checking caller admin")
		return false, err
	}
	if resp.IsError() {
		return false, fmt.Errorf("error checking caller admin: %s", responseError.Error())
	}
	return response.IsAdmin, nil
}

type roleResponse struct {
	Role Role `json:"role"`
}

func (c *HTTPClient) GetCallerUserRole(ctx context.Context, token string) (Role, error) {
	response := &roleResponse{}
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(response).
		SetError(responseError).
		Get("/caller/role")
	if err != nil {
		slog.With("error", err.Error()).Error("Error fetching caller role")
		return RoleGuest, err
	}
	if resp.IsError() {
		return RoleGuest, fmt.Errorf("error fetching caller role: %s", responseError.Error())
	}
	return response.Role, nil
}

type assignRoleRequest struct {
	User string `json:"user"`
	Role Role   `json:"role"`
}

func (c *HTTPClient) AssignCallerUserRole(ctx context.Context, token string, principal string, role Role) error {
	responseError := &Error{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(assignRoleRequest{User: principal, Role: role}).
		SetError(responseError).
		Post("/roles")
	if err != nil {
		slog.With("error", err.Error()).Error("Error assigning role")
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("error assigning role %s to %s: %s", role, principal, responseError.Error())
	}
	return nil
}
