package profile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

// Service covers the caller's profile (the Minecraft username tied to
// an identity) and role lookups. Profile reads are cached per principal
// and invalidated on save; role checks are pass-throughs because the
// backend is the only authority on privilege.
type Service interface {
	// GetCallerProfile returns (nil, nil) when the caller has not saved
	// a profile yet.
	GetCallerProfile(ctx context.Context, token string, principal string) (*backend.UserProfile, error)
	SaveCallerProfile(ctx context.Context, token string, principal string, profile backend.UserProfile) error
	// GetUserProfile is the admin lookup of another user's profile.
	GetUserProfile(ctx context.Context, token string, principal string) (*backend.UserProfile, error)
	IsAdmin(ctx context.Context, token string) (bool, error)
	Role(ctx context.Context, token string) (backend.Role, error)
	AssignRole(ctx context.Context, token string, principal string, role backend.Role) error
}

type service struct {
	client backend.Client

	mu     sync.Mutex
	cached map[string]*backend.UserProfile
}

var _ Service = (*service)(nil)

func NewService(client backend.Client) Service {
	return &service{
		client: client,
		cached: make(map[string]*backend.UserProfile),
	}
}

func (s *service) GetCallerProfile(ctx context.Context, token string, principal string) (*backend.UserProfile, error) {
	if principal != "" {
		s.mu.Lock()
		if p, ok := s.cached[principal]; ok {
			s.mu.Unlock()
			return p, nil
		}
		s.mu.Unlock()
	}

	p, err := s.client.GetCallerUserProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if principal != "" && p != nil {
		s.mu.Lock()
		s.cached[principal] = p
		s.mu.Unlock()
	}
	return p, nil
}

func (s *service) SaveCallerProfile(ctx context.Context, token string, principal string, profile backend.UserProfile) error {
	if err := s.client.SaveCallerUserProfile(ctx, token, profile); err != nil {
		return err
	}
	if principal != "" {
		s.mu.Lock()
		delete(s.cached, principal)
		s.mu.Unlock()
	}
	slog.With("principal", principal).Info("caller profile saved")
	return nil
}

func (s *service) GetUserProfile(ctx context.Context, token string, principal string) (*backend.UserProfile, error) {
	return s.client.GetUserProfile(ctx, token, principal)
}

func (s *service) IsAdmin(ctx context.Context, token string) (bool, error) {
	return s.client.IsCallerAdmin(ctx, token)
}

func (s *service) Role(ctx context.Context, token string) (backend.Role, error) {
	return s.client.GetCallerUserRole(ctx, token)
}

func (s *service) AssignRole(ctx context.Context, token string, principal string, role backend.Role) error {
	return s.client.AssignCallerUserRole(ctx, token, principal, role)
}
