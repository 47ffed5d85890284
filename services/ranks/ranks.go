package ranks

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/utils"
)

// How long a fetched catalog snapshot stays fresh. Reads inside the
// window reuse the snapshot; reads after it, or after any admin
// mutation, go back to the backend.
const freshnessWindow = 5 * time.Minute

// Service is the rank catalog read path plus the admin mutation path.
// Admin calls are gated by the backend, not here; on success each one
// invalidates the cached catalog so the next read sees the change.
type Service interface {
	GetActiveRanks(ctx context.Context) ([]backend.Rank, error)
	// GetRank returns (nil, nil) for an unknown ID. Inactive ranks are
	// still addressable here even though the catalog hides them.
	GetRank(ctx context.Context, rankID string) (*backend.Rank, error)
	CreateRank(ctx context.Context, token string, rank backend.Rank) error
	UpdateRank(ctx context.Context, token string, rank backend.Rank) error
	DeleteRank(ctx context.Context, token string, rankID string) error
	// Invalidate discards the cached catalog snapshot.
	Invalidate()
}

type service struct {
	client backend.Client

	mu        sync.Mutex
	snapshot  []backend.Rank
	fetchedAt time.Time
	now       func() time.Time
}

var _ Service = (*service)(nil)

func NewService(client backend.Client) Service {
	return &service{
		client: client,
		now:    time.Now,
	}
}

func (s *service) GetActiveRanks(ctx context.Context) ([]backend.Rank, error) {
	s.mu.Lock()
	if s.snapshot != nil && s.now().Sub(s.fetchedAt) < freshnessWindow {
		out := copyRanks(s.snapshot)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	// The lock is not held across the backend call so a slow fetch never
	// blocks other readers or Invalidate. Concurrent misses may fetch
	// twice; the last snapshot stored wins.
	ranks, err := s.client.GetActiveRanks(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = ranks
	s.fetchedAt = s.now()
	s.mu.Unlock()
	return copyRanks(ranks), nil
}

func (s *service) GetRank(ctx context.Context, rankID string) (*backend.Rank, error) {
	return s.client.GetRank(ctx, rankID)
}

func (s *service) CreateRank(ctx context.Context, token string, rank backend.Rank) error {
	if err := s.client.CreateRank(ctx, token, rank); err != nil {
		return err
	}
	slog.With("rankId", rank.ID).Info("rank created")
	s.Invalidate()
	return nil
}

func (s *service) UpdateRank(ctx context.Context, token string, rank backend.Rank) error {
	prior := s.cachedRank(rank.ID)
	if err := s.client.UpdateRank(ctx, token, rank); err != nil {
		return err
	}
	if prior != nil {
		changes := utils.DiffFields(*prior, rank)
		slog.With("rankId", rank.ID).With("changes", strings.Join(changes, "; ")).Info("rank updated")
	} else {
		slog.With("rankId", rank.ID).Info("rank updated")
	}
	s.Invalidate()
	return nil
}

func (s *service) DeleteRank(ctx context.Context, token string, rankID string) error {
	if err := s.client.DeleteRank(ctx, token, rankID); err != nil {
		return err
	}
	slog.With("rankId", rankID).Info("rank deleted")
	s.Invalidate()
	return nil
}

func (s *service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.fetchedAt = time.Time{}
}

// cachedRank looks the rank up in the current snapshot only; it never
// issues a request. Used for the update diff log.
func (s *service) cachedRank(rankID string) *backend.Rank {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.snapshot {
		if r.ID == rankID {
			return utils.ToPointer(r)
		}
	}
	return nil
}

func copyRanks(ranks []backend.Rank) []backend.Rank {
	out := make([]backend.Rank, len(ranks))
	copy(out, ranks)
	return out
}
