package ranks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

type fakeBackend struct {
	backend.Client

	ranks     []backend.Rank
	fetches   int
	updateErr error
	onFetch   func()
}

func (f *fakeBackend) GetActiveRanks(_ context.Context) ([]backend.Rank, error) {
	f.fetches++
	if f.onFetch != nil {
		f.onFetch()
	}
	out := make([]backend.Rank, len(f.ranks))
	copy(out, f.ranks)
	return out, nil
}

func (f *fakeBackend) GetRank(_ context.Context, rankID string) (*backend.Rank, error) {
	for _, r := range f.ranks {
		if r.ID == rankID {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeBackend) CreateRank(_ context.Context, _ string, rank backend.Rank) error {
	f.ranks = append(f.ranks, rank)
	return nil
}

func (f *fakeBackend) UpdateRank(_ context.Context, _ string, rank backend.Rank) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, r := range f.ranks {
		if r.ID == rank.ID {
			f.ranks[i] = rank
		}
	}
	return nil
}

func (f *fakeBackend) DeleteRank(_ context.Context, _ string, rankID string) error {
	for i, r := range f.ranks {
		if r.ID == rankID {
			f.ranks = append(f.ranks[:i], f.ranks[i+1:]...)
			break
		}
	}
	return nil
}

var vip = backend.Rank{ID: "vip", Name: "VIP", Color: "#22c55e", Price: 5, IsActive: true}

func newTestService(fake *fakeBackend) (*service, *time.Time) {
	svc := NewService(fake).(*service)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestGetActiveRanksServesSnapshotInsideWindow(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, now := newTestService(fake)

	first, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	*now = now.Add(freshnessWindow - time.Second)
	_, err = svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.fetches, "read inside the window must reuse the snapshot")
}

func TestGetActiveRanksRefetchesAfterWindow(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, now := newTestService(fake)

	_, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)

	*now = now.Add(freshnessWindow + time.Second)
	_, err = svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fake.fetches)
}

func TestGetActiveRanksFetchesOutsideLock(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, _ := newTestService(fake)

	// A mutation landing while the fetch is in flight takes the same
	// mutex; this would deadlock if the fetch ran under the lock.
	fake.onFetch = func() { svc.Invalidate() }

	result, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestUpdateRankInvalidatesSnapshot(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, _ := newTestService(fake)

	_, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)

	edited := vip
	edited.Price = 7.5
	require.NoError(t, svc.UpdateRank(context.Background(), "token", edited))

	result, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, fake.fetches, "read after a mutation must re-fetch")
	assert.Equal(t, 7.5, result[0].Price)
}

func TestFailedUpdateLeavesSnapshotIntact(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}, updateErr: errors.New("backend unavailable")}
	svc, _ := newTestService(fake)

	_, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)

	edited := vip
	edited.Price = 7.5
	require.Error(t, svc.UpdateRank(context.Background(), "token", edited))

	result, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.fetches, "failed mutation must not invalidate")
	assert.Equal(t, 5.0, result[0].Price)
}

func TestCreateAndDeleteRankInvalidate(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, _ := newTestService(fake)

	_, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)

	mvp := backend.Rank{ID: "mvp", Name: "MVP", Price: 3, IsActive: true}
	require.NoError(t, svc.CreateRank(context.Background(), "token", mvp))

	result, err := svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.NoError(t, svc.DeleteRank(context.Background(), "token", "mvp"))
	result, err = svc.GetActiveRanks(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestGetRankPassThrough(t *testing.T) {
	fake := &fakeBackend{ranks: []backend.Rank{vip}}
	svc, _ := newTestService(fake)

	rank, err := svc.GetRank(context.Background(), "vip")
	require.NoError(t, err)
	require.NotNil(t, rank)
	assert.Equal(t, "VIP", rank.Name)

	missing, err := svc.GetRank(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
