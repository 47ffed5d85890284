package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

type fakeBackend struct {
	backend.Client

	profile *backend.UserProfile
	fetches int
	saves   []backend.UserProfile
}

func (f *fakeBackend) GetCallerUserProfile(_ context.Context, _ string) (*backend.UserProfile, error) {
	f.fetches++
	return f.profile, nil
}

func (f *fakeBackend) SaveCallerUserProfile(_ context.Context, _ string, profile backend.UserProfile) error {
	f.saves = append(f.saves, profile)
	f.profile = &profile
	return nil
}

func TestCallerProfileCachedPerPrincipal(t *testing.T) {
	fake := &fakeBackend{profile: &backend.UserProfile{MinecraftUsername: "Steve"}}
	svc := NewService(fake)

	p, err := svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.fetches)
}

func TestSaveInvalidatesCallerProfile(t *testing.T) {
	fake := &fakeBackend{profile: &backend.UserProfile{MinecraftUsername: "Steve"}}
	svc := NewService(fake)

	_, err := svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)

	err = svc.SaveCallerProfile(context.Background(), "token", "principal-1", backend.UserProfile{MinecraftUsername: "Alex"})
	require.NoError(t, err)
	require.Equal(t, []backend.UserProfile{{MinecraftUsername: "Alex"}}, fake.saves)

	p, err := svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Alex", p.MinecraftUsername)
	assert.Equal(t, 2, fake.fetches, "save must invalidate the cached profile")
}

func TestMissingProfileNotCached(t *testing.T) {
	fake := &fakeBackend{profile: nil}
	svc := NewService(fake)

	p, err := svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = svc.GetCallerProfile(context.Background(), "token", "principal-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.fetches, "absence must not be cached")
}

func TestUnknownPrincipalSkipsCache(t *testing.T) {
	fake := &fakeBackend{profile: &backend.UserProfile{MinecraftUsername: "Steve"}}
	svc := NewService(fake)

	_, err := svc.GetCallerProfile(context.Background(), "token", "")
	require.NoError(t, err)
	_, err = svc.GetCallerProfile(context.Background(), "token", "")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.fetches)
}
