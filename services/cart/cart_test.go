package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
)

var (
	vipRank = backend.Rank{ID: "vip", Name: "VIP", Price: 5, IsActive: true}
	mvpRank = backend.Rank{ID: "mvp", Name: "MVP", Price: 3, IsActive: true}
)

func TestAddItemIsIdempotent(t *testing.T) {
	s := NewStore()
	s.AddItem(vipRank)
	s.AddItem(vipRank)

	require.Equal(t, 1, s.Size())
	assert.True(t, s.IsInCart("vip"))
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	s.AddItem(vipRank)
	s.AddItem(mvpRank)
	s.AddItem(vipRank) // duplicate, must not reorder

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "vip", items[0].ID)
	assert.Equal(t, "mvp", items[1].ID)
}

func TestTotal(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0.0, s.Total())

	s.AddItem(vipRank)
	s.AddItem(mvpRank)
	assert.Equal(t, 8.0, s.Total())

	s.RemoveItem("vip")
	assert.Equal(t, 3.0, s.Total())

	s.Clear()
	assert.Equal(t, 0.0, s.Total())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.AddItem(vipRank)
	s.RemoveItem("nonexistent")

	require.Equal(t, 1, s.Size())
	assert.True(t, s.IsInCart("vip"))
}

func TestMembershipTracksMutations(t *testing.T) {
	s := NewStore()
	s.AddItem(vipRank)
	assert.True(t, s.IsInCart("vip"))

	s.RemoveItem("vip")
	assert.False(t, s.IsInCart("vip"))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddItem(vipRank)

	items := s.Items()
	items[0].ID = "mutated"

	assert.Equal(t, "vip", s.Items()[0].ID)
}

func TestDrawerFlag(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsOpen())

	s.Open()
	assert.True(t, s.IsOpen())

	s.Close()
	assert.False(t, s.IsOpen())

	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())
}

func TestSessionsGetDistinctStores(t *testing.T) {
	svc := NewService()
	a := svc.Get("session-a")
	b := svc.Get("session-b")
	require.NotSame(t, a, b)

	a.AddItem(vipRank)
	assert.True(t, a.IsInCart("vip"))
	assert.False(t, b.IsInCart("vip"))

	// Same session keeps the same store.
	assert.Same(t, a, svc.Get("session-a"))
}

func TestEmptySessionIDGetsDetachedStore(t *testing.T) {
	svc := NewService()
	a := svc.Get("")
	b := svc.Get("")
	assert.NotSame(t, a, b)
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	svc := NewService()
	assert.NotEqual(t, svc.NewSessionID(), svc.NewSessionID())
}
