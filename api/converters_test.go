package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
)

func TestFromBackendRankDerivesGlow(t *testing.T) {
	rank := FromBackendRank(backend.Rank{
		ID:    "vip",
		Name:  "VIP",
		Color: "#3b82f6",
		Price: 5,
	})
	assert.Equal(t, GlowBlue, rank.Glow)
	assert.Equal(t, "VIP", rank.Name)
}

func TestFromBackendOrderDerivesStatusClass(t *testing.T) {
	order := FromBackendOrder(backend.Order{
		ID:     "o1",
		Status: "delivered",
	})
	assert.Equal(t, StatusClassSuccess, order.StatusClass)
	assert.Equal(t, "delivered", order.Status)
}

func TestToBackendRank(t *testing.T) {
	in := RankInput{
		Id:          "vip",
		Name:        "VIP",
		Color:       "#22c55e",
		Tier:        2,
		Description: "starter rank",
		IsActive:    true,
		Perks:       []string{"kit vip", "colored chat"},
		Price:       4.99,
	}
	assert.Equal(t, backend.Rank{
		ID:          "vip",
		Name:        "VIP",
		Color:       "#22c55e",
		Tier:        2,
		Description: "starter rank",
		IsActive:    true,
		Perks:       []string{"kit vip", "colored chat"},
		Price:       4.99,
	}, ToBackendRank(in))
}

func TestToCartView(t *testing.T) {
	store := cart.NewStore()
	store.AddItem(backend.Rank{ID: "vip", Name: "VIP", Price: 5})
	store.AddItem(backend.Rank{ID: "mvp", Name: "MVP", Price: 3})
	store.Open()

	view := ToCartView(store)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "vip", view.Items[0].Rank.Id)
	assert.Equal(t, "mvp", view.Items[1].Rank.Id)
	assert.Equal(t, 8.0, view.Total)
	assert.True(t, view.IsOpen)
}
