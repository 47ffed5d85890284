package api

import (
	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
)

// FromBackendRank derives the glow bucket from the rank's color so
// every surface labels colors the same way.
func FromBackendRank(rank backend.Rank) Rank {
	return Rank{
		Id:          rank.ID,
		Name:        rank.Name,
		Color:       rank.Color,
		Tier:        rank.Tier,
		Description: rank.Description,
		IsActive:    rank.IsActive,
		Perks:       rank.Perks,
		Price:       rank.Price,
		Glow:        RankGlow(rank.Color),
	}
}

func FromBackendRanks(ranks []backend.Rank) []Rank {
	result := make([]Rank, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, FromBackendRank(r))
	}
	return result
}

func ToBackendRank(rank RankInput) backend.Rank {
	return backend.Rank{
		ID:          rank.Id,
		Name:        rank.Name,
		Color:       rank.Color,
		Tier:        rank.Tier,
		Description: rank.Description,
		IsActive:    rank.IsActive,
		Perks:       rank.Perks,
		Price:       rank.Price,
	}
}

func FromBackendOrder(order backend.Order) Order {
	return Order{
		Id:                order.ID,
		RankId:            order.RankID,
		RankName:          order.RankName,
		Price:             order.Price,
		Owner:             order.Owner,
		MinecraftUsername: order.MinecraftUsername,
		Status:            order.Status,
		StatusClass:       ClassifyStatus(order.Status),
		Timestamp:         order.Timestamp,
	}
}

func FromBackendOrders(orders []backend.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromBackendOrder(o))
	}
	return result
}

func FromBackendProfile(profile backend.UserProfile) UserProfile {
	return UserProfile{MinecraftUsername: profile.MinecraftUsername}
}

// ToCartView renders the whole cart as one payload: lines in insertion
// order, the recomputed total, and the drawer flag.
func ToCartView(store *cart.Store) CartView {
	items := store.Items()
	lines := make([]CartLine, 0, len(items))
	for _, rank := range items {
		lines = append(lines, CartLine{Rank: FromBackendRank(rank)})
	}
	return CartView{
		Items:  lines,
		Total:  store.Total(),
		IsOpen: store.IsOpen(),
	}
}
