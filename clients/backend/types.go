package backend

import "fmt"

// Rank is a purchasable entitlement tier on the game server.
// IDs are assigned once and never change; uniqueness is enforced
// by the backend.
type Rank struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Tier        int64    `json:"tier"`
	Description string   `json:"description"`
	IsActive    bool     `json:"isActive"`
	Perks       []string `json:"perks"`
	Price       float64  `json:"price"`
}

// Order records one purchase of one rank by one player. RankName and
// Price are snapshots taken at purchase time; editing the rank later
// does not touch them. Status is the only field the backend mutates
// after creation.
type Order struct {
	ID                string  `json:"id"`
	RankID            string  `json:"rankId"`
	RankName          string  `json:"rankName"`
	Price             float64 `json:"price"`
	Owner             string  `json:"owner"`
	MinecraftUsername string  `json:"minecraftUsername"`
	Status            string  `json:"status"`
	// Creation time in nanoseconds.
	Timestamp int64 `json:"timestamp"`
}

type UserProfile struct {
	MinecraftUsername string `json:"minecraftUsername"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Error is the error payload the backend returns on failed calls.
type Error struct {
	ErrorType    string `json:"error"`
	ErrorMessage string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorType, e.ErrorMessage)
}
