package domain

import "time"

// Role describes a member's role within a campaign.
type Role int

const (
	// RoleUnspecified represents an invalid role value.
	RoleUnspecified Role = iota
	// RoleDM indicates the dungeon master running the campaign.
	RoleDM
	// RolePlayer indicates a regular player seat.
	RolePlayer
)

// String returns the lowercase label for the role.
func (r Role) String() string {
	switch r {
	case RoleDM:
		return "dm"
	case RolePlayer:
		return "player"
	default:
		return "unspecified"
	}
}

// Member represents one seat in a campaign.
type Member struct {
	ID          string
	CharacterID string
	UserID      string
	Role        Role
	JoinedAt    time.Time
}
