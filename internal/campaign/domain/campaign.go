package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/id"
)

var (
	// ErrEmptyName indicates a missing campaign name.
	ErrEmptyName = apperrors.New(apperrors.CodeCampaignNameEmpty, "campaign name is required")
	// ErrEmptyDungeonMasterID indicates a missing dungeon master user id.
	ErrEmptyDungeonMasterID = apperrors.New(apperrors.CodeCampaignEmptyDungeonMaster, "dungeon master user id is required")
	// ErrEmptyUserID indicates a missing user id on a membership operation.
	ErrEmptyUserID = apperrors.New(apperrors.CodeCampaignEmptyUserID, "user id is required")
	// ErrCampaignFull indicates every player seat is taken.
	ErrCampaignFull = apperrors.New(apperrors.CodeCampaignFull, "campaign is full")
	// ErrJoinRequestsDisabled indicates the campaign does not accept join requests.
	ErrJoinRequestsDisabled = apperrors.New(apperrors.CodeCampaignJoinDisabled, "campaign does not accept join requests")
	// ErrDuplicateMember indicates the user already holds a seat in the campaign.
	ErrDuplicateMember = apperrors.New(apperrors.CodeCampaignDuplicateMember, "user already belongs to campaign")
	// ErrMemberNotFound indicates no member with the given user id exists.
	ErrMemberNotFound = apperrors.New(apperrors.CodeCampaignMemberNotFound, "campaign member not found")
	// ErrCannotRemoveDM indicates an attempt to remove the dungeon master.
	ErrCannotRemoveDM = apperrors.New(apperrors.CodeCampaignCannotRemoveDM, "dungeon master cannot be removed")
	// ErrCampaignArchived indicates the campaign no longer accepts membership changes.
	ErrCampaignArchived = apperrors.New(apperrors.CodeCampaignArchived, "campaign is archived")
)

// State describes the derived lifecycle state of a campaign.
type State int

const (
	// StateForming indicates open player seats remain.
	StateForming State = iota + 1
	// StateFull indicates every player seat is taken.
	StateFull
	// StateArchived is terminal; no membership changes are accepted.
	StateArchived
)

// String returns the lowercase label for the state.
func (s State) String() string {
	switch s {
	case StateForming:
		return "forming"
	case StateFull:
		return "full"
	case StateArchived:
		return "archived"
	default:
		return "unspecified"
	}
}

// Campaign represents a tabletop campaign and its membership.
type Campaign struct {
	ID              string
	Name            string
	Description     string
	DungeonMasterID string
	ShareCode       string
	Members         []Member
	Settings        Settings
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ArchivedAt      *time.Time
}

// PlayerCount returns how many members hold the player role. The dungeon
// master's seat never counts against Settings.MaxPlayers.
func (c Campaign) PlayerCount() int {
	count := 0
	for _, member := range c.Members {
		if member.Role == RolePlayer {
			count++
		}
	}
	return count
}

// State derives the campaign lifecycle state from its membership.
func (c Campaign) State() State {
	if c.ArchivedAt != nil {
		return StateArchived
	}
	if c.PlayerCount() >= c.Settings.MaxPlayers {
		return StateFull
	}
	return StateForming
}

// member returns the member holding the given user id.
func (c Campaign) member(userID string) (Member, bool) {
	for _, member := range c.Members {
		if member.UserID == userID {
			return member, true
		}
	}
	return Member{}, false
}

// CreateCampaignInput describes the metadata needed to create a campaign.
type CreateCampaignInput struct {
	Name                     string
	Description              string
	DungeonMasterUserID      string
	DungeonMasterCharacterID string
	Settings                 Settings
}

// NormalizeCreateCampaignInput trims and validates campaign input metadata.
func NormalizeCreateCampaignInput(input CreateCampaignInput) (CreateCampaignInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateCampaignInput{}, ErrEmptyName
	}
	input.Description = strings.TrimSpace(input.Description)
	input.DungeonMasterUserID = strings.TrimSpace(input.DungeonMasterUserID)
	if input.DungeonMasterUserID == "" {
		return CreateCampaignInput{}, ErrEmptyDungeonMasterID
	}

	settings, err := NormalizeSettings(input.Settings)
	if err != nil {
		return CreateCampaignInput{}, err
	}
	input.Settings = settings
	return input, nil
}

// CreateCampaign creates a new campaign with a generated ID, a share
// code, and exactly one member: the dungeon master.
func CreateCampaign(input CreateCampaignInput, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateCampaignInput(input)
	if err != nil {
		return Campaign{}, err
	}

	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}
	memberID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate member id: %w", err)
	}
	shareCode, err := NewShareCode()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate share code: %w", err)
	}

	createdAt := now().UTC()
	return Campaign{
		ID:              campaignID,
		Name:            normalized.Name,
		Description:     normalized.Description,
		DungeonMasterID: normalized.DungeonMasterUserID,
		ShareCode:       shareCode,
		Members: []Member{{
			ID:          memberID,
			CharacterID: normalized.DungeonMasterCharacterID,
			UserID:      normalized.DungeonMasterUserID,
			Role:        RoleDM,
			JoinedAt:    createdAt,
		}},
		Settings:  normalized.Settings,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// RequestJoin appends a new player member and returns the next campaign
// value. The input campaign is never mutated.
func RequestJoin(campaign Campaign, userID, characterID string, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Campaign{}, ErrEmptyUserID
	}

	if campaign.State() == StateArchived {
		return Campaign{}, ErrCampaignArchived
	}
	if campaign.PlayerCount() >= campaign.Settings.MaxPlayers {
		return Campaign{}, ErrCampaignFull
	}
	if !campaign.Settings.IsPublic && !campaign.Settings.AllowJoinRequests {
		return Campaign{}, ErrJoinRequestsDisabled
	}
	if _, ok := campaign.member(userID); ok {
		return Campaign{}, ErrDuplicateMember
	}

	memberID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate member id: %w", err)
	}

	joinedAt := now().UTC()
	next := campaign
	next.Members = append(slices.Clone(campaign.Members), Member{
		ID:          memberID,
		CharacterID: characterID,
		UserID:      userID,
		Role:        RolePlayer,
		JoinedAt:    joinedAt,
	})
	next.UpdatedAt = joinedAt
	return next, nil
}

// RemoveMember removes the player seat held by userID and returns the
// next campaign value. The dungeon master can never be removed.
func RemoveMember(campaign Campaign, userID string, now func() time.Time) (Campaign, error) {
	if now == nil {
		now = time.Now
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Campaign{}, ErrEmptyUserID
	}
	if userID == campaign.DungeonMasterID {
		return Campaign{}, ErrCannotRemoveDM
	}
	if campaign.State() == StateArchived {
		return Campaign{}, ErrCampaignArchived
	}
	if _, ok := campaign.member(userID); !ok {
		return Campaign{}, ErrMemberNotFound
	}

	next := campaign
	next.Members = make([]Member, 0, len(campaign.Members)-1)
	for _, member := range campaign.Members {
		if member.UserID != userID {
			next.Members = append(next.Members, member)
		}
	}
	next.UpdatedAt = now().UTC()
	return next, nil
}

// Archive marks the campaign as terminal. Archiving an already archived
// campaign is a no-op returning the same value.
func Archive(campaign Campaign, now func() time.Time) Campaign {
	if campaign.ArchivedAt != nil {
		return campaign
	}
	if now == nil {
		now = time.Now
	}

	archivedAt := now().UTC()
	next := campaign
	next.ArchivedAt = &archivedAt
	next.UpdatedAt = archivedAt
	return next
}
