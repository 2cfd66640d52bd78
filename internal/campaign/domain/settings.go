package domain

import (
	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

// ErrInvalidSettings indicates campaign settings violate their own
// consistency rules.
var ErrInvalidSettings = apperrors.New(apperrors.CodeCampaignInvalidSettings, "campaign settings are invalid")

// LevelRange bounds the character levels a campaign accepts.
type LevelRange struct {
	Min int
	Max int
}

// Settings holds per-campaign membership policy.
type Settings struct {
	IsPublic          bool
	AllowJoinRequests bool
	MaxPlayers        int
	LevelRange        LevelRange
}

// NormalizeSettings validates settings consistency: at least one player
// seat and a positive, ordered level range. Character levels themselves
// are external data; only the range's own consistency is enforced here.
func NormalizeSettings(settings Settings) (Settings, error) {
	if settings.MaxPlayers < 1 {
		return Settings{}, ErrInvalidSettings
	}
	if settings.LevelRange.Min < 1 {
		return Settings{}, ErrInvalidSettings
	}
	if settings.LevelRange.Min > settings.LevelRange.Max {
		return Settings{}, ErrInvalidSettings
	}
	return settings, nil
}
