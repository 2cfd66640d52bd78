// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Content-integrity errors. These are fatal at catalogue build time:
	// a catalogue containing any of them must not be published.
	CodeContentDuplicateID         Code = "CONTENT_DUPLICATE_ID"
	CodeContentInvalidStat         Code = "CONTENT_INVALID_STAT"
	CodeContentUnknownPrerequisite Code = "CONTENT_UNKNOWN_PREREQUISITE"
	CodeContentCyclicPrerequisite  Code = "CONTENT_CYCLIC_PREREQUISITE"

	// Campaign errors
	CodeCampaignInvalidSettings     Code = "CAMPAIGN_INVALID_SETTINGS"
	CodeCampaignNameEmpty           Code = "CAMPAIGN_NAME_EMPTY"
	CodeCampaignFull                Code = "CAMPAIGN_FULL"
	CodeCampaignJoinDisabled        Code = "CAMPAIGN_JOIN_REQUESTS_DISABLED"
	CodeCampaignDuplicateMember     Code = "CAMPAIGN_DUPLICATE_MEMBER"
	CodeCampaignMemberNotFound      Code = "CAMPAIGN_MEMBER_NOT_FOUND"
	CodeCampaignCannotRemoveDM      Code = "CAMPAIGN_CANNOT_REMOVE_DM"
	CodeCampaignArchived            Code = "CAMPAIGN_ARCHIVED"
	CodeCampaignEmptyDungeonMaster  Code = "CAMPAIGN_EMPTY_DUNGEON_MASTER"
	CodeCampaignEmptyUserID         Code = "CAMPAIGN_EMPTY_USER_ID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
