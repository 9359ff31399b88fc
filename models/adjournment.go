package models

import "time"

// AdjournCaseTypeOfHearing is the hearing format recorded on an adjournment,
// for both the adjourned hearing and the next one.
type AdjournCaseTypeOfHearing string

const (
	AdjournHearingPaper      AdjournCaseTypeOfHearing = "paper"
	AdjournHearingVideo      AdjournCaseTypeOfHearing = "video"
	AdjournHearingTelephone  AdjournCaseTypeOfHearing = "telephone"
	AdjournHearingFaceToFace AdjournCaseTypeOfHearing = "faceToFace"
)

// HearingChannel converts the adjournment hearing format to a hearing channel
func (t AdjournCaseTypeOfHearing) HearingChannel() HearingChannel {
	switch t {
	case AdjournHearingPaper:
		return ChannelPaper
	case AdjournHearingVideo:
		return ChannelVideo
	case AdjournHearingTelephone:
		return ChannelTelephone
	case AdjournHearingFaceToFace:
		return ChannelFaceToFace
	}
	return ""
}

// AdjournCaseNextHearingDateType says how the next hearing date is picked
type AdjournCaseNextHearingDateType string

const (
	NextHearingDateFirstAvailable      AdjournCaseNextHearingDateType = "firstAvailableDate"
	NextHearingDateFirstAvailableAfter AdjournCaseNextHearingDateType = "firstAvailableDateAfter"
	NextHearingDateToBeFixed           AdjournCaseNextHearingDateType = "dateToBeFixed"
)

// AdjournCaseDurationType distinguishes standard slots from a manually
// entered duration
type AdjournCaseDurationType string

const (
	DurationTypeStandard    AdjournCaseDurationType = "standardTimeSlot"
	DurationTypeNonStandard AdjournCaseDurationType = "nonStandardTimeSlot"
)

// AdjournCaseDurationUnits is the unit of a non-standard duration
type AdjournCaseDurationUnits string

const (
	DurationUnitsSessions AdjournCaseDurationUnits = "sessions"
	DurationUnitsMinutes  AdjournCaseDurationUnits = "minutes"
)

// Next hearing venue selection on an adjournment
const (
	NextHearingVenueSame          = "sameVenue"
	NextHearingVenueSomewhereElse = "somewhereElse"
)

// PanelMembersExcluded is the tri-state exclusion decision on an adjournment
type PanelMembersExcluded string

const (
	PanelMembersExcludedYes      PanelMembersExcluded = "Yes"
	PanelMembersExcludedNo       PanelMembersExcluded = "No"
	PanelMembersExcludedReserved PanelMembersExcluded = "Reserved"
)

// AdjournCaseTime carries listing-time instructions from the adjourning panel
type AdjournCaseTime struct {
	AdjournCaseNextHearingFirstOnSession []string `json:"adjournCaseNextHearingFirstOnSession,omitempty"`
	AdjournCaseNextHearingSpecificTime   string   `json:"adjournCaseNextHearingSpecificTime,omitempty"`
}

// Adjournment is the live re-listing decision on a case. While the
// in-progress flag is set its values take precedence over overrides and
// defaults for several mapped fields.
type Adjournment struct {
	AdjournmentInProgress                  YesNo                          `json:"adjournmentInProgress,omitempty"`
	TypeOfHearing                          AdjournCaseTypeOfHearing       `json:"typeOfHearing,omitempty"`
	TypeOfNextHearing                      AdjournCaseTypeOfHearing       `json:"typeOfNextHearing,omitempty"`
	NextHearingDateType                    AdjournCaseNextHearingDateType `json:"nextHearingDateType,omitempty"`
	NextHearingFirstAvailableDateAfterDate *time.Time                     `json:"nextHearingFirstAvailableDateAfterDate,omitempty"`
	NextHearingListingDurationType         AdjournCaseDurationType        `json:"nextHearingListingDurationType,omitempty"`
	NextHearingListingDuration             *int                           `json:"nextHearingListingDuration,omitempty"`
	NextHearingListingDurationUnits        AdjournCaseDurationUnits       `json:"nextHearingListingDurationUnits,omitempty"`
	InterpreterRequired                    YesNo                          `json:"interpreterRequired,omitempty"`
	InterpreterLanguage                    *DynamicList                   `json:"interpreterLanguage,omitempty"`
	NextHearingVenue                       string                         `json:"nextHearingVenue,omitempty"`
	NextHearingVenueSelected               *DynamicList                   `json:"nextHearingVenueSelected,omitempty"`
	PanelMembersExcluded                   PanelMembersExcluded           `json:"panelMembersExcluded,omitempty"`
	Time                                   *AdjournCaseTime               `json:"time,omitempty"`
}

// InProgress reports whether an adjournment decision is currently being made
func (a *Adjournment) InProgress() bool {
	return a != nil && a.AdjournmentInProgress.IsYes()
}
