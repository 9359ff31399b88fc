package models

import "time"

// AmendReason codes accepted by the scheduling service on amendment requests
type AmendReason string

const (
	AmendReasonAdminRequest AmendReason = "ADMREQ"
	AmendReasonJudgeRequest AmendReason = "JUDGEREQ"
	AmendReasonPartyRequest AmendReason = "PARTYREQ"
)

// HearingRoute says which scheduling path a case's hearings go through
type HearingRoute string

const (
	HearingRouteListAssist HearingRoute = "listAssist"
	HearingRouteGaps       HearingRoute = "gaps"
)

// JudicialUserBase identifies a panel member in exclusion/reservation lists
type JudicialUserBase struct {
	IdamID       string `json:"idamId,omitempty"`
	PersonalCode string `json:"personalCode,omitempty"`
}

// PanelMemberExclusions holds the case's panel member exclusion and
// reservation lists
type PanelMemberExclusions struct {
	ArePanelMembersExcluded YesNo              `json:"arePanelMembersExcluded,omitempty"`
	ExcludedPanelMembers    []JudicialUserBase `json:"excludedPanelMembers,omitempty"`
	ArePanelMembersReserved YesNo              `json:"arePanelMembersReserved,omitempty"`
	ReservedPanelMembers    []JudicialUserBase `json:"reservedPanelMembers,omitempty"`
}

// HearingInterpreter is the override-level interpreter selection
type HearingInterpreter struct {
	IsInterpreterWanted YesNo        `json:"isInterpreterWanted,omitempty"`
	InterpreterLanguage *DynamicList `json:"interpreterLanguage,omitempty"`
}

// CaseHearingWindow is the case-store side of a hearing window. The payload
// side (HearingWindow) carries formatted dates instead.
type CaseHearingWindow struct {
	FirstDateTimeMustBe *time.Time `json:"firstDateTimeMustBe,omitempty"`
	DateRangeStart      *time.Time `json:"dateRangeStart,omitempty"`
	DateRangeEnd        *time.Time `json:"dateRangeEnd,omitempty"`
}

// IsAllNull reports whether no window field has been set
func (w *CaseHearingWindow) IsAllNull() bool {
	return w == nil || (w.FirstDateTimeMustBe == nil && w.DateRangeStart == nil && w.DateRangeEnd == nil)
}

// OverrideFields is a sparse snapshot of hearing-relevant values. Two
// independent snapshots live on a case: the live override fields, which win
// when present and valid, and the once-computed default listing values.
type OverrideFields struct {
	Duration                *int                `json:"duration,omitempty"`
	AppellantInterpreter    *HearingInterpreter `json:"appellantInterpreter,omitempty"`
	AppellantHearingChannel HearingChannel      `json:"appellantHearingChannel,omitempty"`
	HearingWindow           *CaseHearingWindow  `json:"hearingWindow,omitempty"`
	AutoList                YesNo               `json:"autoList,omitempty"`
	HearingVenueEpimsIDs    []string            `json:"hearingVenueEpimsIds,omitempty"`
}

// IsAllNull reports whether the snapshot carries no values at all
func (o *OverrideFields) IsAllNull() bool {
	if o == nil {
		return true
	}
	return o.Duration == nil &&
		o.AppellantInterpreter == nil &&
		o.AppellantHearingChannel == "" &&
		o.HearingWindow.IsAllNull() &&
		o.AutoList == "" &&
		len(o.HearingVenueEpimsIDs) == 0
}

// SchedulingAndListingFields is the scheduling block on a case
type SchedulingAndListingFields struct {
	DefaultListingValues  *OverrideFields        `json:"defaultListingValues,omitempty"`
	OverrideFields        *OverrideFields        `json:"overrideFields,omitempty"`
	AmendReasons          []AmendReason          `json:"amendReasons,omitempty"`
	HearingRoute          HearingRoute           `json:"hearingRoute,omitempty"`
	PanelMemberExclusions *PanelMemberExclusions `json:"panelMemberExclusions,omitempty"`
}
