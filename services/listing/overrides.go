package listing

import (
	"time"

	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// liveOverrideFields returns the case's live override snapshot, never nil
func liveOverrideFields(c *models.CaseData) *models.OverrideFields {
	if o := c.SchedulingAndListingFields.OverrideFields; o != nil {
		return o
	}
	return &models.OverrideFields{}
}

// defaultListingValues returns the durable baseline snapshot, never nil
func defaultListingValues(c *models.CaseData) *models.OverrideFields {
	if o := c.SchedulingAndListingFields.DefaultListingValues; o != nil {
		return o
	}
	return &models.OverrideFields{}
}

// OverrideFieldValues recomputes the live override snapshot from the current
// case state, running every field through its mapper. Any mapper failure
// aborts with no partial snapshot.
func OverrideFieldValues(c *models.CaseData, ref refdata.Service) (*models.OverrideFields, error) {
	duration, err := Duration(c, ref)
	if err != nil {
		return nil, err
	}

	interpreter, err := appellantInterpreter(c, ref)
	if err != nil {
		return nil, err
	}

	// The snapshot channel is the appellant's own preference, computed without
	// feeding the existing override back in
	channel, err := IndividualPreferredChannel(c.HearingSubtype(), c.HearingOptions(), nil)
	if err != nil {
		return nil, err
	}

	autoList, err := ShouldAutoList(c, ref)
	if err != nil {
		return nil, err
	}

	locations, err := Locations(c, ref)
	if err != nil {
		return nil, err
	}
	epimsIDs := make([]string, 0, len(locations))
	for _, l := range locations {
		epimsIDs = append(epimsIDs, l.LocationID)
	}

	return &models.OverrideFields{
		Duration:                &duration,
		AppellantInterpreter:    interpreter,
		AppellantHearingChannel: channel,
		HearingWindow:           caseWindow(c, ref),
		AutoList:                models.ToYesNo(autoList),
		HearingVenueEpimsIDs:    epimsIDs,
	}, nil
}

// ComputeDefaultListingValues builds the durable baseline snapshot. Infected
// blood compensation cases get no default duration: their lengths are decided
// at listing time.
func ComputeDefaultListingValues(c *models.CaseData, ref refdata.Service) (*models.OverrideFields, error) {
	values, err := OverrideFieldValues(c, ref)
	if err != nil {
		return nil, err
	}
	if c.IsIBC() {
		values.Duration = nil
	}
	return values, nil
}

// WithDefaultListingValues returns a copy of the case with the default
// listing values backfilled. The backfill happens at most once: a case that
// already carries a non-empty snapshot is returned unchanged.
func WithDefaultListingValues(c *models.CaseData, ref refdata.Service) (*models.CaseData, error) {
	if !c.SchedulingAndListingFields.DefaultListingValues.IsAllNull() {
		return c, nil
	}
	values, err := ComputeDefaultListingValues(c, ref)
	if err != nil {
		return nil, err
	}
	updated := *c
	updated.SchedulingAndListingFields.DefaultListingValues = values
	return &updated, nil
}

// AmendReasonCodes returns the case's recorded amendment reasons, defaulting
// to an administrative request when none were captured
func AmendReasonCodes(c *models.CaseData) []models.AmendReason {
	if reasons := c.SchedulingAndListingFields.AmendReasons; len(reasons) > 0 {
		return reasons
	}
	return []models.AmendReason{models.AmendReasonAdminRequest}
}

// appellantInterpreter resolves the appellant's interpreter selection as a
// snapshot field. The language must map; an interpreter with an unknown
// language is never recorded silently.
func appellantInterpreter(c *models.CaseData, ref refdata.Service) (*models.HearingInterpreter, error) {
	if !IsInterpreterRequired(c, ref) {
		return &models.HearingInterpreter{IsInterpreterWanted: models.No}, nil
	}

	reference, err := interpreterLanguage(c, ref, c.HearingOptions(), true)
	if err != nil {
		return nil, err
	}
	interpreter := &models.HearingInterpreter{IsInterpreterWanted: models.Yes}
	if reference != "" {
		interpreter.InterpreterLanguage = models.NewDynamicList(reference, reference)
	}
	return interpreter, nil
}

// caseWindow is the case-store form of the computed hearing window
func caseWindow(c *models.CaseData, ref refdata.Service) *models.CaseHearingWindow {
	start := windowStart(c, ref, time.Now())
	if start == nil {
		return nil
	}
	return &models.CaseHearingWindow{DateRangeStart: start}
}
