package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// Duration limits, in minutes. A duration below the minimum is treated as
// absent and resolution falls through to the next source.
const (
	MinHearingDuration      = 30
	DurationSessionMinutes  = 165
	DefaultHearingDuration  = 60
	DurationInterpreterPad  = 30
)

// Duration resolves the listing duration in minutes. An in-progress
// adjournment wins; after that the live override, the default listing values,
// the benefit/issue reference data and finally the default constant.
// Interpreter padding applies on the override and default-value paths only;
// the reference data carries its own interpreter column.
func Duration(c *models.CaseData, ref refdata.Service) (int, error) {
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() {
		return adjournmentDuration(c, ref)
	}

	if d := paddedSnapshotDuration(c, liveOverrideFields(c)); d != nil {
		return *d, nil
	}
	if d := paddedSnapshotDuration(c, defaultListingValues(c)); d != nil {
		return *d, nil
	}
	if d := referenceDuration(c, ref); d != nil {
		return *d, nil
	}
	return DefaultHearingDuration, nil
}

// paddedSnapshotDuration reads a snapshot's duration, applying interpreter
// padding when the appellant attends with an interpreter. Values below the
// minimum are treated as absent.
func paddedSnapshotDuration(c *models.CaseData, snapshot *models.OverrideFields) *int {
	if snapshot == nil || snapshot.Duration == nil || *snapshot.Duration < MinHearingDuration {
		return nil
	}
	d := *snapshot.Duration
	if appellantAttendsWithInterpreter(c) {
		d += DurationInterpreterPad
	}
	return &d
}

func appellantAttendsWithInterpreter(c *models.CaseData) bool {
	options := c.HearingOptions()
	if options == nil || options.WantsToAttend.IsNoOrNull() {
		return false
	}
	return options.LanguageInterpreter.IsYes() || options.WantsSignLanguageInterpreter()
}

// referenceDuration picks the configured duration for the case's benefit and
// issue codes: the paper column for paper cases, the interpreter column when
// an interpreter is required, else face to face
func referenceDuration(c *models.CaseData, ref refdata.Service) *int {
	entry := ref.HearingDuration(c.BenefitCode, c.IssueCode)
	if entry == nil {
		return nil
	}
	ch, err := ResolvedChannel(c, ref)
	if err != nil {
		return nil
	}
	if ch == models.ChannelPaper {
		return entry.DurationPaper
	}
	if IsInterpreterRequired(c, ref) {
		return entry.DurationInterpreter
	}
	return entry.DurationFaceToFace
}

// adjournmentDuration resolves the next hearing's duration from the
// adjourning panel's decision
func adjournmentDuration(c *models.CaseData, ref refdata.Service) (int, error) {
	adj := &c.Adjournment

	if adj.NextHearingListingDurationType == models.DurationTypeNonStandard && adj.NextHearingListingDuration != nil {
		switch adj.NextHearingListingDurationUnits {
		case models.DurationUnitsSessions:
			if *adj.NextHearingListingDuration >= 1 {
				return *adj.NextHearingListingDuration * DurationSessionMinutes, nil
			}
		case models.DurationUnitsMinutes:
			if *adj.NextHearingListingDuration >= MinHearingDuration {
				return *adj.NextHearingListingDuration, nil
			}
			return DefaultHearingDuration, nil
		}
	}

	// Standard slot: when the hearing format is unchanged the previously
	// resolved duration still applies; a format change forces a fresh
	// reference data lookup.
	if adj.TypeOfNextHearing == adj.TypeOfHearing {
		if d := paddedSnapshotDuration(c, liveOverrideFields(c)); d != nil {
			return *d, nil
		}
		if d := paddedSnapshotDuration(c, defaultListingValues(c)); d != nil {
			return *d, nil
		}
	}

	if d := adjournmentReferenceDuration(c, ref); d != nil {
		return *d, nil
	}
	return 0, NewListingError("no listing duration could be resolved for the adjourned hearing on case %s", c.CaseID)
}

func adjournmentReferenceDuration(c *models.CaseData, ref refdata.Service) *int {
	entry := ref.HearingDuration(c.BenefitCode, c.IssueCode)
	if entry == nil {
		return nil
	}
	if c.Adjournment.TypeOfNextHearing == models.AdjournHearingPaper {
		return entry.DurationPaper
	}
	if c.Adjournment.InterpreterRequired.IsYes() {
		return entry.DurationInterpreter
	}
	return entry.DurationFaceToFace
}
