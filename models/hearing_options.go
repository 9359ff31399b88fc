package models

import "time"

// Arrangement codes a party can request on their hearing options. The set is
// closed: anything else is rejected by the adjustments mapper.
const (
	ArrangementSignLanguageInterpreter = "signLanguageInterpreter"
	ArrangementHearingLoop             = "hearingLoop"
	ArrangementDisabledAccess          = "disabledAccess"
)

// ExcludeDate is a date range during which a party is unavailable
type ExcludeDate struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// HearingOptions captures a single party's preferences for the hearing
type HearingOptions struct {
	WantsToAttend       YesNo         `json:"wantsToAttend,omitempty"`
	LanguageInterpreter YesNo         `json:"languageInterpreter,omitempty"`
	Languages           string        `json:"languages,omitempty"`
	SignLanguageType    string        `json:"signLanguageType,omitempty"`
	Arrangements        []string      `json:"arrangements,omitempty"`
	Other               string        `json:"other,omitempty"`
	ExcludeDates        []ExcludeDate `json:"excludeDates,omitempty"`
}

// WantsSignLanguageInterpreter checks whether a sign language interpreter was
// requested via the arrangements list
func (h *HearingOptions) WantsSignLanguageInterpreter() bool {
	if h == nil {
		return false
	}
	for _, a := range h.Arrangements {
		if a == ArrangementSignLanguageInterpreter {
			return true
		}
	}
	return false
}

// HearingSubtype captures the channels a party is willing to use, with the
// contact details needed for each
type HearingSubtype struct {
	WantsHearingTypeTelephone  YesNo  `json:"wantsHearingTypeTelephone,omitempty"`
	HearingTelephoneNumber     string `json:"hearingTelephoneNumber,omitempty"`
	WantsHearingTypeVideo      YesNo  `json:"wantsHearingTypeVideo,omitempty"`
	HearingVideoEmail          string `json:"hearingVideoEmail,omitempty"`
	WantsHearingTypeFaceToFace YesNo  `json:"wantsHearingTypeFaceToFace,omitempty"`
}
