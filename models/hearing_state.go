package models

// HearingState is the lifecycle action requested for a case's hearing
type HearingState string

const (
	HearingStateCreate        HearingState = "createHearing"
	HearingStateAdjournCreate HearingState = "adjournCreateHearing"
	HearingStateUpdate        HearingState = "updateHearing"
	HearingStateCancel        HearingState = "cancelHearing"
)

// IsValidHearingState checks if the state is one this service handles
func IsValidHearingState(state HearingState) bool {
	switch state {
	case HearingStateCreate, HearingStateAdjournCreate, HearingStateUpdate, HearingStateCancel:
		return true
	}
	return false
}

// HearingRequest is an inbound instruction to act on a case's hearing
type HearingRequest struct {
	CaseID             string             `json:"ccdCaseId"`
	HearingState       HearingState       `json:"hearingState"`
	HearingRoute       HearingRoute       `json:"hearingRoute,omitempty"`
	CancellationReason CancellationReason `json:"cancellationReason,omitempty"`
}
