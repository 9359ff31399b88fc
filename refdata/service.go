package refdata

import "tribunal_hearings_go/models"

// Service is the read-only reference data gateway the mapping engine
// consumes. Lookups return nil (or an empty result) when nothing matches;
// deciding whether a miss is fatal is the caller's job.
type Service interface {
	// Venues
	VenueByID(id string) *VenueDetails
	ActiveVenuesByEpimsID(rpcEpimsID string) []VenueDetails
	EpimsIDForVenueName(name string) string
	EpimsIDForVenueID(id string) string
	MultiLocationGroups() map[string][]string

	// Regional processing centers
	RPCByPostcode(postcode string, isIBC bool) *models.RegionalProcessingCenter

	// Languages
	SignLanguage(code string) *Language
	VerbalLanguage(code string) *Language

	// Benefit/issue classification
	HearingDuration(benefitCode, issueCode string) *HearingDuration
	SessionCategory(benefitCode, issueCode string, secondDoctor, fqpmRequired bool) *SessionCategoryMap
	IsBenefitIssueValid(benefitCode, issueCode string) bool
	DefaultPanelRoles(benefitCode, issueCode string) []PanelMemberType

	// Service metadata and feature flags
	ServiceCode() string
	ExUIBaseURL() string
	AdjournmentFlagEnabled() bool
}
