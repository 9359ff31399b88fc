package models

// Wire shapes for the external scheduling service. Field names and nesting
// are the protocol contract: do not rename without a corresponding change on
// the scheduling side.

// RequestDetails is the request metadata block
type RequestDetails struct {
	VersionNumber int `json:"versionNumber"`
}

// HearingWindow is the payload-side window, dates formatted as YYYY-MM-DD
// (firstDateTimeMustBe as full RFC 3339 timestamp)
type HearingWindow struct {
	FirstDateTimeMustBe *string `json:"firstDateTimeMustBe,omitempty"`
	DateRangeStart      *string `json:"dateRangeStart,omitempty"`
	DateRangeEnd        *string `json:"dateRangeEnd,omitempty"`
}

// HearingLocation is one venue reference in the location list
type HearingLocation struct {
	LocationID   string `json:"locationId"`
	LocationType string `json:"locationType"`
}

// LocationTypeCourt is the only location type this service emits
const LocationTypeCourt = "court"

// Panel preference requirement types
const (
	RequirementExclude     = "EXCLUDE"
	RequirementMustInclude = "MUSTINC"
)

// PanelMemberTypeJOH is the member type for judicial office holders
const PanelMemberTypeJOH = "JOH"

// PanelPreference asks for a specific member to be excluded or included
type PanelPreference struct {
	MemberID        string `json:"memberID"`
	MemberType      string `json:"memberType"`
	RequirementType string `json:"requirementType"`
}

// PanelRequirements describes the panel the hearing needs
type PanelRequirements struct {
	RoleTypes             []string          `json:"roleType"`
	AuthorisationTypes    []string          `json:"authorisationTypes"`
	AuthorisationSubTypes []string          `json:"authorisationSubType"`
	PanelPreferences      []PanelPreference `json:"panelPreferences"`
	PanelSpecialisms      []string          `json:"panelSpecialisms"`
}

// HearingDetails is the hearing block of the request payload
type HearingDetails struct {
	AutolistFlag                      bool              `json:"autolistFlag"`
	HearingType                       string            `json:"hearingType"`
	HearingWindow                     *HearingWindow    `json:"hearingWindow,omitempty"`
	Duration                          int               `json:"duration"`
	NonStandardHearingDurationReasons []string          `json:"nonStandardHearingDurationReasons"`
	HearingPriorityType               string            `json:"hearingPriorityType"`
	NumberOfPhysicalAttendees         int               `json:"numberOfPhysicalAttendees"`
	HearingInWelshFlag                bool              `json:"hearingInWelshFlag"`
	HearingLocations                  []HearingLocation `json:"hearingLocations"`
	FacilitiesRequired                []string          `json:"facilitiesRequired"`
	ListingComments                   string            `json:"listingComments,omitempty"`
	HearingRequester                  string            `json:"hearingRequester,omitempty"`
	PrivateHearingRequiredFlag        bool              `json:"privateHearingRequiredFlag"`
	LeadJudgeContractType             string            `json:"leadJudgeContractType,omitempty"`
	PanelRequirements                 *PanelRequirements `json:"panelRequirements"`
	HearingIsLinkedFlag               bool              `json:"hearingIsLinkedFlag"`
	AmendReasonCodes                  []AmendReason     `json:"amendReasonCodes,omitempty"`
	HearingChannels                   []string          `json:"hearingChannels"`
}

// Case category types
const (
	CategoryCaseType    = "caseType"
	CategoryCaseSubType = "caseSubType"
)

// CaseCategory classifies a case for the scheduling service
type CaseCategory struct {
	CategoryType   string `json:"categoryType"`
	CategoryValue  string `json:"categoryValue"`
	CategoryParent string `json:"categoryParent,omitempty"`
}

// CaseDetails is the case block of the request payload
type CaseDetails struct {
	HmctsServiceCode            string         `json:"hmctsServiceCode"`
	CaseRef                     string         `json:"caseRef"`
	CaseDeepLink                string         `json:"caseDeepLink"`
	HmctsInternalCaseName       string         `json:"hmctsInternalCaseName"`
	PublicCaseName              string         `json:"publicCaseName"`
	CaseAdditionalSecurityFlag  bool           `json:"caseAdditionalSecurityFlag"`
	CaseInterpreterRequiredFlag bool           `json:"caseInterpreterRequiredFlag"`
	CaseCategories              []CaseCategory `json:"caseCategories"`
	CaseManagementLocationCode  string         `json:"caseManagementLocationCode"`
	CaseRestrictedFlag          bool           `json:"caseRestrictedFlag"`
	CaseSlaStartDate            string         `json:"caseSLAStartDate"`
}

// Party types on the wire
const (
	PartyTypeIndividual   = "IND"
	PartyTypeOrganisation = "ORG"
)

// RelatedParty links an entity back to the party it acts for
type RelatedParty struct {
	RelatedPartyID   string `json:"relatedPartyId"`
	RelationshipType string `json:"relationshipType"`
}

// UnavailabilityType for full-day unavailability
const UnavailabilityAllDay = "All Day"

// UnavailabilityRange is one period a party cannot attend
type UnavailabilityRange struct {
	UnavailableFromDate string `json:"unavailableFromDate,omitempty"`
	UnavailableToDate   string `json:"unavailableToDate,omitempty"`
	UnavailabilityType  string `json:"unavailabilityType"`
}

// UnavailabilityDayOfWeek is a recurring weekly unavailability. Not populated
// yet; the scheduling contract still requires the (empty) list.
type UnavailabilityDayOfWeek struct {
	DayOfWeek                  string `json:"DOW"`
	DayOfWeekUnavailabilityType string `json:"DOWUnavailabilityType"`
}

// IndividualDetails describes one attending person
type IndividualDetails struct {
	FirstName                        string         `json:"firstName"`
	LastName                         string         `json:"lastName"`
	PreferredHearingChannel          string         `json:"preferredHearingChannel,omitempty"`
	InterpreterLanguage              string         `json:"interpreterLanguage,omitempty"`
	ReasonableAdjustments            []string       `json:"reasonableAdjustments"`
	VulnerableFlag                   bool           `json:"vulnerableFlag"`
	VulnerabilityDetails             string         `json:"vulnerabilityDetails,omitempty"`
	HearingChannelEmail              []string       `json:"hearingChannelEmail"`
	HearingChannelPhone              []string       `json:"hearingChannelPhone"`
	RelatedParties                   []RelatedParty `json:"relatedParties"`
	CustodyStatus                    string         `json:"custodyStatus,omitempty"`
	OtherReasonableAdjustmentDetails string         `json:"otherReasonableAdjustmentDetails,omitempty"`
}

// OrganisationDetails describes an organisation party
type OrganisationDetails struct {
	Name              string `json:"name"`
	OrganisationType  string `json:"organisationType"`
	CftOrganisationID string `json:"cftOrganisationID,omitempty"`
}

// PartyDetails is one entry in the payload's party list
type PartyDetails struct {
	PartyID                 string                    `json:"partyID"`
	PartyType               string                    `json:"partyType"`
	PartyRole               string                    `json:"partyRole"`
	IndividualDetails       *IndividualDetails        `json:"individualDetails,omitempty"`
	OrganisationDetails     *OrganisationDetails      `json:"organisationDetails,omitempty"`
	PartyChannelSubType     string                    `json:"partyChannelSubType,omitempty"`
	UnavailabilityDayOfWeek []UnavailabilityDayOfWeek `json:"unavailabilityDOW"`
	UnavailabilityRanges    []UnavailabilityRange     `json:"unavailabilityRanges"`
}

// HearingRequestPayload is the complete create/amend request
type HearingRequestPayload struct {
	RequestDetails RequestDetails `json:"requestDetails"`
	HearingDetails HearingDetails `json:"hearingDetails"`
	CaseDetails    CaseDetails    `json:"caseDetails"`
	PartiesDetails []PartyDetails `json:"partyDetails"`
}

// CancellationReason codes accepted on cancellation requests
type CancellationReason string

const (
	CancellationWithdrawn  CancellationReason = "withdraw"
	CancellationStruckOut  CancellationReason = "struck"
	CancellationLapsed     CancellationReason = "lapsed"
	CancellationPartyUnable CancellationReason = "partyuna"
	CancellationOther      CancellationReason = "other"
)

// HearingCancelRequestPayload carries only the cancellation reasons
type HearingCancelRequestPayload struct {
	CancellationReasonCodes []CancellationReason `json:"cancellationReasonCodes"`
}
