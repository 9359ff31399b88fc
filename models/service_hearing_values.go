package models

// ServiceHearingValues is the flattened read-only projection of the hearing
// request fields, consumed by external reporting tooling. Field set matches
// the request payload with the hearing/case nesting removed.
type ServiceHearingValues struct {
	HmctsServiceID              string             `json:"hmctsServiceID"`
	HmctsInternalCaseName       string             `json:"hmctsInternalCaseName"`
	PublicCaseName              string             `json:"publicCaseName"`
	CaseAdditionalSecurityFlag  bool               `json:"caseAdditionalSecurityFlag"`
	CaseCategories              []CaseCategory     `json:"caseCategories"`
	CaseDeepLink                string             `json:"caseDeepLink"`
	CaseRestrictedFlag          bool               `json:"caseRestrictedFlag"`
	CaseManagementLocationCode  string             `json:"caseManagementLocationCode"`
	CaseSlaStartDate            string             `json:"caseSLAStartDate"`
	CaseInterpreterRequiredFlag bool               `json:"caseInterpreterRequiredFlag"`
	AutoListFlag                bool               `json:"autoListFlag"`
	HearingType                 string             `json:"hearingType"`
	HearingWindow               *HearingWindow     `json:"hearingWindow,omitempty"`
	Duration                    int                `json:"duration"`
	HearingPriorityType         string             `json:"hearingPriorityType"`
	NumberOfPhysicalAttendees   int                `json:"numberOfPhysicalAttendees"`
	HearingInWelshFlag          bool               `json:"hearingInWelshFlag"`
	HearingLocations            []HearingLocation  `json:"hearingLocations"`
	FacilitiesRequired          []string           `json:"facilitiesRequired"`
	ListingComments             string             `json:"listingComments,omitempty"`
	HearingRequester            string             `json:"hearingRequester,omitempty"`
	PrivateHearingRequiredFlag  bool               `json:"privateHearingRequiredFlag"`
	LeadJudgeContractType       string             `json:"leadJudgeContractType,omitempty"`
	PanelRequirements           *PanelRequirements `json:"panelRequirements"`
	HearingIsLinkedFlag         bool               `json:"hearingIsLinkedFlag"`
	HearingChannels             []string           `json:"hearingChannels"`
	Parties                     []PartyDetails     `json:"parties"`
}
