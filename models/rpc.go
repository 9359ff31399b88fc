package models

// RegionalProcessingCenter is the administrative region a case is handled by,
// resolved from the appellant's postcode. Its hearing route decides whether
// hearings can be listed through the external scheduling service.
type RegionalProcessingCenter struct {
	Name         string       `json:"name,omitempty"`
	Postcode     string       `json:"postcode,omitempty"`
	EpimsID      string       `json:"epimsId,omitempty"`
	HearingRoute HearingRoute `json:"hearingRoute,omitempty"`
}

// CaseManagementLocation is the court location a case is managed from
type CaseManagementLocation struct {
	BaseLocation string `json:"baseLocation,omitempty"`
	Region       string `json:"region,omitempty"`
}

// CaseLink references a related case
type CaseLink struct {
	CaseReference string `json:"caseReference,omitempty"`
}
