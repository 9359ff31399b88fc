package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// BuildHearingDetails composes the hearing block from the field mappers. Any
// mapper failure aborts with no partial result.
func BuildHearingDetails(c *models.CaseData, ref refdata.Service) (*models.HearingDetails, error) {
	return buildHearingDetails(c, ref, false)
}

func buildHearingDetails(c *models.CaseData, ref refdata.Service, lenientPanel bool) (*models.HearingDetails, error) {
	autoList, err := ShouldAutoList(c, ref)
	if err != nil {
		return nil, err
	}
	duration, err := Duration(c, ref)
	if err != nil {
		return nil, err
	}
	locations, err := Locations(c, ref)
	if err != nil {
		return nil, err
	}
	channels, err := Channels(c, ref)
	if err != nil {
		return nil, err
	}
	panel, err := Panel(c, ref)
	if err != nil {
		if !lenientPanel {
			return nil, err
		}
		panel = &models.PanelRequirements{
			RoleTypes:             []string{},
			AuthorisationTypes:    []string{},
			AuthorisationSubTypes: []string{},
			PanelPreferences:      []models.PanelPreference{},
			PanelSpecialisms:      []string{},
		}
	}
	attendees, err := numberOfPhysicalAttendees(c)
	if err != nil {
		return nil, err
	}

	return &models.HearingDetails{
		AutolistFlag:  autoList,
		HearingType:   models.HearingTypeSubstantive,
		HearingWindow: Window(c, ref),
		Duration:      duration,
		NonStandardHearingDurationReasons: []string{},
		HearingPriorityType:               hearingPriority(c, ref),
		NumberOfPhysicalAttendees:         attendees,
		HearingLocations:                  locations,
		// Facility needs travel per party as reasonable adjustments
		FacilitiesRequired:  []string{},
		ListingComments:     ListingComments(c, ref),
		PanelRequirements:   panel,
		HearingIsLinkedFlag: len(c.LinkedCases) > 0,
		HearingChannels:     channels,
	}, nil
}

// BuildHearingRequestPayload assembles the complete create/amend request
func BuildHearingRequestPayload(c *models.CaseData, ref refdata.Service, versionNumber int) (*models.HearingRequestPayload, error) {
	hearingDetails, err := BuildHearingDetails(c, ref)
	if err != nil {
		return nil, err
	}
	caseDetails, err := CaseDetails(c, ref)
	if err != nil {
		return nil, err
	}
	parties, err := Parties(c, ref)
	if err != nil {
		return nil, err
	}

	return &models.HearingRequestPayload{
		RequestDetails: models.RequestDetails{VersionNumber: versionNumber},
		HearingDetails: *hearingDetails,
		CaseDetails:    *caseDetails,
		PartiesDetails: parties,
	}, nil
}

// BuildAmendPayload is a create payload plus the recorded amendment reasons
func BuildAmendPayload(c *models.CaseData, ref refdata.Service, versionNumber int) (*models.HearingRequestPayload, error) {
	payload, err := BuildHearingRequestPayload(c, ref, versionNumber)
	if err != nil {
		return nil, err
	}
	payload.HearingDetails.AmendReasonCodes = AmendReasonCodes(c)
	return payload, nil
}

// BuildCancelPayload carries only the cancellation reason
func BuildCancelPayload(reason models.CancellationReason) *models.HearingCancelRequestPayload {
	if reason == "" {
		reason = models.CancellationOther
	}
	return &models.HearingCancelRequestPayload{
		CancellationReasonCodes: []models.CancellationReason{reason},
	}
}

// BuildServiceHearingValues is the read-only projection of the same fields.
// Panel requirement failures are tolerated here: the projection is used by
// reporting tooling that can live without them, unlike the mandatory case and
// party fields.
func BuildServiceHearingValues(c *models.CaseData, ref refdata.Service) (*models.ServiceHearingValues, error) {
	hearingDetails, err := buildHearingDetails(c, ref, true)
	if err != nil {
		return nil, err
	}
	caseDetails, err := CaseDetails(c, ref)
	if err != nil {
		return nil, err
	}
	parties, err := Parties(c, ref)
	if err != nil {
		return nil, err
	}

	return &models.ServiceHearingValues{
		HmctsServiceID:              caseDetails.HmctsServiceCode,
		HmctsInternalCaseName:       caseDetails.HmctsInternalCaseName,
		PublicCaseName:              caseDetails.PublicCaseName,
		CaseAdditionalSecurityFlag:  caseDetails.CaseAdditionalSecurityFlag,
		CaseCategories:              caseDetails.CaseCategories,
		CaseDeepLink:                caseDetails.CaseDeepLink,
		CaseRestrictedFlag:          caseDetails.CaseRestrictedFlag,
		CaseManagementLocationCode:  caseDetails.CaseManagementLocationCode,
		CaseSlaStartDate:            caseDetails.CaseSlaStartDate,
		CaseInterpreterRequiredFlag: caseDetails.CaseInterpreterRequiredFlag,
		AutoListFlag:                hearingDetails.AutolistFlag,
		HearingType:                 hearingDetails.HearingType,
		HearingWindow:               hearingDetails.HearingWindow,
		Duration:                    hearingDetails.Duration,
		HearingPriorityType:         hearingDetails.HearingPriorityType,
		NumberOfPhysicalAttendees:   hearingDetails.NumberOfPhysicalAttendees,
		HearingInWelshFlag:          hearingDetails.HearingInWelshFlag,
		HearingLocations:            hearingDetails.HearingLocations,
		FacilitiesRequired:          hearingDetails.FacilitiesRequired,
		ListingComments:             hearingDetails.ListingComments,
		HearingRequester:            hearingDetails.HearingRequester,
		PrivateHearingRequiredFlag:  hearingDetails.PrivateHearingRequiredFlag,
		LeadJudgeContractType:       hearingDetails.LeadJudgeContractType,
		PanelRequirements:           hearingDetails.PanelRequirements,
		HearingIsLinkedFlag:         hearingDetails.HearingIsLinkedFlag,
		HearingChannels:             hearingDetails.HearingChannels,
		Parties:                     parties,
	}, nil
}

// hearingPriority is urgent for urgent cases and for adjournments where the
// previous panel was excluded
func hearingPriority(c *models.CaseData, ref refdata.Service) string {
	if c.UrgentCase.IsYes() {
		return models.PriorityUrgent
	}
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() &&
		c.Adjournment.PanelMembersExcluded == models.PanelMembersExcludedYes {
		return models.PriorityUrgent
	}
	return models.PriorityStandard
}

// numberOfPhysicalAttendees counts the parties attending in person, plus the
// presenting officer when the department sends one
func numberOfPhysicalAttendees(c *models.CaseData) (int, error) {
	channels, err := partyChannels(c)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, ch := range channels {
		if ch == models.ChannelFaceToFace {
			count++
		}
	}
	if c.DwpIsOfficerAttending.IsYes() {
		count++
	}
	return count, nil
}
