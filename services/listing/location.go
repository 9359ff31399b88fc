package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// Locations resolves the venue list for the hearing. Sources are tried in
// order and the first non-empty result wins: adjournment-derived venues, the
// live override's venue list, the paper-case venue set, and finally the
// processing venue with its multi-location group.
func Locations(c *models.CaseData, ref refdata.Service) ([]models.HearingLocation, error) {
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() {
		locations, err := adjournmentLocations(c, ref)
		if err != nil {
			return nil, err
		}
		if len(locations) > 0 {
			return locations, nil
		}
	}

	if override := liveOverrideFields(c); len(override.HearingVenueEpimsIDs) > 0 {
		return toCourtLocations(override.HearingVenueEpimsIDs), nil
	}

	ch, err := ResolvedChannel(c, ref)
	if err != nil {
		return nil, err
	}
	if ch == models.ChannelPaper {
		return paperCaseLocations(c, ref)
	}

	return multiLocationFallback(c, ref)
}

func adjournmentLocations(c *models.CaseData, ref refdata.Service) ([]models.HearingLocation, error) {
	adj := &c.Adjournment

	if adj.TypeOfNextHearing == models.AdjournHearingPaper {
		return paperCaseLocations(c, ref)
	}

	if adj.NextHearingVenue == models.NextHearingVenueSomewhereElse {
		if venueID := adj.NextHearingVenueSelected.SelectedCode(); venueID != "" {
			epimsID := ref.EpimsIDForVenueID(venueID)
			if epimsID == "" {
				return nil, NewListingError("adjournment venue %s is not a known venue", venueID)
			}
			return toCourtLocations([]string{epimsID}), nil
		}
	}

	if epimsID := ref.EpimsIDForVenueName(c.ProcessingVenue); epimsID != "" {
		return toCourtLocations([]string{epimsID}), nil
	}
	return nil, nil
}

// paperCaseLocations lists every active venue under the case's regional
// processing center. The center must route through the external scheduling
// service for this to be valid.
func paperCaseLocations(c *models.CaseData, ref refdata.Service) ([]models.HearingLocation, error) {
	rpc, err := validatedRPC(c, ref)
	if err != nil {
		return nil, err
	}
	venues := ref.ActiveVenuesByEpimsID(rpc.EpimsID)
	if len(venues) == 0 {
		return nil, NewListingError("no active venues found for regional processing center %s", rpc.Name)
	}
	ids := make([]string, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.EpimsID)
	}
	return toCourtLocations(ids), nil
}

// validatedRPC resolves the case's regional processing center and confirms it
// is routed through list assist
func validatedRPC(c *models.CaseData, ref refdata.Service) (*models.RegionalProcessingCenter, error) {
	if c.RegionalProcessingCenter == nil {
		return nil, NewListingError("case %s has no regional processing center", c.CaseID)
	}
	rpc := ref.RPCByPostcode(c.RegionalProcessingCenter.Postcode, c.IsIBC())
	if rpc == nil {
		return nil, NewListingError("no regional processing center found for postcode %s", c.RegionalProcessingCenter.Postcode)
	}
	if rpc.HearingRoute != models.HearingRouteListAssist {
		return nil, NewListingError("regional processing center %s is not list assist routed", rpc.Name)
	}
	return rpc, nil
}

// multiLocationFallback resolves the processing venue's epims id and widens it
// to its multi-location group when one exists
func multiLocationFallback(c *models.CaseData, ref refdata.Service) ([]models.HearingLocation, error) {
	epimsID := ref.EpimsIDForVenueName(c.ProcessingVenue)
	if epimsID == "" {
		return nil, NewListingError("processing venue %q does not resolve to a venue", c.ProcessingVenue)
	}
	for groupLead, members := range ref.MultiLocationGroups() {
		if groupLead == epimsID {
			return toCourtLocations(append([]string{groupLead}, members...)), nil
		}
		for _, member := range members {
			if member == epimsID {
				return toCourtLocations(append([]string{groupLead}, members...)), nil
			}
		}
	}
	return toCourtLocations([]string{epimsID}), nil
}

func toCourtLocations(epimsIDs []string) []models.HearingLocation {
	locations := make([]models.HearingLocation, 0, len(epimsIDs))
	for _, id := range epimsIDs {
		locations = append(locations, models.HearingLocation{
			LocationID:   id,
			LocationType: models.LocationTypeCourt,
		})
	}
	return locations
}
