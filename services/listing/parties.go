package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// Party role codes on the wire
const (
	RoleAppellant      = "BBA3-appellant"
	RoleAppointee      = "BBA3-appointee"
	RoleRepresentative = "BBA3-representative"
	RoleJointParty     = "BBA3-jointParty"
	RoleOtherParty     = "BBA3-otherParty"
	RoleRespondent     = "BBA3-respondent"
)

const relationshipRepresentative = "BBA3-representativeOf"

// maxPartyIDLength is a fixed scheduling-service constraint; longer ids are
// always truncated, never rejected
const maxPartyIDLength = 15

const (
	dwpPartyID        = "DWP"
	dwpName           = "DWP"
	hmrcName          = "HMRC"
	namePlaceholder   = "-"
)

// hmrcBenefits are the benefit codes where the responding department is HMRC
// rather than DWP
var hmrcBenefits = map[string]bool{
	"015": true, "016": true, "030": true, "034": true, "050": true,
	"053": true, "054": true, "055": true, "057": true, "058": true,
}

// TruncatePartyID enforces the scheduling service's party id length limit
func TruncatePartyID(id string) string {
	if len(id) > maxPartyIDLength {
		return id[:maxPartyIDLength]
	}
	return id
}

// Parties builds the full party list: the responding department first, then
// the joint party, the appellant with their appointee and representative, and
// every other party with theirs
func Parties(c *models.CaseData, ref refdata.Service) ([]models.PartyDetails, error) {
	parties := []models.PartyDetails{respondentParty(c)}

	// The joint party shares the appeal but not the appellant's hearing
	// preferences: it is emitted with no options of its own
	if jp := c.JointParty; jp != nil && jp.HasJointParty.IsYes() {
		entry, err := buildIndividualParty(c, ref, jp.Entity, RoleJointParty, nil, nil, false, "")
		if err != nil {
			return nil, err
		}
		parties = append(parties, entry)
	}

	if c.Appeal != nil && c.Appeal.Appellant != nil {
		appellant := c.Appeal.Appellant

		entry, err := buildIndividualParty(c, ref, appellant.Entity, RoleAppellant, c.HearingOptions(), c.HearingSubtype(), true, "")
		if err != nil {
			return nil, err
		}
		parties = append(parties, entry)

		if appellant.IsAppointee.IsYes() && appellant.Appointee != nil {
			entry, err := buildIndividualParty(c, ref, appellant.Appointee.Entity, RoleAppointee, c.HearingOptions(), c.HearingSubtype(), false, "")
			if err != nil {
				return nil, err
			}
			parties = append(parties, entry)
		}

		if rep := c.Appeal.Rep; rep != nil && rep.HasRepresentative.IsYes() {
			entry, err := buildIndividualParty(c, ref, rep.Entity, RoleRepresentative, c.HearingOptions(), c.HearingSubtype(), false, appellant.ID)
			if err != nil {
				return nil, err
			}
			parties = append(parties, entry)
		}
	}

	for i := range c.OtherParties {
		op := &c.OtherParties[i]

		entity := op.Entity
		if op.IsAppointee.IsYes() && op.Appointee != nil {
			entity = op.Appointee.Entity
		}
		entry, err := buildIndividualParty(c, ref, entity, RoleOtherParty, op.HearingOptions, op.HearingSubtype, false, "")
		if err != nil {
			return nil, err
		}
		parties = append(parties, entry)

		if rep := op.Rep; rep != nil && rep.HasRepresentative.IsYes() {
			entry, err := buildIndividualParty(c, ref, rep.Entity, RoleRepresentative, op.HearingOptions, op.HearingSubtype, false, op.ID)
			if err != nil {
				return nil, err
			}
			parties = append(parties, entry)
		}
	}

	return parties, nil
}

// respondentParty is the government department opposing the appeal. It is
// always present, named from the benefit code's responsible department.
func respondentParty(c *models.CaseData) models.PartyDetails {
	name := dwpName
	if hmrcBenefits[c.BenefitCode] {
		name = hmrcName
	}
	return models.PartyDetails{
		PartyID:   dwpPartyID,
		PartyType: models.PartyTypeOrganisation,
		PartyRole: RoleRespondent,
		OrganisationDetails: &models.OrganisationDetails{
			Name:             name,
			OrganisationType: models.PartyTypeOrganisation,
		},
		UnavailabilityDayOfWeek: []models.UnavailabilityDayOfWeek{},
		UnavailabilityRanges:    []models.UnavailabilityRange{},
	}
}

func buildIndividualParty(c *models.CaseData, ref refdata.Service, entity models.Entity, role string, options *models.HearingOptions, subtype *models.HearingSubtype, isAppellant bool, representedPartyID string) (models.PartyDetails, error) {
	individual, err := buildIndividualDetails(c, ref, entity, options, subtype, isAppellant, representedPartyID)
	if err != nil {
		return models.PartyDetails{}, err
	}

	ranges, err := unavailabilityRanges(options)
	if err != nil {
		return models.PartyDetails{}, err
	}

	partyType := models.PartyTypeIndividual
	var org *models.OrganisationDetails
	if entity.Organisation != "" {
		partyType = models.PartyTypeOrganisation
		org = &models.OrganisationDetails{
			Name:             entity.Organisation,
			OrganisationType: models.PartyTypeOrganisation,
		}
	}

	return models.PartyDetails{
		PartyID:                 TruncatePartyID(entity.ID),
		PartyType:               partyType,
		PartyRole:               role,
		IndividualDetails:       individual,
		OrganisationDetails:     org,
		UnavailabilityDayOfWeek: []models.UnavailabilityDayOfWeek{},
		UnavailabilityRanges:    ranges,
	}, nil
}

func buildIndividualDetails(c *models.CaseData, ref refdata.Service, entity models.Entity, options *models.HearingOptions, subtype *models.HearingSubtype, isAppellant bool, representedPartyID string) (*models.IndividualDetails, error) {
	firstName := entity.Name.FirstName
	lastName := entity.Name.LastName
	if firstName == "" || lastName == "" {
		if entity.Organisation == "" {
			return nil, NewListingError("party %s has no first or last name", entity.ID)
		}
		firstName = namePlaceholder
		lastName = namePlaceholder
	}

	var override *models.OverrideFields
	if isAppellant {
		override = liveOverrideFields(c)
	}
	channel, err := IndividualPreferredChannel(subtype, options, override)
	if err != nil {
		return nil, err
	}

	language, err := interpreterLanguage(c, ref, options, isAppellant)
	if err != nil {
		return nil, err
	}

	var adjustments []string
	if options != nil {
		adjustments, err = Adjustments(options.Arrangements)
		if err != nil {
			return nil, err
		}
	} else {
		adjustments = []string{}
	}

	related := []models.RelatedParty{}
	if representedPartyID != "" {
		related = append(related, models.RelatedParty{
			RelatedPartyID:   TruncatePartyID(representedPartyID),
			RelationshipType: relationshipRepresentative,
		})
	}

	emails := []string{}
	phones := []string{}
	if subtype != nil {
		if subtype.HearingVideoEmail != "" {
			emails = append(emails, subtype.HearingVideoEmail)
		}
		if subtype.HearingTelephoneNumber != "" {
			phones = append(phones, subtype.HearingTelephoneNumber)
		}
	}

	return &models.IndividualDetails{
		FirstName:               firstName,
		LastName:                lastName,
		PreferredHearingChannel: channel.HmcReference(),
		InterpreterLanguage:     language,
		ReasonableAdjustments:   adjustments,
		HearingChannelEmail:     emails,
		HearingChannelPhone:     phones,
		RelatedParties:          related,
	}, nil
}

// interpreterLanguage resolves the party's interpreter language, never
// silently: an unmappable code is always fatal. The appellant's language can
// come from the adjournment decision or the live override; everyone else's
// from their own hearing options.
func interpreterLanguage(c *models.CaseData, ref refdata.Service, options *models.HearingOptions, isAppellant bool) (string, error) {
	if isAppellant {
		if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() && c.Adjournment.InterpreterRequired.IsYes() {
			if code := c.Adjournment.InterpreterLanguage.SelectedCode(); code != "" {
				return verbalLanguageReference(ref, code)
			}
		}
		if override := liveOverrideFields(c); override.AppellantInterpreter != nil {
			interpreter := override.AppellantInterpreter
			if !interpreter.IsInterpreterWanted.IsYes() {
				return "", nil
			}
			if code := interpreter.InterpreterLanguage.SelectedCode(); code != "" {
				return verbalLanguageReference(ref, code)
			}
		}
	}

	if options == nil {
		return "", nil
	}
	if options.WantsSignLanguageInterpreter() {
		language := ref.SignLanguage(options.SignLanguageType)
		if language == nil {
			return "", NewInvalidMappingError("unknown sign language %q", options.SignLanguageType)
		}
		return language.FullReference(), nil
	}
	if options.LanguageInterpreter.IsYes() {
		return verbalLanguageReference(ref, options.Languages)
	}
	return "", nil
}

func verbalLanguageReference(ref refdata.Service, code string) (string, error) {
	language := ref.VerbalLanguage(code)
	if language == nil {
		return "", NewInvalidMappingError("unknown language %q", code)
	}
	return language.FullReference(), nil
}

// unavailabilityRanges converts exclude dates to unavailability ranges. A
// range with neither date is dropped; one with an end before its start (or an
// end with no start) cannot be scheduled around and fails the pass.
func unavailabilityRanges(options *models.HearingOptions) ([]models.UnavailabilityRange, error) {
	ranges := []models.UnavailabilityRange{}
	if options == nil {
		return ranges, nil
	}
	for _, d := range options.ExcludeDates {
		if d.Start == nil && d.End == nil {
			continue
		}
		if d.Start == nil {
			return nil, NewListingError("unavailability range has an end date but no start date")
		}
		if d.End != nil && d.End.Before(*d.Start) {
			return nil, NewListingError("unavailability range ends %s before it starts %s",
				d.End.Format(dateFormat), d.Start.Format(dateFormat))
		}
		r := models.UnavailabilityRange{
			UnavailableFromDate: d.Start.Format(dateFormat),
			UnavailabilityType:  models.UnavailabilityAllDay,
		}
		if d.End != nil {
			r.UnavailableToDate = d.End.Format(dateFormat)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
