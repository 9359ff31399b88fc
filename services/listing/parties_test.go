package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tribunal_hearings_go/models"
)

func TestTruncatePartyID(t *testing.T) {
	assert.Equal(t, "123456789012345", TruncatePartyID("12345678901234567890"))
	assert.Equal(t, "short", TruncatePartyID("short"))
	assert.Equal(t, "123456789012345", TruncatePartyID("123456789012345"))
}

func TestRespondentParty(t *testing.T) {
	ref := testRef()

	t.Run("the department is always the first party", func(t *testing.T) {
		parties, err := Parties(testCase(), ref)
		assert.NoError(t, err)
		assert.NotEmpty(t, parties)
		respondent := parties[0]
		assert.Equal(t, "DWP", respondent.PartyID)
		assert.Equal(t, models.PartyTypeOrganisation, respondent.PartyType)
		assert.Equal(t, RoleRespondent, respondent.PartyRole)
		assert.Equal(t, "DWP", respondent.OrganisationDetails.Name)
	})

	t.Run("tax credit benefits respond through HMRC", func(t *testing.T) {
		c := testCase()
		c.BenefitCode = "015"
		c.IssueCode = "CC"
		parties, err := Parties(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, "HMRC", parties[0].OrganisationDetails.Name)
	})
}

func TestAppellantParty(t *testing.T) {
	ref := testRef()

	t.Run("appellant entry with interpreter language", func(t *testing.T) {
		parties, err := Parties(withInterpreter(testCase(), "french"), ref)
		assert.NoError(t, err)
		assert.Len(t, parties, 2)
		appellant := parties[1]
		assert.Equal(t, "appellant1", appellant.PartyID)
		assert.Equal(t, models.PartyTypeIndividual, appellant.PartyType)
		assert.Equal(t, RoleAppellant, appellant.PartyRole)
		assert.Equal(t, "Joe", appellant.IndividualDetails.FirstName)
		assert.Equal(t, "fre", appellant.IndividualDetails.InterpreterLanguage)
		assert.Equal(t, "INTER", appellant.IndividualDetails.PreferredHearingChannel)
	})

	t.Run("long party id is truncated", func(t *testing.T) {
		c := testCase()
		c.Appeal.Appellant.ID = "appellant-with-a-very-long-id"
		parties, err := Parties(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, "appellant-with-", parties[1].PartyID)
	})

	t.Run("missing name without an organisation fails", func(t *testing.T) {
		c := testCase()
		c.Appeal.Appellant.Name.LastName = ""
		_, err := Parties(c, ref)
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("unmappable language is fatal", func(t *testing.T) {
		_, err := Parties(withInterpreter(testCase(), "klingon"), testRef())
		var ime *InvalidMappingError
		assert.ErrorAs(t, err, &ime)
	})

	t.Run("sign language resolves from the arrangements", func(t *testing.T) {
		c := testCase()
		c.Appeal.HearingOptions.Arrangements = []string{models.ArrangementSignLanguageInterpreter}
		c.Appeal.HearingOptions.SignLanguageType = "British Sign Language (BSL)"
		parties, err := Parties(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, "bfi", parties[1].IndividualDetails.InterpreterLanguage)
		assert.Contains(t, parties[1].IndividualDetails.ReasonableAdjustments, "RA0042")
	})
}

func TestAppointeeAndRepresentative(t *testing.T) {
	ref := testRef()

	c := testCase()
	c.Appeal.Appellant.IsAppointee = models.Yes
	c.Appeal.Appellant.Appointee = &models.Appointee{
		Entity: models.Entity{ID: "appointee1", Name: models.Name{FirstName: "Amy", LastName: "Carer"}},
	}
	c.Appeal.Rep = &models.Representative{
		HasRepresentative: models.Yes,
		Entity:            models.Entity{ID: "representative-with-long-id", Name: models.Name{FirstName: "Ray", LastName: "Counsel"}},
	}

	parties, err := Parties(c, ref)
	assert.NoError(t, err)
	assert.Len(t, parties, 4)

	assert.Equal(t, RoleAppointee, parties[2].PartyRole)
	assert.Equal(t, "appointee1", parties[2].PartyID)
	assert.Empty(t, parties[2].IndividualDetails.RelatedParties)

	rep := parties[3]
	assert.Equal(t, RoleRepresentative, rep.PartyRole)
	assert.Equal(t, "representative-", rep.PartyID)
	assert.Len(t, rep.IndividualDetails.RelatedParties, 1)
	assert.Equal(t, "appellant1", rep.IndividualDetails.RelatedParties[0].RelatedPartyID)
}

func TestOrganisationRepresentative(t *testing.T) {
	ref := testRef()

	c := testCase()
	c.Appeal.Rep = &models.Representative{
		HasRepresentative: models.Yes,
		Entity:            models.Entity{ID: "rep1", Organisation: "Citizens Advice"},
	}

	parties, err := Parties(c, ref)
	assert.NoError(t, err)
	rep := parties[2]
	assert.Equal(t, models.PartyTypeOrganisation, rep.PartyType)
	assert.Equal(t, "Citizens Advice", rep.OrganisationDetails.Name)
	assert.Equal(t, "-", rep.IndividualDetails.FirstName)
	assert.Equal(t, "-", rep.IndividualDetails.LastName)
}

func TestOtherParties(t *testing.T) {
	ref := testRef()

	t.Run("other party with its own representative", func(t *testing.T) {
		c := testCase()
		c.OtherParties = []models.OtherParty{{
			Entity:         models.Entity{ID: "op1", Name: models.Name{FirstName: "Jane", LastName: "Smith"}},
			HearingOptions: &models.HearingOptions{WantsToAttend: models.No},
			Rep: &models.Representative{
				HasRepresentative: models.Yes,
				Entity:            models.Entity{ID: "oprep1", Name: models.Name{FirstName: "Rob", LastName: "Advocate"}},
			},
		}}
		parties, err := Parties(c, ref)
		assert.NoError(t, err)
		assert.Len(t, parties, 4)
		assert.Equal(t, RoleOtherParty, parties[2].PartyRole)
		assert.Equal(t, RoleRepresentative, parties[3].PartyRole)
		assert.Equal(t, "op1", parties[3].IndividualDetails.RelatedParties[0].RelatedPartyID)
	})

	t.Run("appointee stands in for the party", func(t *testing.T) {
		c := testCase()
		c.OtherParties = []models.OtherParty{{
			Entity:      models.Entity{ID: "op1", Name: models.Name{FirstName: "Jane", LastName: "Smith"}},
			IsAppointee: models.Yes,
			Appointee: &models.Appointee{
				Entity: models.Entity{ID: "opapp1", Name: models.Name{FirstName: "Alex", LastName: "Proxy"}},
			},
		}}
		parties, err := Parties(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, "opapp1", parties[2].PartyID)
		assert.Equal(t, RoleOtherParty, parties[2].PartyRole)
	})

	t.Run("unmappable arrangement aborts the whole pass", func(t *testing.T) {
		c := testCase()
		c.OtherParties = []models.OtherParty{{
			Entity: models.Entity{ID: "op1", Name: models.Name{FirstName: "Jane", LastName: "Smith"}},
			HearingOptions: &models.HearingOptions{
				WantsToAttend: models.No,
				Arrangements:  []string{"hoverboardAccess"},
			},
		}}
		_, err := Parties(c, ref)
		var ime *InvalidMappingError
		assert.ErrorAs(t, err, &ime)
	})
}

func TestJointParty(t *testing.T) {
	ref := testRef()

	c := withInterpreter(testCase(), "french")
	c.Appeal.HearingOptions.Arrangements = []string{models.ArrangementHearingLoop}
	c.Appeal.HearingOptions.ExcludeDates = []models.ExcludeDate{
		{Start: datep(2026, time.September, 1), End: datep(2026, time.September, 7)},
	}
	c.JointParty = &models.JointParty{
		HasJointParty: models.Yes,
		Entity:        models.Entity{ID: "joint1", Name: models.Name{FirstName: "Jo", LastName: "Bloggs"}},
	}

	parties, err := Parties(c, ref)
	assert.NoError(t, err)
	assert.Len(t, parties, 3)
	assert.Equal(t, RoleJointParty, parties[1].PartyRole)
	assert.Equal(t, RoleAppellant, parties[2].PartyRole)

	// the joint party carries none of the appellant's hearing preferences
	joint := parties[1]
	assert.Equal(t, models.ChannelNotAttending.HmcReference(), joint.IndividualDetails.PreferredHearingChannel)
	assert.Empty(t, joint.IndividualDetails.InterpreterLanguage)
	assert.Empty(t, joint.IndividualDetails.ReasonableAdjustments)
	assert.Empty(t, joint.UnavailabilityRanges)

	appellant := parties[2]
	assert.Equal(t, "fre", appellant.IndividualDetails.InterpreterLanguage)
	assert.Equal(t, []string{"RA0043"}, appellant.IndividualDetails.ReasonableAdjustments)
	assert.Len(t, appellant.UnavailabilityRanges, 1)
}

func TestUnavailabilityRanges(t *testing.T) {
	t.Run("exclude dates become all day ranges", func(t *testing.T) {
		ranges, err := unavailabilityRanges(&models.HearingOptions{
			ExcludeDates: []models.ExcludeDate{
				{Start: datep(2026, time.September, 1), End: datep(2026, time.September, 7)},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, ranges, 1)
		assert.Equal(t, "2026-09-01", ranges[0].UnavailableFromDate)
		assert.Equal(t, "2026-09-07", ranges[0].UnavailableToDate)
		assert.Equal(t, models.UnavailabilityAllDay, ranges[0].UnavailabilityType)
	})

	t.Run("empty range is dropped silently", func(t *testing.T) {
		ranges, err := unavailabilityRanges(&models.HearingOptions{
			ExcludeDates: []models.ExcludeDate{{}},
		})
		assert.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := unavailabilityRanges(&models.HearingOptions{
			ExcludeDates: []models.ExcludeDate{
				{Start: datep(2026, time.September, 7), End: datep(2026, time.September, 1)},
			},
		})
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("end without start fails", func(t *testing.T) {
		_, err := unavailabilityRanges(&models.HearingOptions{
			ExcludeDates: []models.ExcludeDate{
				{End: datep(2026, time.September, 1)},
			},
		})
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("start only is kept open ended", func(t *testing.T) {
		ranges, err := unavailabilityRanges(&models.HearingOptions{
			ExcludeDates: []models.ExcludeDate{
				{Start: datep(2026, time.September, 1)},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, ranges, 1)
		assert.Empty(t, ranges[0].UnavailableToDate)
	})
}
