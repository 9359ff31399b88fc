package listing

import (
	"time"

	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

func testRef() refdata.Service {
	return refdata.NewInMemory("BBA3", "https://manage-case.example.net", true)
}

func intp(v int) *int { return &v }

func datep(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// testCase builds a PIP appeal with an attending appellant, routed through
// the Birmingham processing center
func testCase() *models.CaseData {
	return &models.CaseData{
		CaseID:      "1234567890123456",
		CaseCreated: datep(2026, time.March, 2),
		CaseAccessManagementFields: models.CaseAccessManagementFields{
			CaseNameHmctsInternal: "Joe Bloggs",
			CaseNamePublic:        "Joe Bloggs",
		},
		BenefitCode:     "002",
		IssueCode:       "DD",
		DwpResponseDate: datep(2026, time.April, 10),
		Appeal: &models.Appeal{
			BenefitType: &models.BenefitType{Code: "PIP"},
			HearingOptions: &models.HearingOptions{
				WantsToAttend: models.Yes,
			},
			HearingSubtype: &models.HearingSubtype{
				WantsHearingTypeFaceToFace: models.Yes,
			},
			Appellant: &models.Appellant{
				Entity: models.Entity{
					ID:   "appellant1",
					Name: models.Name{Title: "Mr", FirstName: "Joe", LastName: "Bloggs"},
				},
			},
		},
		RegionalProcessingCenter: &models.RegionalProcessingCenter{
			Name:     "SSCS Birmingham",
			Postcode: "B16 6FR",
		},
		ProcessingVenue: "Coventry",
		CaseManagementLocation: &models.CaseManagementLocation{
			BaseLocation: "231596",
			Region:       "2",
		},
	}
}

func withOverrides(c *models.CaseData, o *models.OverrideFields) *models.CaseData {
	c.SchedulingAndListingFields.OverrideFields = o
	return c
}

func withDefaults(c *models.CaseData, o *models.OverrideFields) *models.CaseData {
	c.SchedulingAndListingFields.DefaultListingValues = o
	return c
}

func withInterpreter(c *models.CaseData, language string) *models.CaseData {
	c.Appeal.HearingOptions.LanguageInterpreter = models.Yes
	c.Appeal.HearingOptions.Languages = language
	return c
}
