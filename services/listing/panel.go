package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// doctorSpecialismReferences maps the case's doctor specialism values to the
// scheduling service's specialism codes. An unknown specialism contributes
// nothing to the panel requirements.
var doctorSpecialismReferences = map[string]string{
	"cardiologist":        "1",
	"carer":               "2",
	"eyeSurgeon":          "3",
	"generalPractitioner": "4",
}

// Panel builds the panel requirements: role types from the session category,
// member preferences from the case's exclusion and reservation lists, and
// specialisms from the required medical seats
func Panel(c *models.CaseData, ref refdata.Service) (*models.PanelRequirements, error) {
	category := sessionCategory(c, ref)
	if category == nil {
		return nil, NewListingError("Incorrect benefit/issue code combination")
	}

	roleTypes := make([]string, 0, len(category.PanelMembers))
	for _, member := range category.PanelMembers {
		if code := member.Reference(); code != "" {
			roleTypes = append(roleTypes, code)
		}
	}

	return &models.PanelRequirements{
		RoleTypes:             roleTypes,
		AuthorisationTypes:    []string{},
		AuthorisationSubTypes: []string{},
		PanelPreferences:      panelPreferences(c),
		PanelSpecialisms:      panelSpecialisms(c, category),
	}, nil
}

func sessionCategory(c *models.CaseData, ref refdata.Service) *refdata.SessionCategoryMap {
	secondDoctor := c.SecondPanelDoctorSpecialism != ""
	return ref.SessionCategory(c.BenefitCode, c.IssueCode, secondDoctor, c.IsFqpmRequired.IsYes())
}

// panelPreferences turns the case's judicial exclusion and reservation lists
// into member preferences. Entries without a personal code cannot be sent to
// the scheduling service and are dropped.
func panelPreferences(c *models.CaseData) []models.PanelPreference {
	preferences := []models.PanelPreference{}
	exclusions := c.SchedulingAndListingFields.PanelMemberExclusions
	if exclusions == nil {
		return preferences
	}
	if exclusions.ArePanelMembersExcluded.IsYes() {
		for _, member := range exclusions.ExcludedPanelMembers {
			if member.PersonalCode == "" {
				continue
			}
			preferences = append(preferences, models.PanelPreference{
				MemberID:        member.PersonalCode,
				MemberType:      models.PanelMemberTypeJOH,
				RequirementType: models.RequirementExclude,
			})
		}
	}
	if exclusions.ArePanelMembersReserved.IsYes() {
		for _, member := range exclusions.ReservedPanelMembers {
			if member.PersonalCode == "" {
				continue
			}
			preferences = append(preferences, models.PanelPreference{
				MemberID:        member.PersonalCode,
				MemberType:      models.PanelMemberTypeJOH,
				RequirementType: models.RequirementMustInclude,
			})
		}
	}
	return preferences
}

// panelSpecialisms resolves a specialism per required seat. Medical seats map
// their doctor specialism (first/second slot); every other seat contributes
// its own reference code. Child support panels never carry specialisms, and
// seats that resolve to nothing are dropped.
func panelSpecialisms(c *models.CaseData, category *refdata.SessionCategoryMap) []string {
	if c.BenefitCode == models.BenefitCodeChildSupport {
		return []string{}
	}
	specialisms := []string{}
	medicalSeat := 0
	for _, member := range category.PanelMembers {
		if member.IsMedicalMember() {
			medicalSeat++
			specialism := c.PanelDoctorSpecialism
			if medicalSeat == 2 {
				specialism = c.SecondPanelDoctorSpecialism
			}
			if code, ok := doctorSpecialismReferences[specialism]; ok {
				specialisms = append(specialisms, code)
			}
			continue
		}
		if code := member.Reference(); code != "" {
			specialisms = append(specialisms, code)
		}
	}
	return specialisms
}
