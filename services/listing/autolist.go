package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// ShouldAutoList decides whether the scheduling service may list the hearing
// without a human in the loop. A live override wins outright; infected blood
// compensation cases are never auto-listed; otherwise any complicating factor
// on the case forces manual listing.
func ShouldAutoList(c *models.CaseData, ref refdata.Service) (bool, error) {
	if override := liveOverrideFields(c); override.AutoList != "" {
		return override.AutoList.IsYes(), nil
	}
	if c.IsIBC() {
		return false, nil
	}

	specialist, err := requiresSpecialistMember(c, ref)
	if err != nil {
		return false, err
	}
	if specialist {
		return false, nil
	}

	ch, err := ResolvedChannel(c, ref)
	if err != nil {
		return false, err
	}

	switch {
	case c.UrgentCase.IsYes(),
		hasOrganisationRepresentative(c),
		AdditionalSecurityRequired(c),
		IsInterpreterRequired(c, ref),
		len(c.LinkedCases) > 0,
		ch == models.ChannelPaper,
		ListingComments(c, ref) != "",
		c.DwpResponseDate == nil:
		return false, nil
	}
	return true, nil
}

// requiresSpecialistMember checks whether the default panel for the case's
// classification needs a medically or financially qualified member. The
// classification itself must be known for the answer to mean anything.
func requiresSpecialistMember(c *models.CaseData, ref refdata.Service) (bool, error) {
	if !ref.IsBenefitIssueValid(c.BenefitCode, c.IssueCode) {
		return false, NewListingError("Incorrect benefit/issue code combination")
	}
	for _, member := range ref.DefaultPanelRoles(c.BenefitCode, c.IssueCode) {
		if member.IsMedicalMember() || member == refdata.PanelMemberFinanciallyQualified {
			return true, nil
		}
	}
	return false, nil
}

func hasOrganisationRepresentative(c *models.CaseData) bool {
	if c.Appeal != nil && c.Appeal.Rep != nil &&
		c.Appeal.Rep.HasRepresentative.IsYes() && c.Appeal.Rep.Organisation != "" {
		return true
	}
	for i := range c.OtherParties {
		rep := c.OtherParties[i].Rep
		if rep != nil && rep.HasRepresentative.IsYes() && rep.Organisation != "" {
			return true
		}
	}
	return false
}
