package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

const caseCategoryPrefix = "BBA3-"

// CaseDetails builds the case block: service metadata, display names,
// security and interpreter flags, benefit/issue categorisation and the
// management location
func CaseDetails(c *models.CaseData, ref refdata.Service) (*models.CaseDetails, error) {
	categories, err := caseCategories(c, ref)
	if err != nil {
		return nil, err
	}

	slaStartDate := ""
	if c.CaseCreated != nil {
		slaStartDate = c.CaseCreated.Format(dateFormat)
	}

	managementLocation := ""
	if c.CaseManagementLocation != nil {
		managementLocation = c.CaseManagementLocation.BaseLocation
	}

	return &models.CaseDetails{
		HmctsServiceCode:            ref.ServiceCode(),
		CaseRef:                     c.CaseID,
		CaseDeepLink:                ref.ExUIBaseURL() + "/cases/case-details/" + c.CaseID,
		HmctsInternalCaseName:       c.CaseAccessManagementFields.CaseNameHmctsInternal,
		PublicCaseName:              c.CaseAccessManagementFields.CaseNamePublic,
		CaseAdditionalSecurityFlag:  AdditionalSecurityRequired(c),
		CaseInterpreterRequiredFlag: IsInterpreterRequired(c, ref),
		CaseCategories:              categories,
		CaseManagementLocationCode:  managementLocation,
		// Restricted cases are not handled yet
		CaseRestrictedFlag: false,
		CaseSlaStartDate:   slaStartDate,
	}, nil
}

// caseCategories derives the type and sub-type categories from the benefit
// and issue codes. An unrecognised combination cannot be categorised.
func caseCategories(c *models.CaseData, ref refdata.Service) ([]models.CaseCategory, error) {
	if !ref.IsBenefitIssueValid(c.BenefitCode, c.IssueCode) {
		return nil, NewListingError("Incorrect benefit/issue code combination")
	}
	caseType := caseCategoryPrefix + c.BenefitCode
	return []models.CaseCategory{
		{CategoryType: models.CategoryCaseType, CategoryValue: caseType},
		{CategoryType: models.CategoryCaseSubType, CategoryValue: caseType + c.IssueCode, CategoryParent: caseType},
	}, nil
}

// AdditionalSecurityRequired is true when unacceptable customer behaviour has
// been flagged on the appellant, by the department, or on any other party
func AdditionalSecurityRequired(c *models.CaseData) bool {
	if c.DwpUcb.IsYes() {
		return true
	}
	if c.Appeal != nil && c.Appeal.Appellant != nil && c.Appeal.Appellant.UnacceptableCustomerBehaviour.IsYes() {
		return true
	}
	for i := range c.OtherParties {
		if c.OtherParties[i].UnacceptableCustomerBehaviour.IsYes() {
			return true
		}
	}
	return false
}
