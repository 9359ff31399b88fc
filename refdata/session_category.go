package refdata

// PanelMemberType identifies one seat on a tribunal panel
type PanelMemberType string

const (
	PanelMemberJudge                PanelMemberType = "BBA3-judge"
	PanelMemberRegionalJudge        PanelMemberType = "BBA3-regionalJudge"
	PanelMemberMedical              PanelMemberType = "BBA3-medicalMember"
	PanelMemberRegionalMedical      PanelMemberType = "BBA3-regionalMedicalMember"
	PanelMemberDisabilityExpert     PanelMemberType = "BBA3-disabilityAndWorkExperienceMember"
	PanelMemberFinanciallyQualified PanelMemberType = "BBA3-financiallyQualifiedPanelMember"
)

// roleReferences maps each panel member type to its wire role type code
var roleReferences = map[PanelMemberType]string{
	PanelMemberJudge:                "84",
	PanelMemberRegionalJudge:        "74",
	PanelMemberMedical:              "58",
	PanelMemberRegionalMedical:      "69",
	PanelMemberDisabilityExpert:     "44",
	PanelMemberFinanciallyQualified: "50",
}

// Reference returns the role type code sent on the wire, empty when the
// member type is not recognised
func (p PanelMemberType) Reference() string {
	return roleReferences[p]
}

// IsMedicalMember reports whether the seat is filled by a medical member,
// whose specialism comes from the case's doctor specialism fields
func (p PanelMemberType) IsMedicalMember() bool {
	return p == PanelMemberMedical || p == PanelMemberRegionalMedical
}

// SessionCategoryMap is the panel composition for a benefit/issue pair under
// a given second-doctor / fqpm configuration
type SessionCategoryMap struct {
	BenefitCode  string            `json:"benefitCode"`
	IssueCode    string            `json:"issueCode"`
	SecondDoctor bool              `json:"secondDoctor"`
	FqpmRequired bool              `json:"fqpmRequired"`
	Category     string            `json:"category"`
	PanelMembers []PanelMemberType `json:"panelMembers"`
}

var sessionCategories = []SessionCategoryMap{
	{BenefitCode: "002", IssueCode: "DD", Category: "CAT-03", PanelMembers: []PanelMemberType{PanelMemberJudge, PanelMemberMedical}},
	{BenefitCode: "002", IssueCode: "DD", SecondDoctor: true, Category: "CAT-05", PanelMembers: []PanelMemberType{PanelMemberJudge, PanelMemberMedical, PanelMemberMedical}},
	{BenefitCode: "003", IssueCode: "LE", Category: "CAT-01", PanelMembers: []PanelMemberType{PanelMemberJudge}},
	{BenefitCode: "015", IssueCode: "CC", Category: "CAT-01", PanelMembers: []PanelMemberType{PanelMemberJudge}},
	{BenefitCode: "016", IssueCode: "CE", Category: "CAT-01", PanelMembers: []PanelMemberType{PanelMemberJudge}},
	{BenefitCode: "022", IssueCode: "CM", Category: "CAT-02", PanelMembers: []PanelMemberType{PanelMemberJudge}},
	{BenefitCode: "022", IssueCode: "CM", FqpmRequired: true, Category: "CAT-06", PanelMembers: []PanelMemberType{PanelMemberJudge, PanelMemberFinanciallyQualified}},
	{BenefitCode: "051", IssueCode: "DD", Category: "CAT-04", PanelMembers: []PanelMemberType{PanelMemberJudge, PanelMemberMedical, PanelMemberDisabilityExpert}},
	{BenefitCode: "064", IssueCode: "GC", Category: "CAT-01", PanelMembers: []PanelMemberType{PanelMemberJudge}},
	{BenefitCode: "093", IssueCode: "RA", Category: "CAT-07", PanelMembers: []PanelMemberType{PanelMemberJudge, PanelMemberMedical}},
}
