package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Benefit codes with special handling
const (
	BenefitCodeInfectedBlood = "093" // IBC: cross-border, never auto-listed
	BenefitCodeChildSupport  = "022"
)

// BenefitType identifies the benefit an appeal is about
type BenefitType struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Appeal is the appeal block on a case
type Appeal struct {
	BenefitType    *BenefitType    `json:"benefitType,omitempty"`
	HearingType    string          `json:"hearingType,omitempty"`
	HearingOptions *HearingOptions `json:"hearingOptions,omitempty"`
	HearingSubtype *HearingSubtype `json:"hearingSubtype,omitempty"`
	Appellant      *Appellant      `json:"appellant,omitempty"`
	Rep            *Representative `json:"rep,omitempty"`
}

// CaseAccessManagementFields carries the display names computed for a case
type CaseAccessManagementFields struct {
	CaseNameHmctsInternal string `json:"caseNameHmctsInternal,omitempty"`
	CaseNamePublic        string `json:"caseNamePublic,omitempty"`
}

// Postponement tracks an unprocessed postponement on the case
type Postponement struct {
	UnprocessedPostponement YesNo `json:"unprocessedPostponement,omitempty"`
}

// CaseData is the aggregate root for one tribunal appeal. Mappers treat it as
// an immutable snapshot for the duration of a mapping pass; the only
// permitted mutation is the overrides resolver's one-time default listing
// values backfill, which returns an updated copy.
type CaseData struct {
	CaseID                     string                     `json:"caseId,omitempty"`
	CaseCreated                *time.Time                 `json:"caseCreated,omitempty"`
	CaseAccessManagementFields CaseAccessManagementFields `json:"caseAccessManagementFields"`
	BenefitCode                string                     `json:"benefitCode,omitempty"`
	IssueCode                  string                     `json:"issueCode,omitempty"`
	UrgentCase                 YesNo                      `json:"urgentCase,omitempty"`
	DwpResponseDate            *time.Time                 `json:"dwpResponseDate,omitempty"`
	DwpUcb                     YesNo                      `json:"dwpUcb,omitempty"`
	DwpIsOfficerAttending      YesNo                      `json:"dwpIsOfficerAttending,omitempty"`
	LinkedCases                []CaseLink                 `json:"linkedCases,omitempty"`

	Appeal       *Appeal      `json:"appeal,omitempty"`
	JointParty   *JointParty  `json:"jointParty,omitempty"`
	OtherParties []OtherParty `json:"otherParties,omitempty"`

	SchedulingAndListingFields SchedulingAndListingFields `json:"schedulingAndListingFields"`
	Adjournment                Adjournment                `json:"adjournment"`
	Postponement               Postponement               `json:"postponement"`

	RegionalProcessingCenter *RegionalProcessingCenter `json:"regionalProcessingCenter,omitempty"`
	ProcessingVenue          string                    `json:"processingVenue,omitempty"`
	CaseManagementLocation   *CaseManagementLocation   `json:"caseManagementLocation,omitempty"`

	// Industrial injuries doctor specialisms, used for panel specialism mapping
	PanelDoctorSpecialism       string `json:"panelDoctorSpecialism,omitempty"`
	SecondPanelDoctorSpecialism string `json:"secondPanelDoctorSpecialism,omitempty"`
	IsFqpmRequired              YesNo  `json:"isFqpmRequired,omitempty"`
}

// IsIBC reports whether this is an infected blood compensation (cross-border)
// case
func (c *CaseData) IsIBC() bool {
	return c.BenefitCode == BenefitCodeInfectedBlood
}

// HearingOptions returns the appellant's hearing options, nil-safe
func (c *CaseData) HearingOptions() *HearingOptions {
	if c.Appeal == nil {
		return nil
	}
	return c.Appeal.HearingOptions
}

// HearingSubtype returns the appellant's hearing subtype, nil-safe
func (c *CaseData) HearingSubtype() *HearingSubtype {
	if c.Appeal == nil {
		return nil
	}
	return c.Appeal.HearingSubtype
}

// CaseRecord is the persisted wrapper around a case aggregate. The aggregate
// itself is stored as a JSON document; listing state lives alongside it.
type CaseRecord struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string   `gorm:"not null;uniqueIndex" json:"case_id"`
	Data   CaseData `gorm:"serializer:json" json:"data"`

	// Latest known scheduling-service hearing for this case
	HearingID      *string `json:"hearing_id,omitempty"`
	HearingVersion int     `gorm:"not null;default:0" json:"hearing_version"`
	HearingState   string  `json:"hearing_state,omitempty"`
}

// BeforeCreate hook to generate UUID
func (r *CaseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseRecord
func (CaseRecord) TableName() string {
	return "case_records"
}
