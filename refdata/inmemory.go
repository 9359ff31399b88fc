package refdata

import (
	"strings"

	"tribunal_hearings_go/models"
)

// InMemory serves reference data from the seeded in-process tables. It is the
// only implementation today; the Service interface exists so the mapping code
// stays testable against stubs.
type InMemory struct {
	serviceCode     string
	exUIBaseURL     string
	adjournmentFlag bool
}

// NewInMemory builds the gateway with deployment-specific metadata
func NewInMemory(serviceCode, exUIBaseURL string, adjournmentFlag bool) *InMemory {
	return &InMemory{
		serviceCode:     serviceCode,
		exUIBaseURL:     exUIBaseURL,
		adjournmentFlag: adjournmentFlag,
	}
}

func (s *InMemory) VenueByID(id string) *VenueDetails {
	for i := range venues {
		if venues[i].VenueID == id {
			v := venues[i]
			return &v
		}
	}
	return nil
}

// ActiveVenuesByEpimsID returns the active venues processed by the regional
// center owning the given epims id
func (s *InMemory) ActiveVenuesByEpimsID(rpcEpimsID string) []VenueDetails {
	var out []VenueDetails
	for _, v := range venues {
		if v.Active && v.RPCEpimsID == rpcEpimsID {
			out = append(out, v)
		}
	}
	return out
}

func (s *InMemory) EpimsIDForVenueName(name string) string {
	for _, v := range venues {
		if strings.EqualFold(v.VenueName, name) {
			return v.EpimsID
		}
	}
	return ""
}

func (s *InMemory) EpimsIDForVenueID(id string) string {
	if v := s.VenueByID(id); v != nil {
		return v.EpimsID
	}
	return ""
}

func (s *InMemory) MultiLocationGroups() map[string][]string {
	return multiLocationGroups
}

// RPCByPostcode resolves the regional processing center from the postcode's
// outward area. Infected blood compensation cases always route to the single
// dedicated center.
func (s *InMemory) RPCByPostcode(postcode string, isIBC bool) *models.RegionalProcessingCenter {
	if isIBC {
		return rpcByName(ibcRPCName)
	}
	area := postcodeArea(postcode)
	if area == "" {
		return nil
	}
	name, ok := postcodeAreaToRPC[area]
	if !ok {
		return nil
	}
	return rpcByName(name)
}

func rpcByName(name string) *models.RegionalProcessingCenter {
	for i := range rpcs {
		if rpcs[i].Name == name {
			rpc := rpcs[i]
			return &rpc
		}
	}
	return nil
}

// postcodeArea extracts the leading letters of a postcode's outward code,
// e.g. "CV1 2SN" -> "CV"
func postcodeArea(postcode string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(postcode))
	end := 0
	for end < len(trimmed) && trimmed[end] >= 'A' && trimmed[end] <= 'Z' {
		end++
	}
	return trimmed[:end]
}

func (s *InMemory) SignLanguage(code string) *Language {
	if l, ok := signLanguages[code]; ok {
		return &l
	}
	return nil
}

func (s *InMemory) VerbalLanguage(code string) *Language {
	if l, ok := verbalLanguages[strings.ToLower(strings.TrimSpace(code))]; ok {
		return &l
	}
	return nil
}

func (s *InMemory) HearingDuration(benefitCode, issueCode string) *HearingDuration {
	for i := range hearingDurations {
		if hearingDurations[i].BenefitCode == benefitCode && hearingDurations[i].IssueCode == issueCode {
			d := hearingDurations[i]
			return &d
		}
	}
	return nil
}

// SessionCategory finds the panel composition matching the full
// classification. Entries are keyed on all four dimensions, so a pair with no
// second-doctor variant simply has no entry for secondDoctor=true.
func (s *InMemory) SessionCategory(benefitCode, issueCode string, secondDoctor, fqpmRequired bool) *SessionCategoryMap {
	for i := range sessionCategories {
		c := sessionCategories[i]
		if c.BenefitCode == benefitCode && c.IssueCode == issueCode &&
			c.SecondDoctor == secondDoctor && c.FqpmRequired == fqpmRequired {
			return &c
		}
	}
	return nil
}

// IsBenefitIssueValid reports whether any session category exists for the
// pair, regardless of panel configuration
func (s *InMemory) IsBenefitIssueValid(benefitCode, issueCode string) bool {
	for _, c := range sessionCategories {
		if c.BenefitCode == benefitCode && c.IssueCode == issueCode {
			return true
		}
	}
	return false
}

// DefaultPanelRoles returns the panel members for the pair's base
// configuration (no second doctor, no fqpm)
func (s *InMemory) DefaultPanelRoles(benefitCode, issueCode string) []PanelMemberType {
	if c := s.SessionCategory(benefitCode, issueCode, false, false); c != nil {
		return c.PanelMembers
	}
	return nil
}

func (s *InMemory) ServiceCode() string { return s.serviceCode }

func (s *InMemory) ExUIBaseURL() string { return s.exUIBaseURL }

func (s *InMemory) AdjournmentFlagEnabled() bool { return s.adjournmentFlag }
