package models

import "strings"

// Name holds a party's name components
type Name struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// FullName returns the name with title, e.g. "Mr Joe Bloggs"
func (n Name) FullName() string {
	return strings.TrimSpace(strings.Join([]string{n.Title, n.FirstName, n.LastName}, " "))
}

// FullNameNoTitle returns just first and last name
func (n Name) FullNameNoTitle() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

// Entity is the shared identity block embedded in every party-like record:
// appellant, appointee, representative, joint party and other party.
type Entity struct {
	ID           string `json:"id,omitempty"`
	Name         Name   `json:"name"`
	Organisation string `json:"organisation,omitempty"`
}

// Role is an optional descriptive role carried on a party
type Role struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Appellant is the person bringing the appeal
type Appellant struct {
	Entity
	IsAppointee                   YesNo      `json:"isAppointee,omitempty"`
	Appointee                     *Appointee `json:"appointee,omitempty"`
	Role                          *Role      `json:"role,omitempty"`
	UnacceptableCustomerBehaviour YesNo      `json:"unacceptableCustomerBehaviour,omitempty"`
}

// Appointee acts on behalf of an appellant who cannot manage their own appeal
type Appointee struct {
	Entity
}

// Representative represents a party at the hearing
type Representative struct {
	Entity
	HasRepresentative YesNo `json:"hasRepresentative,omitempty"`
}

// JointParty is an optional second appellant on the same appeal
type JointParty struct {
	Entity
	HasJointParty YesNo `json:"hasJointParty,omitempty"`
}

// OtherParty is any further party joined to the case, carrying its own
// hearing options, representative and optional appointee.
type OtherParty struct {
	Entity
	IsAppointee                   YesNo           `json:"isAppointee,omitempty"`
	Appointee                     *Appointee      `json:"appointee,omitempty"`
	Rep                           *Representative `json:"rep,omitempty"`
	Role                          *Role           `json:"role,omitempty"`
	HearingOptions                *HearingOptions `json:"hearingOptions,omitempty"`
	HearingSubtype                *HearingSubtype `json:"hearingSubtype,omitempty"`
	UnacceptableCustomerBehaviour YesNo           `json:"unacceptableCustomerBehaviour,omitempty"`
}
