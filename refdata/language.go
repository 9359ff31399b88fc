package refdata

// Language is one entry in the verbal or sign language directory
type Language struct {
	Reference        string `json:"reference"`
	DialectReference string `json:"dialectReference,omitempty"`
	Name             string `json:"name"`
	DialectName      string `json:"dialectName,omitempty"`
}

// FullReference returns the wire reference, with the dialect suffixed when
// one exists, e.g. "ara-ara-2"
func (l Language) FullReference() string {
	if l.DialectReference == "" {
		return l.Reference
	}
	return l.Reference + "-" + l.DialectReference
}

// DisplayName returns the dialect name when present, else the language name
func (l Language) DisplayName() string {
	if l.DialectName != "" {
		return l.DialectName
	}
	return l.Name
}
