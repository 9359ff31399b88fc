package listing

import "tribunal_hearings_go/models"

// arrangementReferences maps the case store's arrangement codes to the
// scheduling service's reasonable adjustment references. The vocabulary is
// closed: a code outside it fails the mapping rather than being dropped.
var arrangementReferences = map[string]string{
	models.ArrangementSignLanguageInterpreter: "RA0042",
	models.ArrangementHearingLoop:             "RA0043",
	models.ArrangementDisabledAccess:          "RA0019",
}

// Adjustments converts a party's requested arrangements to reasonable
// adjustment references
func Adjustments(arrangements []string) ([]string, error) {
	refs := make([]string, 0, len(arrangements))
	for _, a := range arrangements {
		ref, ok := arrangementReferences[a]
		if !ok {
			return nil, NewInvalidMappingError("unknown hearing arrangement %q", a)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
