package models

// YesNo mirrors the tribunal case store's yes/no fields, which arrive as the
// literal strings "Yes" and "No" and are frequently absent altogether.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// IsYes checks if the value is an explicit Yes
func (y YesNo) IsYes() bool {
	return y == Yes
}

// IsNoOrNull checks if the value is an explicit No or was never set
func (y YesNo) IsNoOrNull() bool {
	return y == No || y == ""
}

// ToYesNo converts a boolean into the case store representation
func ToYesNo(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}
