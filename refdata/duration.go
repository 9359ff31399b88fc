package refdata

// HearingDuration is the listing duration entry for a benefit/issue pair.
// Durations are minutes; a nil duration means the channel has no configured
// length for that classification.
type HearingDuration struct {
	BenefitCode         string `json:"benefitCode"`
	IssueCode           string `json:"issueCode"`
	DurationFaceToFace  *int   `json:"durationFaceToFace,omitempty"`
	DurationInterpreter *int   `json:"durationInterpreter,omitempty"`
	DurationPaper       *int   `json:"durationPaper,omitempty"`
}

func minutes(m int) *int { return &m }

var hearingDurations = []HearingDuration{
	{BenefitCode: "002", IssueCode: "DD", DurationFaceToFace: minutes(60), DurationInterpreter: minutes(90), DurationPaper: minutes(30)},
	{BenefitCode: "003", IssueCode: "LE", DurationFaceToFace: minutes(45), DurationInterpreter: minutes(75), DurationPaper: minutes(30)},
	{BenefitCode: "015", IssueCode: "CC", DurationFaceToFace: minutes(60), DurationInterpreter: minutes(90)},
	{BenefitCode: "016", IssueCode: "CE", DurationFaceToFace: minutes(30), DurationInterpreter: minutes(60), DurationPaper: minutes(30)},
	{BenefitCode: "022", IssueCode: "CM", DurationFaceToFace: minutes(60), DurationInterpreter: minutes(90), DurationPaper: minutes(40)},
	{BenefitCode: "051", IssueCode: "DD", DurationFaceToFace: minutes(60), DurationInterpreter: minutes(90), DurationPaper: minutes(30)},
	// Paper-only classification: no oral durations configured
	{BenefitCode: "064", IssueCode: "GC", DurationPaper: minutes(30)},
}
