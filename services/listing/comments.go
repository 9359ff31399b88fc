package listing

import (
	"fmt"
	"strings"

	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// Adjournment listing instructions appended to the comments
const (
	commentFirstOnSession = "List first on the session"
	commentProvideTime    = "Provide time: %s"
)

// ListingComments collects the free-text hearing comments from every party,
// each under a role and name header, plus any listing instructions from an
// in-progress adjournment
func ListingComments(c *models.CaseData, ref refdata.Service) string {
	var comments []string

	if options := c.HearingOptions(); options != nil && options.Other != "" {
		name := ""
		if c.Appeal != nil && c.Appeal.Appellant != nil {
			name = c.Appeal.Appellant.Name.FullNameNoTitle()
		}
		comments = append(comments, formatComment("Appellant", name, options.Other))
	}

	for i := range c.OtherParties {
		op := &c.OtherParties[i]
		if op.HearingOptions != nil && op.HearingOptions.Other != "" {
			comments = append(comments, formatComment("Other party", op.Name.FullNameNoTitle(), op.HearingOptions.Other))
		}
	}

	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() && c.Adjournment.Time != nil {
		if len(c.Adjournment.Time.AdjournCaseNextHearingFirstOnSession) > 0 {
			comments = append(comments, commentFirstOnSession)
		}
		if t := c.Adjournment.Time.AdjournCaseNextHearingSpecificTime; t != "" {
			comments = append(comments, fmt.Sprintf(commentProvideTime, t))
		}
	}

	return strings.Join(comments, "\n\n")
}

func formatComment(role, name, comment string) string {
	return fmt.Sprintf("%s - %s:\n%s", role, name, comment)
}
