package listing

import (
	"time"

	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// Days to wait before a hearing can be listed
const (
	daysAfterPostponement = 14
	daysAfterDwpResponse  = 31
	daysToListUrgent      = 1
	daysToListFallback    = 1
)

const dateFormat = "2006-01-02"

// Window builds the hearing window. A live override window is returned
// verbatim; otherwise the range start is computed from the case's state and
// the remaining fields stay empty. A window with nothing in it is nil, not an
// empty object.
func Window(c *models.CaseData, ref refdata.Service) *models.HearingWindow {
	if override := liveOverrideFields(c); !override.HearingWindow.IsAllNull() {
		return formatWindow(override.HearingWindow)
	}
	start := windowStart(c, ref, time.Now())
	if start == nil {
		return nil
	}
	formatted := start.Format(dateFormat)
	return &models.HearingWindow{DateRangeStart: &formatted}
}

// windowStart computes the earliest listable date. A "date to be fixed"
// adjournment produces no window at all.
func windowStart(c *models.CaseData, ref refdata.Service, now time.Time) *time.Time {
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() {
		switch c.Adjournment.NextHearingDateType {
		case models.NextHearingDateToBeFixed:
			return nil
		case models.NextHearingDateFirstAvailableAfter:
			if after := c.Adjournment.NextHearingFirstAvailableDateAfterDate; after != nil {
				start := after.AddDate(0, 0, 1)
				return &start
			}
		}
	}

	if c.Postponement.UnprocessedPostponement.IsYes() {
		start := now.AddDate(0, 0, daysAfterPostponement)
		return &start
	}
	if c.DwpResponseDate != nil {
		days := daysAfterDwpResponse
		if c.UrgentCase.IsYes() {
			days = daysToListUrgent
		}
		start := c.DwpResponseDate.AddDate(0, 0, days)
		return &start
	}
	start := now.AddDate(0, 0, daysToListFallback)
	return &start
}

// formatWindow converts a case-store window into the payload's string dates
func formatWindow(w *models.CaseHearingWindow) *models.HearingWindow {
	out := &models.HearingWindow{}
	if w.FirstDateTimeMustBe != nil {
		v := w.FirstDateTimeMustBe.Format(time.RFC3339)
		out.FirstDateTimeMustBe = &v
	}
	if w.DateRangeStart != nil {
		v := w.DateRangeStart.Format(dateFormat)
		out.DateRangeStart = &v
	}
	if w.DateRangeEnd != nil {
		v := w.DateRangeEnd.Format(dateFormat)
		out.DateRangeEnd = &v
	}
	return out
}
