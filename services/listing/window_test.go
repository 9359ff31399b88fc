package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tribunal_hearings_go/models"
)

func TestWindowOverrideWinsVerbatim(t *testing.T) {
	ref := testRef()

	c := withOverrides(testCase(), &models.OverrideFields{
		HearingWindow: &models.CaseHearingWindow{
			DateRangeStart: datep(2026, time.September, 1),
			DateRangeEnd:   datep(2026, time.September, 30),
		},
	})

	w := Window(c, ref)
	assert.NotNil(t, w)
	assert.Equal(t, "2026-09-01", *w.DateRangeStart)
	assert.Equal(t, "2026-09-30", *w.DateRangeEnd)
	assert.Nil(t, w.FirstDateTimeMustBe)
}

func TestWindowStart(t *testing.T) {
	ref := testRef()
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

	t.Run("standard case lists a month after the department responds", func(t *testing.T) {
		c := testCase()
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-05-11", start.Format(dateFormat))
	})

	t.Run("urgent case lists the day after the department responds", func(t *testing.T) {
		c := testCase()
		c.UrgentCase = models.Yes
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-04-11", start.Format(dateFormat))
	})

	t.Run("unprocessed postponement waits a fortnight from today", func(t *testing.T) {
		c := testCase()
		c.Postponement.UnprocessedPostponement = models.Yes
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-09-12", start.Format(dateFormat))
	})

	t.Run("no response date lists from tomorrow", func(t *testing.T) {
		c := testCase()
		c.DwpResponseDate = nil
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-08-30", start.Format(dateFormat))
	})

	t.Run("date to be fixed produces no window", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress: models.Yes,
			NextHearingDateType:   models.NextHearingDateToBeFixed,
		}
		assert.Nil(t, windowStart(c, ref, now))
		assert.Nil(t, Window(c, ref))
	})

	t.Run("first available date after starts the following day", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress:                  models.Yes,
			NextHearingDateType:                    models.NextHearingDateFirstAvailableAfter,
			NextHearingFirstAvailableDateAfterDate: datep(2026, time.October, 1),
		}
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-10-02", start.Format(dateFormat))
	})

	t.Run("first available date falls back to the standard offsets", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress: models.Yes,
			NextHearingDateType:   models.NextHearingDateFirstAvailable,
		}
		start := windowStart(c, ref, now)
		assert.NotNil(t, start)
		assert.Equal(t, "2026-05-11", start.Format(dateFormat))
	})
}
