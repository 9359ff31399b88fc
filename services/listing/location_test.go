package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tribunal_hearings_go/models"
)

func locationIDs(locations []models.HearingLocation) []string {
	ids := make([]string, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.LocationID)
	}
	return ids
}

func TestLocations(t *testing.T) {
	ref := testRef()

	t.Run("processing venue widens to its multi location group", func(t *testing.T) {
		locations, err := Locations(testCase(), ref)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"231596", "787030"}, locationIDs(locations))
		for _, l := range locations {
			assert.Equal(t, models.LocationTypeCourt, l.LocationType)
		}
	})

	t.Run("ungrouped venue is a singleton", func(t *testing.T) {
		c := testCase()
		c.ProcessingVenue = "Cardiff"
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, []string{"366559"}, locationIDs(locations))
	})

	t.Run("unknown processing venue fails", func(t *testing.T) {
		c := testCase()
		c.ProcessingVenue = "Atlantis"
		_, err := Locations(c, ref)
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("override venue list wins", func(t *testing.T) {
		c := withOverrides(testCase(), &models.OverrideFields{HearingVenueEpimsIDs: []string{"455368"}})
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, []string{"455368"}, locationIDs(locations))
	})

	t.Run("paper case lists every active venue under the center", func(t *testing.T) {
		c := testCase()
		c.Appeal.HearingOptions.WantsToAttend = models.No
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"231596", "787030"}, locationIDs(locations))
	})

	t.Run("paper case outside list assist routing fails", func(t *testing.T) {
		c := testCase()
		c.Appeal.HearingOptions.WantsToAttend = models.No
		c.RegionalProcessingCenter = &models.RegionalProcessingCenter{Name: "SSCS Sutton", Postcode: "SM1 1DA"}
		_, err := Locations(c, ref)
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("paper case with no center fails", func(t *testing.T) {
		c := testCase()
		c.Appeal.HearingOptions.WantsToAttend = models.No
		c.RegionalProcessingCenter = nil
		_, err := Locations(c, ref)
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})
}

func TestAdjournmentLocations(t *testing.T) {
	ref := testRef()

	t.Run("somewhere else uses the selected venue", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress:    models.Yes,
			TypeOfNextHearing:        models.AdjournHearingFaceToFace,
			NextHearingVenue:         models.NextHearingVenueSomewhereElse,
			NextHearingVenueSelected: models.NewDynamicList("1001", "Leeds"),
		}
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, []string{"455368"}, locationIDs(locations))
	})

	t.Run("unknown selected venue fails", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress:    models.Yes,
			TypeOfNextHearing:        models.AdjournHearingFaceToFace,
			NextHearingVenue:         models.NextHearingVenueSomewhereElse,
			NextHearingVenueSelected: models.NewDynamicList("9999", "Nowhere"),
		}
		_, err := Locations(c, ref)
		var le *ListingError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("same venue keeps the processing venue", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress: models.Yes,
			TypeOfNextHearing:     models.AdjournHearingFaceToFace,
			NextHearingVenue:      models.NextHearingVenueSame,
		}
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.Equal(t, []string{"787030"}, locationIDs(locations))
	})

	t.Run("paper next hearing lists the center's venues", func(t *testing.T) {
		c := testCase()
		c.Adjournment = models.Adjournment{
			AdjournmentInProgress: models.Yes,
			TypeOfNextHearing:     models.AdjournHearingPaper,
		}
		locations, err := Locations(c, ref)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"231596", "787030"}, locationIDs(locations))
	})
}
