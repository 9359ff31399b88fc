package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tribunal_hearings_go/db"
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
	"tribunal_hearings_go/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests from each other
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.CaseRecord{})
	assert.NoError(t, err)

	db.DB = testDB
	RefData = refdata.NewInMemory("BBA3", "https://manage-case.example.net", true)
	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

type stubScheduler struct {
	response services.HearingResponse
	err      error
}

func (s *stubScheduler) CreateHearing(ctx context.Context, payload *models.HearingRequestPayload) (*services.HearingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.response, nil
}

func (s *stubScheduler) UpdateHearing(ctx context.Context, hearingID string, payload *models.HearingRequestPayload) (*services.HearingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.response, nil
}

func (s *stubScheduler) CancelHearing(ctx context.Context, hearingID string, payload *models.HearingCancelRequestPayload) (*services.HearingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.response, nil
}

func seedCase(t *testing.T, caseID string) *models.CaseRecord {
	created := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	responded := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	record, err := services.SaveCaseData(db.DB, models.CaseData{
		CaseID:      caseID,
		CaseCreated: &created,
		CaseAccessManagementFields: models.CaseAccessManagementFields{
			CaseNameHmctsInternal: "Joe Bloggs",
			CaseNamePublic:        "Joe Bloggs",
		},
		BenefitCode:     "002",
		IssueCode:       "DD",
		DwpResponseDate: &responded,
		Appeal: &models.Appeal{
			BenefitType:    &models.BenefitType{Code: "PIP"},
			HearingOptions: &models.HearingOptions{WantsToAttend: models.Yes},
			HearingSubtype: &models.HearingSubtype{WantsHearingTypeFaceToFace: models.Yes},
			Appellant: &models.Appellant{
				Entity: models.Entity{
					ID:   "appellant1",
					Name: models.Name{Title: "Mr", FirstName: "Joe", LastName: "Bloggs"},
				},
			},
		},
		RegionalProcessingCenter: &models.RegionalProcessingCenter{
			Name:     "SSCS Birmingham",
			Postcode: "B16 6FR",
		},
		ProcessingVenue: "Coventry",
		CaseManagementLocation: &models.CaseManagementLocation{
			BaseLocation: "231596",
			Region:       "2",
		},
	})
	assert.NoError(t, err)
	return record
}
