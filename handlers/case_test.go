package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tribunal_hearings_go/db"
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/services"
)

func TestUpsertCaseHandler(t *testing.T) {
	setupTestDB(t)

	t.Run("stores a new case", func(t *testing.T) {
		body := strings.NewReader(`{"caseId":"100","benefitCode":"002","issueCode":"DD"}`)
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", body)

		err := UpsertCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		record, err := services.GetCaseRecord(db.DB, "100")
		assert.NoError(t, err)
		assert.Equal(t, "002", record.Data.BenefitCode)
	})

	t.Run("replaces an existing case", func(t *testing.T) {
		seedCase(t, "200")

		body := strings.NewReader(`{"caseId":"200","benefitCode":"003","issueCode":"LE"}`)
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", body)

		err := UpsertCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		record, err := services.GetCaseRecord(db.DB, "200")
		assert.NoError(t, err)
		assert.Equal(t, "003", record.Data.BenefitCode)
	})

	t.Run("requires a case id", func(t *testing.T) {
		body := strings.NewReader(`{"benefitCode":"002"}`)
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", body)

		err := UpsertCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCaseHandler(t *testing.T) {
	setupTestDB(t)
	seedCase(t, "100")

	t.Run("returns a stored case", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases/100", nil)
		c.SetParamNames("id")
		c.SetParamValues("100")

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var record models.CaseRecord
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
		assert.Equal(t, "100", record.Data.CaseID)
	})

	t.Run("unknown case", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := GetCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteCaseHandler(t *testing.T) {
	setupTestDB(t)
	seedCase(t, "100")

	t.Run("deletes a stored case", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/api/cases/100", nil)
		c.SetParamNames("id")
		c.SetParamValues("100")

		err := DeleteCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, err = services.GetCaseRecord(db.DB, "100")
		assert.ErrorIs(t, err, services.ErrCaseNotFound)
	})

	t.Run("unknown case", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/api/cases/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := DeleteCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
