package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_hearings_go/db"
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/services"
)

// UpsertCaseHandler stores a case aggregate, creating or replacing the record
func UpsertCaseHandler(c echo.Context) error {
	data := new(models.CaseData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if data.CaseID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "caseId is required",
		})
	}

	record, err := services.SaveCaseData(db.DB, *data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save case",
		})
	}
	return c.JSON(http.StatusOK, record)
}

// GetCaseHandler returns a stored case by its tribunal case id
func GetCaseHandler(c echo.Context) error {
	record, err := services.GetCaseRecord(db.DB, c.Param("id"))
	if err == services.ErrCaseNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Case not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch case",
		})
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteCaseHandler removes a stored case
func DeleteCaseHandler(c echo.Context) error {
	err := services.DeleteCaseRecord(db.DB, c.Param("id"))
	if err == services.ErrCaseNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Case not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete case",
		})
	}
	return c.NoContent(http.StatusNoContent)
}
