package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tribunal_hearings_go/db"
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
	"tribunal_hearings_go/services"
	"tribunal_hearings_go/services/listing"
)

// Collaborators wired in by main at startup
var (
	RefData   refdata.Service
	Scheduler services.SchedulingClient
)

// RequestHearingHandler asks the scheduling service to list a hearing for the
// case. The body may set hearingState to adjournCreateHearing to re-list
// after an adjournment; it defaults to a plain creation.
func RequestHearingHandler(c echo.Context) error {
	req := models.HearingRequest{HearingState: models.HearingStateCreate}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	req.CaseID = c.Param("id")
	if req.HearingState != models.HearingStateCreate && req.HearingState != models.HearingStateAdjournCreate {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "hearingState must be createHearing or adjournCreateHearing",
		})
	}
	return processHearingRequest(c, req)
}

// AmendHearingHandler pushes the case's current state to the existing hearing
func AmendHearingHandler(c echo.Context) error {
	return processHearingRequest(c, models.HearingRequest{
		CaseID:       c.Param("id"),
		HearingState: models.HearingStateUpdate,
	})
}

// CancelHearingHandler cancels the case's hearing, with an optional reason in
// the body
func CancelHearingHandler(c echo.Context) error {
	req := models.HearingRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	req.CaseID = c.Param("id")
	req.HearingState = models.HearingStateCancel
	return processHearingRequest(c, req)
}

func processHearingRequest(c echo.Context, req models.HearingRequest) error {
	record, err := services.ProcessHearingRequest(c.Request().Context(), db.DB, RefData, Scheduler, req)
	if err != nil {
		return hearingError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// ServiceHearingValuesHandler returns the read-only listing projection
func ServiceHearingValuesHandler(c echo.Context) error {
	values, err := services.ServiceHearingValues(db.DB, RefData, c.Param("id"))
	if err != nil {
		return hearingError(c, err)
	}
	return c.JSON(http.StatusOK, values)
}

// HearingsReportHandler streams the Excel listing summary
func HearingsReportHandler(c echo.Context) error {
	buf, err := services.GenerateHearingsReport(db.DB, RefData)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate report",
		})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		"attachment; filename=hearings_"+time.Now().Format("20060102_150405")+".xlsx")
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// hearingError maps service failures to response codes: unknown cases are
// 404, bad requests 400, unmappable cases 422 and scheduling faults 502
func hearingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrCaseNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Case not found"})
	case errors.Is(err, services.ErrInvalidHearingState),
		errors.Is(err, services.ErrNoHearingToUpdate),
		errors.Is(err, services.ErrNoHearingToCancel),
		errors.Is(err, services.ErrDurationNotMultipleOfFive):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var listingErr *listing.ListingError
	var mappingErr *listing.InvalidMappingError
	if errors.As(err, &listingErr) || errors.As(err, &mappingErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "Scheduling service request failed"})
}
