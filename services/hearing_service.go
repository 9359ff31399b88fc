package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
	"tribunal_hearings_go/services/listing"
)

var (
	ErrInvalidHearingState       = errors.New("unsupported hearing state")
	ErrNoHearingToUpdate         = errors.New("case has no hearing to update")
	ErrNoHearingToCancel         = errors.New("case has no hearing to cancel")
	ErrDurationNotMultipleOfFive = errors.New("hearing duration must be a multiple of five minutes")
)

// Newly requested hearings always start at version one; the scheduling
// service owns the number from then on.
const initialVersionNumber = 1

// ProcessHearingRequest is the lifecycle entry point: it loads the case,
// builds the payload the requested action needs and records the scheduling
// service's answer on the case.
func ProcessHearingRequest(ctx context.Context, db *gorm.DB, ref refdata.Service, client SchedulingClient, req models.HearingRequest) (*models.CaseRecord, error) {
	if !models.IsValidHearingState(req.HearingState) {
		return nil, ErrInvalidHearingState
	}

	record, err := GetCaseRecord(db, req.CaseID)
	if err != nil {
		return nil, err
	}

	switch req.HearingState {
	case models.HearingStateCreate:
		return createHearing(ctx, db, ref, client, record, models.HearingStateCreate)
	case models.HearingStateAdjournCreate:
		// The adjournment decision drives the mapping for the re-listed
		// hearing from here on
		record.Data.Adjournment.AdjournmentInProgress = models.Yes
		return createHearing(ctx, db, ref, client, record, models.HearingStateAdjournCreate)
	case models.HearingStateUpdate:
		return updateHearing(ctx, db, ref, client, record)
	case models.HearingStateCancel:
		return cancelHearing(ctx, db, client, record, req.CancellationReason)
	}
	return nil, ErrInvalidHearingState
}

func createHearing(ctx context.Context, db *gorm.DB, ref refdata.Service, client SchedulingClient, record *models.CaseRecord, state models.HearingState) (*models.CaseRecord, error) {
	updated, err := listing.WithDefaultListingValues(&record.Data, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to compute default listing values for case %s: %w", record.CaseID, err)
	}
	record.Data = *updated

	payload, err := listing.BuildHearingRequestPayload(&record.Data, ref, initialVersionNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to build hearing request for case %s: %w", record.CaseID, err)
	}

	resp, err := client.CreateHearing(ctx, payload)
	if err != nil {
		return nil, err
	}

	record.HearingID = &resp.HearingRequestID
	record.HearingVersion = initialVersionNumber
	record.HearingState = string(state)
	if err := UpdateCaseRecord(db, record); err != nil {
		return nil, err
	}

	log.Printf("Hearing %s requested for case %s", resp.HearingRequestID, record.CaseID)
	return record, nil
}

func updateHearing(ctx context.Context, db *gorm.DB, ref refdata.Service, client SchedulingClient, record *models.CaseRecord) (*models.CaseRecord, error) {
	if record.HearingID == nil {
		return nil, ErrNoHearingToUpdate
	}

	payload, err := listing.BuildAmendPayload(&record.Data, ref, record.HearingVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to build amendment for case %s: %w", record.CaseID, err)
	}
	if payload.HearingDetails.Duration%5 != 0 {
		return nil, ErrDurationNotMultipleOfFive
	}

	resp, err := client.UpdateHearing(ctx, *record.HearingID, payload)
	if err != nil {
		return nil, err
	}

	if resp.VersionNumber > 0 {
		record.HearingVersion = resp.VersionNumber
	} else {
		record.HearingVersion++
	}
	record.HearingState = string(models.HearingStateUpdate)
	if err := UpdateCaseRecord(db, record); err != nil {
		return nil, err
	}

	log.Printf("Hearing %s amended for case %s (version %d)", *record.HearingID, record.CaseID, record.HearingVersion)
	return record, nil
}

func cancelHearing(ctx context.Context, db *gorm.DB, client SchedulingClient, record *models.CaseRecord, reason models.CancellationReason) (*models.CaseRecord, error) {
	if record.HearingID == nil {
		return nil, ErrNoHearingToCancel
	}

	payload := listing.BuildCancelPayload(reason)
	if _, err := client.CancelHearing(ctx, *record.HearingID, payload); err != nil {
		return nil, err
	}

	record.HearingState = string(models.HearingStateCancel)
	if err := UpdateCaseRecord(db, record); err != nil {
		return nil, err
	}

	log.Printf("Hearing %s cancelled for case %s", *record.HearingID, record.CaseID)
	return record, nil
}

// ServiceHearingValues builds the read-only projection for a stored case
func ServiceHearingValues(db *gorm.DB, ref refdata.Service, caseID string) (*models.ServiceHearingValues, error) {
	record, err := GetCaseRecord(db, caseID)
	if err != nil {
		return nil, err
	}
	return listing.BuildServiceHearingValues(&record.Data, ref)
}
