package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tribunal_hearings_go/models"
)

// HearingResponse is the scheduling service's acknowledgement of a hearing
// request
type HearingResponse struct {
	HearingRequestID string `json:"hearingRequestID"`
	Status           string `json:"status"`
	VersionNumber    int    `json:"versionNumber"`
}

// SchedulingClient is the outbound contract with the hearings scheduling
// service
type SchedulingClient interface {
	CreateHearing(ctx context.Context, payload *models.HearingRequestPayload) (*HearingResponse, error)
	UpdateHearing(ctx context.Context, hearingID string, payload *models.HearingRequestPayload) (*HearingResponse, error)
	CancelHearing(ctx context.Context, hearingID string, payload *models.HearingCancelRequestPayload) (*HearingResponse, error)
}

// HmcClient talks to the scheduling service over HTTP
type HmcClient struct {
	baseURL string
	client  *http.Client
}

// NewHmcClient builds a client against the given base URL
func NewHmcClient(baseURL string) *HmcClient {
	return &HmcClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HmcClient) CreateHearing(ctx context.Context, payload *models.HearingRequestPayload) (*HearingResponse, error) {
	return h.send(ctx, http.MethodPost, h.baseURL+"/hearing", payload)
}

func (h *HmcClient) UpdateHearing(ctx context.Context, hearingID string, payload *models.HearingRequestPayload) (*HearingResponse, error) {
	return h.send(ctx, http.MethodPut, h.baseURL+"/hearing/"+hearingID, payload)
}

func (h *HmcClient) CancelHearing(ctx context.Context, hearingID string, payload *models.HearingCancelRequestPayload) (*HearingResponse, error) {
	return h.send(ctx, http.MethodDelete, h.baseURL+"/hearing/"+hearingID, payload)
}

func (h *HmcClient) send(ctx context.Context, method, url string, payload any) (*HearingResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode hearing request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build hearing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call scheduling service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scheduling service returned status %d", resp.StatusCode)
	}

	var result HearingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode scheduling response: %w", err)
	}
	return &result, nil
}
