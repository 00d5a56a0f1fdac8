package dvla

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

var (
	// ErrNotConfigured is reported when no API key is available; no network
	// call is made in that case.
	ErrNotConfigured = errors.New("dvla client is not configured")

	// ErrNotFound covers upstream 400 and 404: the plate has no record.
	ErrNotFound = errors.New("vehicle not found")
)

// UpstreamError is any other non-200 answer from the enquiry service. The
// status code is passed through to the caller.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("DVLA error: status %d: %s", e.Status, e.Message)
}

// maxErrorSnippet bounds how much of an upstream error body gets surfaced.
const maxErrorSnippet = 200

// VehicleRecord is the subset of the enquiry response this service reads.
// The upstream object carries many more fields; they are decoded away.
type VehicleRecord struct {
	Make              *string `json:"make"`
	Model             *string `json:"model"`
	Colour            *string `json:"colour"`
	YearOfManufacture *int    `json:"yearOfManufacture"`
	FuelType          *string `json:"fuelType"`
}

type lookupPayload struct {
	RegistrationNumber string `json:"registrationNumber"`
}

// Client talks to the DVLA Vehicle Enquiry Service. The underlying
// http.Client is shared across requests and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	log        zerolog.Logger
}

func NewClient(httpClient *http.Client, url, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
		apiKey:     apiKey,
		log:        log,
	}
}

// Lookup queries the enquiry service for a pre-normalized plate. Exactly one
// network call is made; there are no retries.
func (c *Client) Lookup(ctx context.Context, plate string) (*VehicleRecord, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(lookupPayload{RegistrationNumber: plate})
	if err != nil {
		return nil, fmt.Errorf("marshal lookup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call DVLA: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var record VehicleRecord
		if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
			return nil, fmt.Errorf("decode DVLA response: %w", err)
		}
		return &record, nil

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("plate", plate).
			Msg("DVLA reported no record for plate")
		return nil, ErrNotFound

	default:
		snippet := readSnippet(resp.Body)
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("plate", plate).
			Str("body", snippet).
			Msg("DVLA returned unexpected status")
		return nil, &UpstreamError{Status: resp.StatusCode, Message: snippet}
	}
}

func readSnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorSnippet))
	if err != nil {
		return ""
	}
	return string(data)
}
