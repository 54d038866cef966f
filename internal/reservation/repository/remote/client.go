package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/response"
)

// Client is the HTTP wrapper for the booking service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new booking service client. timeout <= 0 means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateReservation creates a reservation via POST /api/reservations.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create reservation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reservations", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create reservation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call booking create API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking create response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		var e errorBody
		_ = json.Unmarshal(raw, &e)
		return nil, &reservation.ConflictError{Message: e.Message, Details: e.Details}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &reservation.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	// The booking server answers with the bare row; this service answers inside a data envelope.
	var created struct {
		Reservation
		Data *Reservation `json:"data"`
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("failed to decode booking create response: %w", err)
		}
	}
	if created.Data != nil {
		return created.Data, nil
	}
	return &created.Reservation, nil
}

// ListReservations lists the reservations of one user via GET /api/reservations/user/{userId}.
func (c *Client) ListReservations(ctx context.Context, userID string) ([]Reservation, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list reservations request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call booking list API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking list response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &reservation.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return decodeList(raw)
}

// decodeList reads a bare array (booking server) or a data envelope (this service).
func decodeList(raw []byte) ([]Reservation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data []Reservation `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode booking list response: %w", err)
		}
		return envelope.Data, nil
	}

	var list []Reservation
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("failed to decode booking list response: %w", err)
	}
	return list, nil
}

// DeleteReservations removes every reservation of a user via DELETE /api/reservations/user/{userId}.
func (c *Client) DeleteReservations(ctx context.Context, userID string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.userURL(userID), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete reservations request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call booking delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &reservation.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

func (c *Client) userURL(userID string) string {
	return fmt.Sprintf("%s/api/reservations/user/%s", c.baseURL, url.PathEscape(userID))
}

// ---- Request/Response types scoped to this package ----

// CreateReservationRequest is the body for POST /api/reservations.
type CreateReservationRequest struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Purpose string `json:"purpose"`
}

// Reservation is the booking service reservation object.
type Reservation struct {
	ID        flexID            `json:"id"`
	UserID    flexID            `json:"userId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Purpose   string            `json:"purpose"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"createdAt"`
	UpdatedAt response.DateTime `json:"updatedAt"`
}

type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// flexID accepts both numeric (auto-increment) and string ids.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	*f = flexID(n.String())
	return nil
}
