package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
)

const defaultTimeout = 10 * time.Second

// ErrConflict is returned when the backend rejects a booking because the
// requested slot was taken between availability lookup and submission.
var ErrConflict = fmt.Errorf("clinicapi: slot conflict")

// Client is a thin HTTP client for the clinic booking API. The wizard gateway
// uses it for every directory lookup, availability query and final submission.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.ClinicAPIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type pagedEnvelope struct {
	Data       json.RawMessage `json:"data"`
	TotalCount int             `json:"total_count"`
}

type availabilityData struct {
	DoctorID int64             `json:"doctor_id"`
	Date     string            `json:"date"`
	Slots    []domain.TimeSlot `json:"slots"`
}

// ListSpecializations returns active specializations for the service step.
func (c *Client) ListSpecializations(ctx context.Context) ([]domain.Specialization, error) {
	query := url.Values{}
	query.Set("active_only", "true")
	query.Set("limit", "100")

	var page pagedEnvelope
	if err := c.get(ctx, "/api/v1/specializations", query, &page); err != nil {
		return nil, err
	}

	var specializations []domain.Specialization
	if err := json.Unmarshal(page.Data, &specializations); err != nil {
		return nil, fmt.Errorf("clinicapi: decode specializations: %w", err)
	}
	return specializations, nil
}

// ListDoctors returns active doctors, optionally scoped to one specialization.
func (c *Client) ListDoctors(ctx context.Context, specializationID *int64) ([]domain.Doctor, error) {
	query := url.Values{}
	query.Set("active_only", "true")
	query.Set("limit", "100")
	if specializationID != nil {
		query.Set("specialization_id", strconv.FormatInt(*specializationID, 10))
	}

	var page pagedEnvelope
	if err := c.get(ctx, "/api/v1/doctors", query, &page); err != nil {
		return nil, err
	}

	var doctors []domain.Doctor
	if err := json.Unmarshal(page.Data, &doctors); err != nil {
		return nil, fmt.Errorf("clinicapi: decode doctors: %w", err)
	}
	return doctors, nil
}

// GetAvailability returns the slot grid for a doctor on a date.
func (c *Client) GetAvailability(ctx context.Context, doctorID int64, date string) ([]domain.TimeSlot, error) {
	query := url.Values{}
	query.Set("doctor_id", strconv.FormatInt(doctorID, 10))
	query.Set("date", date)

	var env envelope
	if err := c.get(ctx, "/api/v1/availability", query, &env); err != nil {
		return nil, err
	}

	var data availabilityData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("clinicapi: decode availability: %w", err)
	}
	return data.Slots, nil
}

// CreateAppointment submits a booking and returns the confirmation.
func (c *Client) CreateAppointment(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error) {
	body, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("clinicapi: marshal booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/appointments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("clinicapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var env envelope
	if err := c.send(req, http.StatusCreated, &env); err != nil {
		return nil, err
	}

	var confirmation domain.BookingConfirmation
	if err := json.Unmarshal(env.Data, &confirmation); err != nil {
		return nil, fmt.Errorf("clinicapi: decode confirmation: %w", err)
	}
	return &confirmation, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("clinicapi: create request: %w", err)
	}

	return c.send(req, http.StatusOK, out)
}

func (c *Client) send(req *http.Request, wantStatus int, out interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clinicapi: http request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("clinic api request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("clinicapi: read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		if resp.StatusCode == http.StatusConflict {
			return ErrConflict
		}

		var apiErr envelope
		if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return fmt.Errorf("clinicapi: status %d: %s", resp.StatusCode, apiErr.Message)
		}

		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return fmt.Errorf("clinicapi: status %d: %s", resp.StatusCode, msg)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("clinicapi: unmarshal response: %w", err)
	}

	return nil
}
