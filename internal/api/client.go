// Package api is the client for the backend's classes search endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidResponse  = errors.New("response is not a list of classes")
)

// maxErrorBody caps how much of a failed response is kept for the message.
const maxErrorBody = 512

// RequestError describes a failed call to the backend.
type RequestError struct {
	Op         string
	RequestID  string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		msg := fmt.Sprintf("%s (request %s): %v: %d", e.Op, e.RequestID, e.Err, e.StatusCode)
		if e.Body != "" {
			msg += " " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("%s (request %s): %v", e.Op, e.RequestID, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client talks to the classes endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for baseURL. A zero timeout means the caller's
// context is the only deadline.
func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = config.DefaultAPIURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClassesURL builds the search URL. All three parameters are always sent,
// empty ones included.
func (c *Client) ClassesURL(filters models.ClassFilters) string {
	q := url.Values{}
	q.Set("subject", filters.Subject)
	q.Set("week_day", filters.WeekDay)
	q.Set("time", filters.Time)
	return c.baseURL + config.ClassesPath + "?" + q.Encode()
}

// SearchClasses issues one GET /classes with filters and decodes the tutor
// records in the body.
func (c *Client) SearchClasses(ctx context.Context, filters models.ClassFilters) ([]models.Teacher, error) {
	requestID := uuid.NewString()
	fail := func(status int, body string, err error) error {
		return &RequestError{Op: "search classes", RequestID: requestID, StatusCode: status, Body: body, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ClassesURL(filters), nil)
	if err != nil {
		return nil, fail(0, "", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		// Surface cancellation as-is so callers can tell it from failures.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fail(0, "", ctxErr)
		}
		return nil, fail(0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(resp.StatusCode, snippet(body), ErrUnexpectedStatus)
	}

	var teachers []models.Teacher
	if err := json.Unmarshal(body, &teachers); err != nil {
		return nil, fail(resp.StatusCode, "", fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + config.TruncationSuffix
	}
	return s
}
