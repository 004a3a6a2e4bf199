// Package api is the client for the remote HR time-tracking service. It is
// the only place that knows the wire format; everything above it works with
// the model types.
package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dori/clockin/internal/config"
	"github.com/dori/clockin/internal/model"
)

const apiHost = "bamboohr.com"

// requestTimeout bounds every remote call. The interactive loop has no other
// cancellation path, so a hung call must eventually fail instead of freezing
// the UI.
const requestTimeout = 30 * time.Second

// ErrorKind coarsely classifies request failures for the controllers.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindAuth
	KindValidation
)

// APIError is a failed service call.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("service error (%d): %s", e.Status, e.Message)
	}
	return e.Message
}

func classify(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindNetwork
	}
}

// Client is an authenticated HR service client for one employee.
type Client struct {
	creds      *config.Credentials
	httpClient *http.Client
	employeeID string

	// base overrides the derived service URL in tests.
	base string
}

// New creates a client from stored credentials.
func New(creds *config.Credentials) *Client {
	return &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// EmployeeID returns the employee ID captured by GetEmployee, empty before.
func (c *Client) EmployeeID() string {
	return c.employeeID
}

func (c *Client) baseURL() string {
	if c.base != "" {
		return c.base
	}
	return fmt.Sprintf("https://%s.%s", c.creds.CompanyDomain, apiHost)
}

// ensureValidToken refreshes an expired OAuth access token and persists the
// new pair. Basic credentials never expire.
func (c *Client) ensureValidToken(ctx context.Context) error {
	if c.creds.Type != config.CredentialOAuth || !c.creds.TokenExpired(time.Now()) {
		return nil
	}
	refreshed, err := refreshCredentials(ctx, c.creds)
	if err != nil {
		return err
	}
	c.creds = refreshed
	// Best-effort save; an unwritable config dir should not fail the call.
	_ = config.SaveCredentials(refreshed)
	return nil
}

func (c *Client) authHeader() string {
	if c.creds.Type == config.CredentialBasic {
		encoded := base64.StdEncoding.EncodeToString([]byte(c.creds.APIKey + ":x"))
		return "Basic " + encoded
	}
	return "Bearer " + c.creds.AccessToken
}

// do issues one request and decodes the JSON response into out (ignored when
// out is nil).
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	if err := c.ensureValidToken(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: fmt.Sprintf("reading response: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Kind: classify(resp.StatusCode), Status: resp.StatusCode, Message: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// GetEmployee fetches the employee profile ("0" means the key's owner) and
// remembers its ID for the timesheet calls.
func (c *Client) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	if id == "" {
		id = "0"
	}
	fields := "id,firstName,lastName,displayName,jobTitle,workEmail,department"
	var emp model.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/employees/%s?fields=%s", id, fields), nil, &emp); err != nil {
		return nil, err
	}
	if emp.ID != "" {
		c.employeeID = emp.ID
	}
	return &emp, nil
}

func (c *Client) requireEmployee() error {
	if c.employeeID == "" {
		return &APIError{Kind: KindValidation, Message: "employee ID not set; fetch the employee first"}
	}
	return nil
}

// GetTimesheetEntries fetches entries in [start, end] (ISO dates, inclusive).
func (c *Client) GetTimesheetEntries(ctx context.Context, start, end string) ([]model.TimesheetEntry, error) {
	if err := c.requireEmployee(); err != nil {
		return nil, err
	}
	var entries []model.TimesheetEntry
	endpoint := fmt.Sprintf("/api/v1/time_tracking/timesheet_entries?start=%s&end=%s&employeeIds=%s", start, end, c.employeeID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetTimeOffRequests fetches approved time-off requests overlapping the
// range. The service returns a keyed object rather than an array.
func (c *Client) GetTimeOffRequests(ctx context.Context, start, end string) ([]model.TimeOffRequest, error) {
	if err := c.requireEmployee(); err != nil {
		return nil, err
	}
	var keyed map[string]model.TimeOffRequest
	endpoint := fmt.Sprintf("/api/v1/time_off/requests?start=%s&end=%s&employeeId=%s&status=approved", start, end, c.employeeID)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &keyed); err != nil {
		return nil, err
	}
	requests := make([]model.TimeOffRequest, 0, len(keyed))
	for _, r := range keyed {
		requests = append(requests, r)
	}
	return requests, nil
}

// whosOutItem is one row of the company-wide absence feed.
type whosOutItem struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// GetHolidays fetches company holidays in the range from the who's-out feed.
func (c *Client) GetHolidays(ctx context.Context, start, end string) ([]model.Holiday, error) {
	var items []whosOutItem
	endpoint := fmt.Sprintf("/api/v1/time_off/whos_out?start=%s&end=%s", start, end)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, err
	}
	var holidays []model.Holiday
	for _, item := range items {
		if item.Type != "holiday" {
			continue
		}
		h := model.Holiday{Name: item.Name, Start: item.Start, End: item.End}
		if h.Name == "" {
			h.Name = "Holiday"
		}
		if h.Start == "" {
			h.Start = start
		}
		if h.End == "" {
			h.End = h.Start
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

type clockEntryPayload struct {
	EmployeeID int    `json:"employeeId"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// StoreClockEntry records one contiguous span for a date. The operation is
// idempotent per (date, half-of-day) slot on the service side; the caller
// always issues it twice per day commit, morning then afternoon.
func (c *Client) StoreClockEntry(ctx context.Context, date, start, end string) error {
	if err := c.requireEmployee(); err != nil {
		return err
	}
	var employeeID int
	fmt.Sscanf(c.employeeID, "%d", &employeeID)
	payload := map[string][]clockEntryPayload{
		"entries": {{EmployeeID: employeeID, Date: date, Start: start, End: end}},
	}
	return c.do(ctx, http.MethodPost, "/api/v1/time_tracking/clock_entries/store", payload, nil)
}

type hourEntryPayload struct {
	EmployeeID int     `json:"employeeId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Note       string  `json:"note,omitempty"`
}

// StoreHourEntry records an hour-quantity entry for a date.
func (c *Client) StoreHourEntry(ctx context.Context, date string, hours float64, note string) error {
	if err := c.requireEmployee(); err != nil {
		return err
	}
	var employeeID int
	fmt.Sscanf(c.employeeID, "%d", &employeeID)
	payload := map[string][]hourEntryPayload{
		"hours": {{EmployeeID: employeeID, Date: date, Hours: hours, Note: note}},
	}
	return c.do(ctx, http.MethodPost, "/api/v1/time_tracking/hour_entries/store", payload, nil)
}
