package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the upstream CRM API host
	DefaultBaseURL = "https://services.leadconnectorhq.com"

	// APIVersion is the fixed version header the upstream API requires
	APIVersion = "2021-07-28"
)

// API is the upstream CRM surface the services depend on. Implementations
// carry no retry or caching; a transport failure is the caller's problem.
type API interface {
	ListLocations(ctx context.Context, token string) (*Result, error)
	GetLocation(ctx context.Context, token, locationID string) (*Result, error)
	ListUsers(ctx context.Context, token string) (*Result, error)
	ListTags(ctx context.Context, token, locationID string) (*Result, error)
	CreateTag(ctx context.Context, token, locationID, name string) (*Result, error)
	ListCustomFields(ctx context.Context, token, locationID string) (*Result, error)
	ListPipelines(ctx context.Context, token, locationID string) (*Result, error)
	SearchContacts(ctx context.Context, token, locationID string, limit int) (*Result, error)
	SearchOpportunities(ctx context.Context, token, locationID string, limit int) (*Result, error)
}

// Result is a raw upstream response. Status is preserved so callers can
// treat selected non-2xx codes (the validate-location 404) as data rather
// than failure.
type Result struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream call succeeded
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns a StatusError for non-2xx results, nil otherwise
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &StatusError{StatusCode: r.StatusCode, Body: string(r.Body)}
}

// StatusError is an upstream non-2xx response surfaced as an error
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed: %d %s - %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Client calls the CRM REST API over plain HTTP with a caller-supplied
// bearer token per request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a CRM API client. An empty baseURL selects the
// production host; a nil httpClient selects http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListLocations fetches all locations visible to the token
func (c *Client) ListLocations(ctx context.Context, token string) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/locations/", token, nil)
}

// GetLocation fetches a single location by id
func (c *Client) GetLocation(ctx context.Context, token, locationID string) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/locations/"+url.PathEscape(locationID), token, nil)
}

// ListUsers fetches the users visible to the token
func (c *Client) ListUsers(ctx context.Context, token string) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/users/", token, nil)
}

// ListTags fetches the tags of a location
func (c *Client) ListTags(ctx context.Context, token, locationID string) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/locations/"+url.PathEscape(locationID)+"/tags", token, nil)
}

// CreateTag creates a tag in a location
func (c *Client) CreateTag(ctx context.Context, token, locationID, name string) (*Result, error) {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPost, "/locations/"+url.PathEscape(locationID)+"/tags", token, body)
}

// ListCustomFields fetches the custom field definitions of a location
func (c *Client) ListCustomFields(ctx context.Context, token, locationID string) (*Result, error) {
	return c.do(ctx, http.MethodGet, "/locations/"+url.PathEscape(locationID)+"/customFields", token, nil)
}

// ListPipelines fetches the opportunity pipelines of a location
func (c *Client) ListPipelines(ctx context.Context, token, locationID string) (*Result, error) {
	query := url.Values{"locationId": {locationID}}
	return c.do(ctx, http.MethodGet, "/opportunities/pipelines?"+query.Encode(), token, nil)
}

// SearchContacts fetches up to limit contacts of a location
func (c *Client) SearchContacts(ctx context.Context, token, locationID string, limit int) (*Result, error) {
	query := url.Values{"locationId": {locationID}, "limit": {strconv.Itoa(limit)}}
	return c.do(ctx, http.MethodGet, "/contacts/?"+query.Encode(), token, nil)
}

// SearchOpportunities fetches up to limit opportunities of a location.
// This endpoint uses snake_case for the location parameter, unlike the rest
// of the API.
func (c *Client) SearchOpportunities(ctx context.Context, token, locationID string, limit int) (*Result, error) {
	query := url.Values{"location_id": {locationID}, "limit": {strconv.Itoa(limit)}}
	return c.do(ctx, http.MethodGet, "/opportunities/search?"+query.Encode(), token, nil)
}

// do issues one upstream request. The returned error covers request
// construction and transport only; non-2xx responses come back as a Result
// for the caller to classify.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (*Result, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	// Tokens are deliberately absent from log fields
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("Upstream CRM call")

	return &Result{StatusCode: resp.StatusCode, Body: respBody}, nil
}
