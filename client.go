package stlouisfed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethgrid/pester"
	"golang.org/x/time/rate"
)

// APIEndpoint is the base URL of the St. Louis Fed web services.
const APIEndpoint = "https://api.stlouisfed.org"

// ErrInvalidAPIKey is returned when the supplied key is not a 32 character
// alphanumeric string.
var ErrInvalidAPIKey = errors.New("stlouisfed: api key must be a 32 character alphanumeric string")

// UserAgent to use for API requests.
var UserAgent = fmt.Sprintf("pystlouisfed/%s (https://github.com/FirmAI-Research/pystlouisfed)", Version)

// APIError carries the error payload of a non-2xx API response.
type APIError struct {
	Status  int    `json:"error_code"`
	Message string `json:"error_message"`
}

// Error to satisfy interface.
func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("stlouisfed: HTTP %d", e.Status)
	}
	return fmt.Sprintf("stlouisfed: HTTP %d: %s", e.Status, e.Message)
}

// httpRequestDoer lets us use pester, http.DefaultClient or other HTTP
// client implementations interchangably.
type httpRequestDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// apiClient issues authenticated JSON requests against the St. Louis Fed
// API, optionally throttled by a client side rate limiter.
type apiClient struct {
	base    string
	key     string
	doer    httpRequestDoer
	limiter *rate.Limiter
	log     zerolog.Logger
}

// APIOption configures an API client.
type APIOption func(*apiClient)

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(doer httpRequestDoer) APIOption {
	return func(c *apiClient) { c.doer = doer }
}

// WithAPIURL points the client at a different base URL, e.g. a test server.
func WithAPIURL(base string) APIOption {
	return func(c *apiClient) { c.base = base }
}

// WithAPILogger sets a logger. Requests are logged at debug level.
func WithAPILogger(log zerolog.Logger) APIOption {
	return func(c *apiClient) { c.log = log }
}

// WithRateLimit throttles requests to at most maxCalls per period, measured
// on the client. The API side limit is 120 calls per minute.
func WithRateLimit(maxCalls int, period time.Duration) APIOption {
	return func(c *apiClient) {
		c.limiter = rate.NewLimiter(rate.Limit(float64(maxCalls)/period.Seconds()), maxCalls)
	}
}

func newAPIClient(key string, opts ...APIOption) (*apiClient, error) {
	if !validAPIKey(key) {
		return nil, ErrInvalidAPIKey
	}
	hc := pester.New()
	hc.Timeout = 30 * time.Second
	hc.MaxRetries = 4
	hc.Backoff = pester.ExponentialBackoff
	c := &apiClient{
		base: APIEndpoint,
		key:  key,
		doer: hc,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func validAPIKey(key string) bool {
	if len(key) != 32 {
		return false
	}
	for _, r := range key {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

// get issues a GET request against path and decodes the JSON response into
// v. The api_key and file_type parameters are added here.
func (c *apiClient) get(path string, params url.Values, v interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return err
		}
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.key)
	params.Set("file_type", "json")
	link := fmt.Sprintf("%s%s?%s", c.base, path, params.Encode())

	c.log.Debug().Str("url", link).Msg("api request")

	req, err := http.NewRequest("GET", link, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := APIError{Status: resp.StatusCode}
		b, _ := io.ReadAll(resp.Body)
		// The body may carry a structured error; keep the HTTP status
		// if it does not.
		var payload APIError
		if err := json.Unmarshal(b, &payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
