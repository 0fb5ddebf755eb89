package innergy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/innergy-tools/workorders/internal/model"
)

const (
	// DefaultBaseURL is the production Innergy API host.
	DefaultBaseURL = "https://app.innergy.com"

	// workOrdersPath is the single endpoint this client ever calls.
	workOrdersPath = "/api/projectWorkOrders"

	// DefaultTimeout bounds the whole request, including reading the
	// body. Work-order exports can be large, hence the generous limit.
	DefaultTimeout = 120 * time.Second
)

// Options configures a Client. The zero value is usable: every field has
// a default.
type Options struct {
	// BaseURL overrides the API host. Defaults to DefaultBaseURL.
	// Primarily useful for pointing the client at a test server.
	BaseURL string

	// Timeout bounds the request and body read. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the underlying transport. When set, its own
	// Timeout is respected and Options.Timeout is ignored.
	HTTPClient *http.Client

	// Logger receives request/response diagnostics. Defaults to a
	// disabled logger.
	Logger zerolog.Logger
}

// Client issues authenticated requests to the Innergy API.
//
// Usage:
//
//	c := innergy.NewClient(innergy.Options{})
//	page, err := c.FetchWorkOrders(ctx, apiKey)
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// WorkOrderPage is the top-level shape of the projectWorkOrders response.
// Items are kept opaque; an absent or null Items field decodes to nil and
// is treated as an empty page by callers.
type WorkOrderPage struct {
	Items []json.RawMessage `json:"Items"`
}

// NewClient creates a Client, filling in defaults for any unset option.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// FetchWorkOrders performs one synchronous GET of the projectWorkOrders
// endpoint and returns the parsed page.
//
// Failure classification:
//   - non-2xx status → KindHTTPStatus carrying the numeric code
//   - deadline exceeded → KindTimeout
//   - any other transport failure → KindNetwork
//   - malformed response body → KindParse
func (c *Client) FetchWorkOrders(ctx context.Context, apiKey string) (*WorkOrderPage, error) {
	url := c.baseURL + workOrdersPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, model.WrapRunError(model.KindUnknown, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Api-Key", apiKey)

	c.logger.Debug().Str("url", url).Msg("fetching work orders")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().Int("status", resp.StatusCode).Msg("non-2xx response")
		return nil, model.NewHTTPStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The client timeout also covers the body read, so a slow or
		// reset stream surfaces here rather than from Do.
		return nil, c.classifyTransportError(err)
	}

	var page WorkOrderPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, model.WrapRunError(model.KindParse, "malformed JSON in API response", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int("items", len(page.Items)).
		Msg("work orders received")

	return &page, nil
}

// classifyTransportError maps a lower-level transport failure onto the
// RunError taxonomy: timeouts become KindTimeout, everything else becomes
// KindNetwork with a descriptive message.
func (c *Client) classifyTransportError(err error) *model.RunError {
	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	if timedOut {
		return model.WrapRunError(model.KindTimeout,
			fmt.Sprintf("request timed out after %s", c.timeout), err)
	}
	return model.WrapRunError(model.KindNetwork, "request failed", err)
}
