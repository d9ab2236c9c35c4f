package icafe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cafe-dashboard/internal/models"
	"cafe-dashboard/internal/shared/loggers"
)

// envelopeOKCode is the success code inside the upstream response envelope,
// independent of the HTTP status.
const envelopeOKCode = 200

// envelope is the common iCafeCloud response wrapper.
type envelope struct {
	Code    models.FlexInt  `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// hasData reports whether the nested data field is present and non-null.
func (e *envelope) hasData() bool {
	trimmed := strings.TrimSpace(string(e.Data))
	return trimmed != "" && trimmed != "null"
}

// Client issues authenticated requests against the iCafeCloud API for a
// single cafe. Every call is one synchronous request/response; retries, where
// appropriate, belong to higher layers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cafeID     string
	authToken  string
	logger     loggers.Logger
}

func NewClient(baseURL, cafeID, authToken string, requestTimeout time.Duration, logger loggers.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cafeID:     cafeID,
		authToken:  authToken,
		logger:     logger,
	}
}

// fetchPage performs an authenticated GET for one resource of this cafe and
// decodes the response envelope. Transport failures and 5xx map to
// ErrUpstreamUnavailable, 404 to ErrUpstreamNotFound, and an undecodable body
// to ErrUpstreamMalformed.
func (c *Client) fetchPage(ctx context.Context, resource string, query url.Values) (*envelope, error) {
	reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, c.cafeID, resource)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrUpstreamUnavailable, resource, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeUnavailable).Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, resource, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeNotFound).Inc()
		return nil, fmt.Errorf("%w: %s", ErrUpstreamNotFound, resource)
	case resp.StatusCode >= 500:
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeUnavailable).Inc()
		c.logger.Error().
			Str(loggers.FieldResource, resource).
			Int(loggers.FieldHttpStatus, resp.StatusCode).
			Msg("upstream server error")
		return nil, fmt.Errorf("%w: %s: status %d", ErrUpstreamUnavailable, resource, resp.StatusCode)
	case resp.StatusCode >= 400:
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeMalformed).Inc()
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrUpstreamMalformed, resource, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeUnavailable).Inc()
		return nil, fmt.Errorf("%w: reading %s response: %w", ErrUpstreamUnavailable, resource, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeMalformed).Inc()
		return nil, fmt.Errorf("%w: decoding %s envelope: %w", ErrUpstreamMalformed, resource, err)
	}

	metricUpstreamRequestsTotal.WithLabelValues(resource, outcomeOK).Inc()
	return &env, nil
}

// decodeData unmarshals the nested data field into out, mapping a missing
// field or shape mismatch to ErrUpstreamMalformed.
func decodeData(env *envelope, resource string, out any) error {
	if !env.hasData() {
		return fmt.Errorf("%w: %s envelope has no data field", ErrUpstreamMalformed, resource)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decoding %s data: %w", ErrUpstreamMalformed, resource, err)
	}
	return nil
}
