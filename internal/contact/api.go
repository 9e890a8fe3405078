package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// DeliveryError is a non-2xx answer from the contact API.
type DeliveryError struct {
	Status int
	// Detail is the human-readable message from the response body, if any.
	Detail string
}

func (e *DeliveryError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("contact api returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("contact api returned %d", e.Status)
}

// APISender posts submissions as JSON to the contact endpoint.
type APISender struct {
	endpoint   string
	httpClient *http.Client
}

// NewAPISender returns a sender for endpoint. timeout bounds each request.
func NewAPISender(endpoint string, timeout time.Duration) *APISender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APISender{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name identifies the delivery channel in logs and metrics.
func (s *APISender) Name() string { return "api" }

// Send posts sub once. There is no retry.
func (s *APISender) Send(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting submission: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &DeliveryError{Status: resp.StatusCode, Detail: errorDetail(raw)}
}

// errorDetail pulls the message out of an error payload, preferring detail,
// then message, then error. Anything else yields "".
func errorDetail(raw []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "message", "error"} {
		var s string
		if err := json.Unmarshal(payload[key], &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
