// Package judge is the client for the external AI judge collaborator. The
// collaborator evaluates a case against the citizen's constitution and laws
// and returns a verdict; this package only speaks the boundary contract and
// never touches the document.
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"republic/internal/republic/models"
	dErrors "republic/pkg/domain-errors"
)

// ErrInvalidVerdict marks a response whose verdict is outside the three
// allowed values. It is never coerced into a valid one.
var ErrInvalidVerdict = errors.New("judge returned an invalid verdict")

// Request is the case material sent to the judge. Only the title is
// required; the rest is context that improves the ruling.
type Request struct {
	CaseTitle       string `json:"caseTitle"`
	CaseDescription string `json:"caseDescription,omitempty"`
	RelatedLaw      string `json:"relatedLaw,omitempty"`
	Constitution    string `json:"constitution,omitempty"`
}

// Ruling is the judge's response. Sentence is empty unless the verdict is
// guilty.
type Ruling struct {
	Verdict  models.Verdict `json:"verdict"`
	Notes    string         `json:"notes"`
	Sentence string         `json:"sentence"`
}

// Client calls the hosted judge endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the judge client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient constructs a judge client for the given endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate submits a case and returns the ruling. Failures are distinct and
// never silent: a missing title is a bad request, transport errors and
// non-2xx statuses surface as unavailable, and a verdict outside the allowed
// set is rejected via ErrInvalidVerdict.
func (c *Client) Evaluate(ctx context.Context, req Request) (*Ruling, error) {
	if strings.TrimSpace(req.CaseTitle) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "caseTitle is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode judge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build judge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to reach the judge")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("judge returned an error status", "status", resp.StatusCode)
		return nil, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("judge responded with status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "read judge response")
	}

	var ruling Ruling
	if err := json.Unmarshal(raw, &ruling); err != nil {
		c.logger.Error("judge response is not valid JSON", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "judge returned an invalid response")
	}

	switch ruling.Verdict {
	case models.VerdictGuilty, models.VerdictNotGuilty, models.VerdictPardoned:
	default:
		c.logger.Error("judge returned an invalid verdict", "verdict", ruling.Verdict)
		return nil, dErrors.Wrap(ErrInvalidVerdict, dErrors.CodeUnavailable, "judge returned an invalid verdict")
	}

	if ruling.Verdict != models.VerdictGuilty {
		ruling.Sentence = ""
	}

	return &ruling, nil
}
