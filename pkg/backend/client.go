package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Flag selects the operation a resource endpoint performs.
type Flag string

// Operation is a typed request body. The client adds the Flag field on the wire.
type Operation interface {
	Endpoint() string
	Flag() Flag
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

var tracer = otel.Tracer("gaunghar-backend")

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// Do posts op and decodes the response into out.
// out may be nil when only the envelope matters.
// A non-200 StatusCode is returned as *APIError; no retries are attempted.
func (c *Client) Do(ctx context.Context, op Operation, out Enveloped) error {
	endpoint, flag := op.Endpoint(), string(op.Flag())
	ctx, span := tracer.Start(ctx, "backend."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("backend.endpoint", endpoint),
			attribute.String("backend.flag", flag),
		),
	)
	defer span.End()

	start := time.Now()
	err := c.do(ctx, op, out)
	outcome := outcomeOf(err)
	observe(endpoint, flag, outcome, time.Since(start))

	entry := c.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"flag":     flag,
		"duration": time.Since(start),
		"outcome":  outcome,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Warn("backend request failed")
		return err
	}
	entry.Debug("backend request completed")
	return nil
}

func (c *Client) do(ctx context.Context, op Operation, out Enveloped) error {
	body, err := encode(op)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+op.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(classifyTransport(err), err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(classifyTransport(err), "read response")
	}

	if out == nil {
		out = &Status{}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Code: resp.StatusCode}
		}
		return errors.Wrapf(err, "decode %s response", op.Endpoint())
	}
	status := out.Envelope()
	if int(status.StatusCode) != StatusOK {
		return &APIError{Code: int(status.StatusCode), Message: status.Message}
	}
	return nil
}

// encode marshals op and merges in its Flag. Endpoints without flags return "".
func encode(op Operation) ([]byte, error) {
	raw, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}
	if op.Flag() == "" {
		return raw, nil
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	flag, err := json.Marshal(op.Flag())
	if err != nil {
		return nil, err
	}
	fields["Flag"] = flag
	return json.Marshal(fields)
}

func outcomeOf(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "rejected"
	case IsTransport(err):
		return "unavailable"
	default:
		return "error"
	}
}
