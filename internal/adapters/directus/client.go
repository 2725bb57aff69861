// Package directus talks to the Directus CMS REST API: login, item reads and
// asset downloads.
package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

const (
	instrumentationName = "github.com/kamal-hamza/gallery-cli/internal/adapters/directus"

	// DefaultCollection holds the creative assets
	DefaultCollection = "success_stories"

	// DefaultTimeout bounds a single CMS round trip
	DefaultTimeout = 30 * time.Second

	// errorBodyLimit caps how much of a failed response ends up in an error
	errorBodyLimit = 4 << 10
)

// Options configures a Client
type Options struct {
	Endpoint   string // API root, e.g. https://cms.example.com
	Collection string
	Email      string
	Password   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a Directus REST client
type Client struct {
	endpoint   string
	collection string
	email      string
	password   string
	httpClient *http.Client
	tracer     trace.Tracer
	duration   metric.Float64Histogram
}

// NewClient creates a client; an empty collection falls back to DefaultCollection
func NewClient(opts Options) *Client {
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	duration, err := otel.Meter(instrumentationName).Float64Histogram(
		"gallery.cms.duration",
		metric.WithDescription("Duration of CMS round trips"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &Client{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		collection: opts.Collection,
		email:      opts.Email,
		password:   opts.Password,
		httpClient: httpClient,
		tracer:     otel.Tracer(instrumentationName),
		duration:   duration,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		AccessToken  string `json:"access_token"`
		Expires      int64  `json:"expires"`
		RefreshToken string `json:"refresh_token"`
	} `json:"data"`
}

type itemsResponse struct {
	Data []json.RawMessage `json:"data"`
}

// Login exchanges the service credential for an access token
func (c *Client) Login(ctx context.Context) (string, error) {
	if c.endpoint == "" {
		return "", domain.ErrNotConfigured
	}
	if c.email == "" || c.password == "" {
		return "", domain.ErrNoCredentials
	}

	ctx, span := c.tracer.Start(ctx, "directus.login")
	defer span.End()

	body, err := json.Marshal(loginRequest{Email: c.email, Password: c.password})
	if err != nil {
		return "", fmt.Errorf("encode login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result loginResponse
	if err := c.doJSON(req, "login", span, &result); err != nil {
		return "", err
	}
	if result.Data.AccessToken == "" {
		span.SetStatus(codes.Error, domain.ErrNoToken.Error())
		return "", domain.ErrNoToken
	}

	return result.Data.AccessToken, nil
}

// RawItems returns the published items of the collection as the CMS sent them.
// A non-empty program narrows the result to items whose program_name contains it.
func (c *Client) RawItems(ctx context.Context, token, program string) ([]json.RawMessage, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	if c.endpoint == "" {
		return nil, domain.ErrNotConfigured
	}

	ctx, span := c.tracer.Start(ctx, "directus.items", trace.WithAttributes(
		attribute.String("cms.collection", c.collection),
		attribute.String("cms.program", program),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ItemsURL(program), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var result itemsResponse
	if err := c.doJSON(req, "fetch content", span, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []json.RawMessage{}
	}

	span.SetAttributes(attribute.Int("cms.items", len(result.Data)))
	return result.Data, nil
}

// Items is RawItems decoded into domain items
func (c *Client) Items(ctx context.Context, token, program string) ([]domain.Item, error) {
	raw, err := c.RawItems(ctx, token, program)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(raw))
	for i, r := range raw {
		var item domain.Item
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, fmt.Errorf("parse item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemsURL builds the read query for the collection
func (c *Client) ItemsURL(program string) string {
	query := url.Values{}
	query.Set("filter[status][_eq]", domain.StatusPublished)
	if program != "" {
		query.Set("filter[program_name][_icontains]", program)
	}
	return fmt.Sprintf("%s/items/%s?%s", c.endpoint, url.PathEscape(c.collection), query.Encode())
}

// Fetch streams the body at rawURL into w.
// Asset files on this deployment are public, so no token is sent.
func (c *Client) Fetch(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	ctx, span := c.tracer.Start(ctx, "directus.download", trace.WithAttributes(
		attribute.String("cms.url", rawURL),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	status := 0
	defer func() { c.record(ctx, "download", start, status) }()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if err := checkStatus(resp, "download"); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read asset: %w", err)
	}
	span.SetAttributes(attribute.Int64("cms.bytes", n))
	return n, nil
}

func (c *Client) doJSON(req *http.Request, op string, span trace.Span, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(req.Context(), op, start, 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	c.record(req.Context(), op, start, resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if err := checkStatus(resp, op); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse %s response: %w", op, err)
	}
	return nil
}

func (c *Client) record(ctx context.Context, op string, start time.Time, status int) {
	if c.duration == nil {
		return
	}
	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("cms.op", op),
		attribute.Int("http.status_code", status),
	))
}

func checkStatus(resp *http.Response, op string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	return &domain.UpstreamError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
