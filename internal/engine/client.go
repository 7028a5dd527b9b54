package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// ErrRequestFailed is the single failure kind of the remote adapter.
// Network errors, non-2xx statuses and undecodable bodies all wrap it.
var ErrRequestFailed = errors.New(config.ErrRequestFailed)

// Remote defines the contract of the contacts resource.
// This interface allows for mocking in tests and hides how ids are assigned.
type Remote interface {
	List(ctx context.Context) ([]contact.Contact, error)
	Create(ctx context.Context, c contact.Contact) (contact.Contact, error)
	Update(ctx context.Context, id contact.ID, c contact.Contact) (contact.Contact, error)
	Delete(ctx context.Context, id contact.ID) error
}

// HTTPClient implements Remote against a JSON REST resource
// (GET base, POST base, PUT base/{id}, DELETE base/{id}).
type HTTPClient struct {
	Client *http.Client
	IDs    *IDGenerator

	base atomic.Pointer[url.URL]
}

// NewHTTPClient creates a client for the resource at baseURL.
// No request timeout is set; calls end when the server answers or ctx is cancelled.
func NewHTTPClient(baseURL string, ids *IDGenerator) (*HTTPClient, error) {
	if ids == nil {
		ids = NewIDGenerator(RealClock{})
	}
	c := &HTTPClient{
		Client: &http.Client{Timeout: config.HTTPTimeout},
		IDs:    ids,
	}
	if err := c.SetBaseURL(baseURL); err != nil {
		return nil, err
	}
	return c, nil
}

// SetBaseURL validates and swaps the resource URL. In-flight calls keep the old one.
func (c *HTTPClient) SetBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	// Security check: ensure strictly HTTP or HTTPS.
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return fmt.Errorf("%s: %q", config.ErrProtocol, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: missing host", config.ErrInvalidURL)
	}

	c.base.Store(u)
	return nil
}

// BaseURL returns the current resource URL.
func (c *HTTPClient) BaseURL() string {
	return c.base.Load().String()
}

// List fetches the whole contact sequence, in server order.
func (c *HTTPClient) List(ctx context.Context) ([]contact.Contact, error) {
	var contacts []contact.Contact
	if err := c.do(ctx, http.MethodGet, c.base.Load(), nil, &contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	return contacts, nil
}

// Create posts a new contact and returns the server's echo with a locally
// generated id in place of the server one.
func (c *HTTPClient) Create(ctx context.Context, draft contact.Contact) (contact.Contact, error) {
	var created contact.Contact
	if err := c.do(ctx, http.MethodPost, c.base.Load(), draft, &created); err != nil {
		return contact.Contact{}, err
	}
	created.ID = c.IDs.Next()
	return created, nil
}

// Update puts c at base/{id}. The response is returned as-is, id included.
func (c *HTTPClient) Update(ctx context.Context, id contact.ID, body contact.Contact) (contact.Contact, error) {
	var updated contact.Contact
	if err := c.do(ctx, http.MethodPut, c.itemURL(id), body, &updated); err != nil {
		return contact.Contact{}, err
	}
	return updated, nil
}

// Delete removes base/{id}.
func (c *HTTPClient) Delete(ctx context.Context, id contact.ID) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *HTTPClient) itemURL(id contact.ID) *url.URL {
	return c.base.Load().JoinPath(id.String())
}

// do sends one JSON request and decodes the response into out (if not nil).
// It enforces a maximum response size limit.
func (c *HTTPClient) do(ctx context.Context, method string, target *url.URL, body, out any) error {
	// Query parameters are stripped from logs, they might contain tokens.
	safeURL := target.Scheme + "://" + target.Host + target.Path

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompClient),
		slog.String(config.LogKeyMethod, method),
		slog.String(config.LogKeyURL, safeURL),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRequestFailed, config.ErrEncodeBody, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, config.ErrBuildRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.MimeJSON)
	if body != nil {
		req.Header.Set(config.HeaderContentType, config.MimeJSON)
	}

	log.Debug(config.MsgRequest)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, config.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn(config.MsgStatusError,
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return fmt.Errorf("%w: %s: %s", ErrRequestFailed, config.ErrStatus, resp.Status)
	}

	log.Debug(config.MsgResponse, slog.Int(config.LogKeyStatus, resp.StatusCode))

	limited := io.LimitReader(resp.Body, config.MaxHTTPResponseSize)
	if out == nil {
		_, _ = io.Copy(io.Discard, limited)
		return nil
	}
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, config.ErrDecodeBody, err)
	}
	return nil
}
