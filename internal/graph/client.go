package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public Graph API endpoint.
	DefaultBaseURL = "https://graph.facebook.com"

	// Me is the target naming the authenticated principal.
	Me = "me"

	// ParamAccessToken is the query parameter carrying the credential.
	ParamAccessToken = "access_token"

	principalFields = "id,name,email,gender,birthday,picture"
)

// Config holds configuration for the Graph client.
type Config struct {
	AccessToken string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// Version is an optional API version path prefix, e.g. "v19.0".
	Version string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client posts, lists, edits and deletes content as the principal owning
// the access token or as any page it manages.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	baseURL     string
	version     string
	accessToken string

	me    Principal
	pages map[string]Page
}

// New creates a client and fetches the principal profile and the managed
// pages. Failed fetches are logged and leave the principal or the page
// cache empty.
func New(ctx context.Context, cfg Config) *Client {
	c := &Client{
		httpClient:  cfg.HTTPClient,
		logger:      cfg.Logger,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		version:     strings.Trim(cfg.Version, "/"),
		accessToken: cfg.AccessToken,
		pages:       make(map[string]Page),
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.accessToken == "" {
		c.logger.Warn("graph client created without an access token")
	}

	res := c.request(ctx, http.MethodGet, Me, url.Values{"fields": {principalFields}}, nil, "")
	if res.OK() {
		if err := decode(res.Data, &c.me); err != nil {
			c.logger.Error("decode principal", "error", err)
		}
	}

	for _, p := range c.GetPagesList(ctx) {
		c.pages[p.Name] = p
	}

	c.logger.Debug("graph client ready",
		"principal", c.me.ID,
		"pages", len(c.pages),
	)

	return c
}

// Principal returns the profile fetched at construction.
func (c *Client) Principal() Principal {
	return c.me
}

// Pages returns a copy of the page cache built at construction, keyed by
// page name.
func (c *Client) Pages() map[string]Page {
	pages := make(map[string]Page, len(c.pages))
	for name, p := range c.pages {
		pages[name] = p
	}
	return pages
}

type upload struct {
	field string
	media Media
}

// request performs one Graph API call. It never returns an error directly:
// failures are logged and come back as a Result carrying Err.
func (c *Client) request(ctx context.Context, method, path string, params url.Values, up *upload, token string) Result {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return c.fail(&TransportError{Method: method, Path: path, Err: ErrUnsupportedMethod})
	}

	if token == "" {
		token = c.accessToken
	}
	query := url.Values{}
	for k, vs := range params {
		query[k] = append([]string(nil), vs...)
	}
	query.Set(ParamAccessToken, token)

	endpoint := c.endpoint(path) + "?" + query.Encode()

	var (
		body        io.Reader
		contentType string
	)
	if up != nil {
		buf, ct, err := multipartBody(up)
		if err != nil {
			return c.fail(&TransportError{Method: method, Path: path, Err: err})
		}
		body, contentType = buf, ct
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return c.fail(&TransportError{Method: method, Path: path, Err: fmt.Errorf("create request: %w", err)})
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&TransportError{Method: method, Path: path, Err: fmt.Errorf("send request: %w", err)})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(&TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		terr := &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var payload struct {
			Error *APIError `json:"error"`
		}
		if json.Unmarshal(respBody, &payload) == nil && payload.Error != nil {
			terr.API = payload.Error
		}
		return c.fail(terr)
	}

	data := make(map[string]any)
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &data); err != nil {
			return c.fail(&TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("parse response: %w", err)})
		}
	}

	c.logger.Debug("graph request", "method", method, "path", path, "status", resp.StatusCode)
	return Result{Data: data}
}

func (c *Client) fail(err error) Result {
	c.logger.Error("graph request failed", "error", err)
	return failed(err)
}

func (c *Client) endpoint(path string) string {
	path = strings.TrimLeft(path, "/")
	if c.version != "" {
		return c.baseURL + "/" + c.version + "/" + path
	}
	return c.baseURL + "/" + path
}

// multipartBody reads the upload into a multipart form. The media reader is
// closed before it returns.
func multipartBody(up *upload) (*bytes.Buffer, string, error) {
	src, err := up.media.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", up.media.Name(), err)
	}
	defer src.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(up.field, up.media.Name())
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", up.media.Name(), err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// decode re-marshals a generic response body into a typed value.
func decode(data map[string]any, v any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
