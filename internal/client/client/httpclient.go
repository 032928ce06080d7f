package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/medico/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderName = "X-Request-ID"

	// maxErrorBody caps how much of an error response is kept for display.
	maxErrorBody = 64 << 10
)

// HTTPClient talks to the clinic REST backend on behalf of a Session.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	session *Session
	log     logging.Logger

	openFile func(name string) (io.ReadCloser, error)
}

// NewHTTPClient builds a client for baseURL. The session is shared, not
// copied: a 401 on any call clears it for every holder.
func NewHTTPClient(baseURL string, httpClient *http.Client, session *Session, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPClient{
		baseURL:  u,
		http:     httpClient,
		session:  session,
		log:      log,
		openFile: func(name string) (io.ReadCloser, error) { return os.Open(name) },
	}, nil
}

type accessTokenKey struct{}

// WithAccessToken makes calls under ctx use token instead of the session's.
// It is used while a login is still resolving the identity and nothing has
// been stored in the session yet.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the override placed by WithAccessToken, if any.
func AccessTokenFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(accessTokenKey{}).(string)
	return t, ok && t != ""
}

func (c *HTTPClient) accessToken(ctx context.Context) string {
	if t, ok := AccessTokenFrom(ctx); ok {
		return t
	}
	return c.session.Token()
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, uuid.NewString())
	return req, nil
}

// authorize attaches the bearer token, if any. Without one the request goes
// out unauthenticated and the backend decides.
func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) {
	if token := c.accessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// send executes req. Any failure before a response arrives, timeouts
// included, is reported as ErrUnavailable.
func (c *HTTPClient) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := c.log.With("method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get(RequestIDHeaderName))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "elapsed", time.Since(start))
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

// interpret applies the response contract shared by every authorized call
// and closes the body. On 200 the JSON body is decoded into out (if non-nil).
func (c *HTTPClient) interpret(ctx context.Context, resp *http.Response, out any) error {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, resp.Request.URL.Path, err)
		}
		return nil
	case http.StatusUnauthorized:
		c.session.Clear()
		c.log.Info(ctx, "session cleared after 401", "path", resp.Request.URL.Path)
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrAccessDenied
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: string(b)}
	}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	c.authorize(ctx, req)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	return c.interpret(ctx, resp, out)
}
