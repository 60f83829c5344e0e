package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var baseURL = "https://hosting.maplewood.com/AB/Private/WA/WA/Maplewood"

// sessionCookie is the cookie the portal uses to track a logged-in session
const sessionCookie = "ASP.NET_SessionId"

// ErrNoSession is returned when the client was created without a session cookie
var ErrNoSession = errors.New("no portal session: set MARKBOOK_SESSION")

// Client handles HTTP requests to the Maplewood connectEd portal.
// It reuses a session the caller already holds; it never logs in.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    string
}

// NewClient creates a new scraper client for the given session cookie value
func NewClient(session string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		session: session,
	}
}

// WithBaseURL points the client at another portal host
func (c *Client) WithBaseURL(url string) *Client {
	if url != "" {
		c.baseURL = url
	}
	return c
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.session == "" {
		return nil, ErrNoSession
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.session})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.URL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, req.URL)
	}

	return resp, nil
}

// Get fetches the given portal path and returns the HTTP response
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// PostJSON sends body as JSON to the given portal path
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return c.do(req)
}
