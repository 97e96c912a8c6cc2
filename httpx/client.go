package httpx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/adeilh/go-httpstatus/status"
)

// Client wraps resty. A 4xx or 5xx response is returned together with a
// *StatusError.
type Client struct {
	rc     *resty.Client
	prefix string
}

func NewClient(opts ...ClientOption) *Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rc := resty.New().SetTimeout(cfg.Timeout).SetHeaders(cfg.Headers)
	if cfg.BaseURL != "" {
		rc.SetBaseURL(cfg.BaseURL)
	}
	return &Client{rc: rc, prefix: "/" + strings.Trim(cfg.StatusPrefix, "/")}
}

// Get fetches path and decodes a successful JSON body into result, if set.
func (c *Client) Get(ctx context.Context, path string, result any) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx).SetError(&ErrorBody{})
	if result != nil {
		req.SetResult(result)
	}
	resp, err := req.Get(path)
	if err != nil {
		return resp, fmt.Errorf("httpx: GET %s: %w", path, err)
	}
	if status.IsError(resp.StatusCode()) {
		eb, _ := resp.Error().(*ErrorBody)
		return resp, newStatusError(resp.StatusCode(), strings.TrimSpace(resp.String()), eb)
	}
	return resp, nil
}

// Describe asks a server running StatusRoutes about code.
func (c *Client) Describe(ctx context.Context, code int) (StatusInfo, error) {
	var info StatusInfo
	_, err := c.Get(ctx, c.prefix+"/"+strconv.Itoa(code), &info)
	return info, err
}

// Statuses lists every code the server knows.
func (c *Client) Statuses(ctx context.Context) ([]StatusInfo, error) {
	var all []StatusInfo
	_, err := c.Get(ctx, c.prefix, &all)
	return all, err
}
