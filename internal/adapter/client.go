package adapter

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/utils"
)

// Client is the shared HTTP connection of the adapter package. It owns
// the base URL, the request timeout and the bearer token attached to
// authenticated requests. The token is guarded so a refresh can happen
// concurrently with in-flight requests.
type Client struct {
	http *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

func NewClient(cfg config.ClientConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(strings.TrimRight(cfg.ServerAddress, "/")).
		SetTimeout(timeout)

	return &Client{http: httpClient, token: strings.TrimSpace(cfg.Token)}
}

// SetToken stores the bearer token that will be attached to all
// subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently stored in the client, or an
// empty string if no token has been set yet.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
