package api

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/shiftboard/internal/client/tokenstore"
	"github.com/dmitrijs2005/shiftboard/internal/logging"
)

// DefaultBasePath is the API prefix served by the marketplace backend.
const DefaultBasePath = "/api/v1"

// DefaultBaseURL is used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8080" + DefaultBasePath

// Doer is the transport used by the client. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Zero values select the defaults: DefaultBaseURL,
// a fresh http.Client without timeout, an in-memory token store and no logging.
type Options struct {
	BaseURL    string
	HTTPClient Doer
	Store      tokenstore.Store
	Logger     logging.Logger
}

// Client talks to the marketplace API.
type Client struct {
	baseURL string
	http    Doer
	store   tokenstore.Store
	logger  logging.Logger

	mu     sync.Mutex
	token  string
	loaded bool
}

// NewClient builds a Client. It performs no I/O; the store is first read on
// the first token access.
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		http:    opts.HTTPClient,
		store:   opts.Store,
		logger:  opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.store == nil {
		c.store = tokenstore.NewMemory()
	}
	if c.logger == nil {
		c.logger = logging.Nop()
	}
	return c
}

// BaseURL returns the normalized base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current bearer token. The store is consulted once; a
// store failure counts as "no token".
func (c *Client) Token(ctx context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		tok, err := c.store.Get(ctx)
		if err != nil {
			c.logger.Debug(ctx, "token store read failed", "error", err)
			tok = ""
		}
		c.token = tok
		c.loaded = true
	}
	return c.token, c.token != ""
}

// SetToken replaces the token in memory and writes it through to the store.
// An empty token clears it. Store failures are logged and ignored: the token
// stays valid in memory for this session.
func (c *Client) SetToken(ctx context.Context, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.loaded = true

	if err := c.store.Set(ctx, token); err != nil {
		c.logger.Debug(ctx, "token store write failed", "error", err)
	}
}

func (c *Client) IsAuthenticated(ctx context.Context) bool {
	_, ok := c.Token(ctx)
	return ok
}

// Logout forgets the token locally. The server keeps no session, so no
// request is made.
func (c *Client) Logout(ctx context.Context) {
	c.SetToken(ctx, "")
}
