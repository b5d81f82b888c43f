// Package tokenstore keeps the API bearer token between runs.
//
// A Store is bound to one API origin and holds at most one token. Three
// variants exist: Memory (transient), SQLite (a local file) and Redis (a
// shared key/value server). Open picks one of them once at startup.
package tokenstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Store is the persistence capability used by the API client.
// Get returns "" when nothing is stored. Set with "" clears the stored token.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}

// Memory is a transient Store. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Origin reduces an API base URL to the scheme://host[:port] part that scopes
// persisted tokens, so two base paths on one host share a credential.
func Origin(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q is not absolute", baseURL)
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}
