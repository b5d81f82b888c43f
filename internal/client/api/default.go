package api

import (
	"errors"
	"sync/atomic"
)

var defaultClient atomic.Pointer[Client]

// InitDefault installs the process-wide client. It succeeds once; later calls
// return ErrDefaultInitialized and leave the first client in place.
func InitDefault(c *Client) error {
	if c == nil {
		return errors.New("default client must not be nil")
	}
	if !defaultClient.CompareAndSwap(nil, c) {
		return ErrDefaultInitialized
	}
	return nil
}

// Default returns the client installed by InitDefault, or nil.
func Default() *Client {
	return defaultClient.Load()
}
