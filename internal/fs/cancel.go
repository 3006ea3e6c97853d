package fs

import "sync/atomic"

// CancelToken is the single cancellation signal carried by every long-running
// filesystem operation. Tripping it is idempotent; subtasks poll it at chunk
// boundaries and between files.
type CancelToken struct {
	tripped atomic.Bool
}

// NewCancelToken returns a fresh, untripped token.
func NewCancelToken() *CancelToken { return &CancelToken{} }

// Cancel trips the token. Safe to call more than once or concurrently.
func (c *CancelToken) Cancel() {
	if c == nil {
		return
	}
	c.tripped.Store(true)
}

// Canceled reports whether the token has been tripped.
func (c *CancelToken) Canceled() bool {
	if c == nil {
		return false
	}
	return c.tripped.Load()
}
