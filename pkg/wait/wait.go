// Package wait implements bounded readiness polling for external dependencies.
//
// The poll loop is deliberately simple: a fixed interval between attempts and a
// hard attempt budget. No backoff — the predicates are cheap and the budget is
// small, so adaptivity buys nothing.
package wait

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Result is the terminal state of a poll.
type Result int

const (
	// Ready means the predicate succeeded within the attempt budget.
	Ready Result = iota
	// TimedOut means the attempt budget was exhausted without success.
	TimedOut
)

// String returns a human-readable representation of the result.
func (r Result) String() string {
	switch r {
	case Ready:
		return "ready"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Predicate is a side-effecting readiness check. It returns true once the
// polled resource is usable. Errors are treated as "not ready yet"; the poll
// does not distinguish between a false return and a failed check.
type Predicate func(ctx context.Context) (bool, error)

// Options configures a poll loop.
type Options struct {
	// MaxAttempts is the hard budget of predicate checks. Must be positive.
	MaxAttempts int
	// Interval is the fixed sleep between attempts.
	Interval time.Duration
	// Sleep is the sleep implementation. Defaults to a context-aware
	// time.Sleep when nil; tests substitute a recording fake.
	Sleep func(ctx context.Context, d time.Duration)
	// OnError is invoked with every error the predicate returns, before
	// the next attempt. Callers use it to surface errors the fixed-interval
	// retry would otherwise swallow (see IsTransient). May be nil.
	OnError func(err error)
}

// DefaultOptions returns the poll configuration used for the Docker daemon:
// 30 attempts, 2 seconds apart.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: 30,
		Interval:    2 * time.Second,
	}
}

// Poll runs the predicate until it succeeds or the attempt budget is spent.
//
// The predicate is checked exactly once per attempt. Success on attempt K
// returns Ready after K checks with no trailing sleep. A predicate that never
// succeeds is checked exactly MaxAttempts times before TimedOut is returned.
// Context cancellation ends the poll early with TimedOut.
func Poll(ctx context.Context, predicate Predicate, opts Options) Result {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		ok, err := predicate(ctx)
		if ok && err == nil {
			return Ready
		}

		if err != nil && opts.OnError != nil {
			opts.OnError(err)
		}

		if ctx.Err() != nil {
			return TimedOut
		}

		if attempt == opts.MaxAttempts {
			break
		}

		sleep(ctx, opts.Interval)
	}

	return TimedOut
}

// sleepContext sleeps for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// httpStatusCodePattern matches HTTP 5xx status codes at word boundaries
// to avoid false positives on port numbers like ":5000".
var httpStatusCodePattern = regexp.MustCompile(`\b50[0-4]\b`)

// IsTransient returns true if the error indicates a transient connectivity
// failure worth waiting out: the daemon socket not yet accepting connections,
// TCP-level resets and timeouts, or HTTP 5xx responses from a proxy in front
// of the daemon. Anything else (permission denied, malformed configuration)
// will not resolve by waiting.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()

	textPatterns := []string{
		"Cannot connect to the Docker daemon",
		"Internal Server Error", "Bad Gateway",
		"Service Unavailable", "Gateway Timeout",
		"connection reset by peer", "connection refused",
		"i/o timeout", "TLS handshake timeout",
		"unexpected EOF", "no such host",
		"no such file or directory",
	}

	for _, pattern := range textPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return httpStatusCodePattern.MatchString(errMsg)
}
