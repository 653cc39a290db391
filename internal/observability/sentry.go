// Package observability reports unexpected errors to Sentry.
//
// With an empty DSN nothing is initialised and CaptureErr is a no-op, since
// sentry-go drops events when no client is bound.
package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// InitSentry configures the global Sentry client. The returned func flushes
// buffered events and should be deferred by main.
func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(flushTimeout) }, nil
}

// CaptureErr sends err to Sentry tagged with the route that failed.
func CaptureErr(err error, route string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		if route != "" {
			scope.SetTag("route", route)
		}
		sentry.CaptureException(err)
	})
}
