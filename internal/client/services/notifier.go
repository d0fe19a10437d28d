// Package services contains the view-state synchronizers: one per remote
// collection (vitals, documents) plus the chat transcript and the auth
// flows. Each synchronizer owns an in-memory ordered mirror of its
// collection and reconciles it with gateway results, applying mutations
// only after remote confirmation so a failure always leaves the state it
// found.
package services

import "context"

// Notifier receives exactly one user-visible message per failed
// operation. Implementations must not block for long; the CLI prints a
// single line.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, msg string)

func (f NotifierFunc) Notify(ctx context.Context, msg string) {
	f(ctx, msg)
}
