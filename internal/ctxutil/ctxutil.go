// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled reports whether the context is done, returning its error
// (Canceled or DeadlineExceeded) if so and nil otherwise. Pipeline stages
// call this at entry so a canceled run stops before the next external
// command is spawned.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
