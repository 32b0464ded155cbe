// Package credential owns the durable storage of the opaque bearer
// credential. The token is written on successful login or registration,
// read on startup and before every authorized request, and deleted on
// logout. Expiry is not enforced here; that is the claims' job.
package credential

import "context"

// Store persists and retrieves the bearer credential across process
// restarts. Load returns ("", nil) when no credential is stored; absence
// means anonymous.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
