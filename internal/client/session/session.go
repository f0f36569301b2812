// Package session owns the persisted login session: who is signed in, the
// credential sent with every backend call, and when it stops being valid.
//
// All access to the persisted state goes through a Store. Nothing else in
// the client reads or writes the underlying slots, so the answer to "is
// there a session, and for whom" has exactly one source.
package session

import (
	"context"
	"time"
)

// Profile holds the user-facing fields captured at login time.
type Profile struct {
	Name    string `json:"name"`
	Phone   string `json:"phoneNumber"`
	OwnerID int64  `json:"oaId"`
}

// Record is a fully populated session: credential, profile and expiry.
// A Record is either entirely present or entirely absent; a partially
// readable persisted state is treated as absent.
type Record struct {
	Credential string
	Profile    Profile
	ExpiresAt  time.Time
}

// Store is the single source of truth for the current session.
//
// Contract:
//   - Save: persist a new Record with ExpiresAt = now + the configured
//     expiry, overwriting any prior record.
//   - Current: return the credential when a record exists and has not
//     expired; otherwise remove whatever is persisted and return
//     common.ErrNoSession. Expiry is enforced lazily, on read.
//   - IsActive: convenience for Current succeeding.
//   - Profile, OwnerID: typed accessors over the persisted profile; valid
//     only while a session is active.
//   - Clear: unconditionally remove the persisted record; clearing an
//     empty store is a no-op.
//
// Any ambiguity about session validity (corrupt slots, unreadable state)
// resolves to "not authenticated", never to a stale credential.
type Store interface {
	Save(ctx context.Context, profile Profile, credential string) error
	Current(ctx context.Context) (string, error)
	IsActive(ctx context.Context) bool
	Profile(ctx context.Context) (Profile, error)
	OwnerID(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}
