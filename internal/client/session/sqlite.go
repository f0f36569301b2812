package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/common"
	"github.com/dmitrijs2005/porterowner/internal/dbx"
)

// Slot names inside the session table. The credential slot carries the
// expiry; the profile slot is denormalized display data removed together
// with the credential.
const (
	slotCredential = "credential"
	slotProfile    = "profile"
)

// credentialSlot is the persisted form of the credential + expiry pair.
type credentialSlot struct {
	Credential string    `json:"credential"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SQLiteStore persists the session in a local SQLite key/value table.
// It assumes a single process using the database; there is no cross-process
// locking, and concurrent writers resolve to last-writer-wins.
type SQLiteStore struct {
	db         *sql.DB
	expiryDays int

	// now is an indirection for time.Now to facilitate expiry testing.
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore wraps db as a session Store. Records saved through it
// expire expiryDays days after Save.
func NewSQLiteStore(db *sql.DB, expiryDays int) *SQLiteStore {
	return &SQLiteStore{db: db, expiryDays: expiryDays, now: time.Now}
}

func getSlot(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func setSlot(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func deleteSlot(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

// Save persists a new session record, replacing any prior one. Both slots
// are written in a single transaction so the record is never half-updated.
func (s *SQLiteStore) Save(ctx context.Context, profile Profile, credential string) error {
	cred, err := json.Marshal(credentialSlot{
		Credential: credential,
		ExpiresAt:  s.now().AddDate(0, 0, s.expiryDays),
	})
	if err != nil {
		return err
	}

	prof, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setSlot(ctx, tx, slotCredential, cred); err != nil {
			return err
		}
		return setSlot(ctx, tx, slotProfile, prof)
	})
}

// Current returns the persisted credential if one exists and has not
// expired. An expired, corrupt or unreadable record is cleared and reported
// as common.ErrNoSession: the store fails closed rather than returning a
// credential it cannot vouch for.
func (s *SQLiteStore) Current(ctx context.Context) (string, error) {
	value, err := getSlot(ctx, s.db, slotCredential)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", common.ErrNoSession
	}

	var slot credentialSlot
	if err := json.Unmarshal(value, &slot); err != nil {
		_ = s.Clear(ctx)
		return "", common.ErrNoSession
	}
	if slot.Credential == "" || !s.now().Before(slot.ExpiresAt) {
		_ = s.Clear(ctx)
		return "", common.ErrNoSession
	}

	return slot.Credential, nil
}

// IsActive reports whether Current would succeed.
func (s *SQLiteStore) IsActive(ctx context.Context) bool {
	_, err := s.Current(ctx)
	return err == nil
}

// Profile returns the profile captured at login. Only valid while a session
// is active; expiry of the credential hides the profile as well.
func (s *SQLiteStore) Profile(ctx context.Context) (Profile, error) {
	if _, err := s.Current(ctx); err != nil {
		return Profile{}, err
	}

	value, err := getSlot(ctx, s.db, slotProfile)
	if err != nil {
		return Profile{}, err
	}
	if value == nil {
		return Profile{}, common.ErrNoSession
	}

	var p Profile
	if err := json.Unmarshal(value, &p); err != nil {
		_ = s.Clear(ctx)
		return Profile{}, common.ErrNoSession
	}
	return p, nil
}

// OwnerID is the typed accessor for the signed-in owner's account id.
// Callers must not read the persisted slots directly.
func (s *SQLiteStore) OwnerID(ctx context.Context) (int64, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}

// Clear removes both slots unconditionally. Clearing an empty store is a
// no-op, not an error.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := deleteSlot(ctx, tx, slotCredential); err != nil {
			return err
		}
		return deleteSlot(ctx, tx, slotProfile)
	})
}
