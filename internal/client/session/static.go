package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/common"
)

// Static is an in-memory Store. It exists so tests and local development
// can fabricate a session without touching disk; production composition
// (cmd/client) never constructs one.
type Static struct {
	record     *Record
	expiryDays int

	now func() time.Time
}

var _ Store = (*Static)(nil)

// NewStatic returns an empty in-memory store with the given expiry.
func NewStatic(expiryDays int) *Static {
	return &Static{expiryDays: expiryDays, now: time.Now}
}

func (s *Static) Save(_ context.Context, profile Profile, credential string) error {
	s.record = &Record{
		Credential: credential,
		Profile:    profile,
		ExpiresAt:  s.now().AddDate(0, 0, s.expiryDays),
	}
	return nil
}

func (s *Static) Current(_ context.Context) (string, error) {
	if s.record == nil {
		return "", common.ErrNoSession
	}
	if !s.now().Before(s.record.ExpiresAt) {
		s.record = nil
		return "", common.ErrNoSession
	}
	return s.record.Credential, nil
}

func (s *Static) IsActive(ctx context.Context) bool {
	_, err := s.Current(ctx)
	return err == nil
}

func (s *Static) Profile(ctx context.Context) (Profile, error) {
	if _, err := s.Current(ctx); err != nil {
		return Profile{}, err
	}
	return s.record.Profile, nil
}

func (s *Static) OwnerID(ctx context.Context) (int64, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}

func (s *Static) Clear(_ context.Context) error {
	s.record = nil
	return nil
}
