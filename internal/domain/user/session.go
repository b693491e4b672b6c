package user

import (
	"fmt"
	"time"

	"gastrack/internal/shared/id"
)

// Session represents an authenticated login session. Sessions are created at
// login and revoked at logout; a revoked or expired session no longer
// authenticates requests.
type Session struct {
	id        string
	userID    uint
	ipAddress string
	userAgent string
	expiresAt time.Time
	createdAt time.Time
	revokedAt *time.Time
}

// NewSession creates a session for the given user.
func NewSession(userID uint, ipAddress, userAgent string, duration time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	sessionID, err := id.Generate(id.SessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now()
	return &Session{
		id:        sessionID,
		userID:    userID,
		ipAddress: ipAddress,
		userAgent: userAgent,
		expiresAt: now.Add(duration),
		createdAt: now,
	}, nil
}

// ReconstructSession rebuilds a session from persistence.
func ReconstructSession(
	sessionID string,
	userID uint,
	ipAddress, userAgent string,
	expiresAt, createdAt time.Time,
	revokedAt *time.Time,
) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Session{
		id:        sessionID,
		userID:    userID,
		ipAddress: ipAddress,
		userAgent: userAgent,
		expiresAt: expiresAt,
		createdAt: createdAt,
		revokedAt: revokedAt,
	}, nil
}

func (s *Session) ID() string            { return s.id }
func (s *Session) UserID() uint          { return s.userID }
func (s *Session) IPAddress() string     { return s.ipAddress }
func (s *Session) UserAgent() string     { return s.userAgent }
func (s *Session) ExpiresAt() time.Time  { return s.expiresAt }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) RevokedAt() *time.Time { return s.revokedAt }

// Revoke marks the session as terminated. Revoking twice is a no-op.
func (s *Session) Revoke() {
	if s.revokedAt != nil {
		return
	}
	now := time.Now()
	s.revokedAt = &now
}

// IsActive reports whether the session still authenticates requests.
func (s *Session) IsActive() bool {
	if s.revokedAt != nil {
		return false
	}
	return time.Now().Before(s.expiresAt)
}
