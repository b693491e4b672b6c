package user

import "context"

// Repository persists the user aggregate. Create and CreateProfile are
// expected to run inside one transaction at registration so a user row is
// never left without its profile.
type Repository interface {
	Create(ctx context.Context, u *User) error
	CreateProfile(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetNamesByIDs resolves full display names for the given user IDs.
	// Missing IDs are simply absent from the result map.
	GetNamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// GetByID returns (nil, nil) when the session does not exist.
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Revoke(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
