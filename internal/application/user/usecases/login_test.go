package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrack/internal/domain/user"
	vo "gastrack/internal/domain/user/valueobjects"
)

func newTestUser(t *testing.T, id uint, emailAddr, password string) *user.User {
	t.Helper()

	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)
	name, err := vo.NewName("Jane", "Doe")
	require.NoError(t, err)

	u, err := user.NewUser(email, name, "1 Main St", "555-0100")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(password, &mockHasher{}))
	require.NoError(t, u.SetID(id))
	require.NoError(t, u.AssignAccountNumber())
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	existing := newTestUser(t, 5, "jane@example.com", "pw")

	var savedSession *user.Session
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	sessionRepo := &mockSessionRepository{
		CreateFunc: func(ctx context.Context, s *user.Session) error {
			savedSession = s
			return nil
		},
	}

	uc := NewLoginUseCase(userRepo, sessionRepo, &mockHasher{}, &mockJWTService{}, 24*time.Hour, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "jane@example.com",
		Password:  "pw",
		IPAddress: "10.0.0.1",
		UserAgent: "test",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "token", result.AccessToken)
	assert.Equal(t, uint(5), result.User.ID)
	require.NotNil(t, savedSession)
	assert.Equal(t, uint(5), savedSession.UserID())
	assert.True(t, savedSession.IsActive())
}

func TestLoginUseCase_Execute_MixedCaseEmail(t *testing.T) {
	existing := newTestUser(t, 5, "alice@example.com", "pw")

	var lookedUp string
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			lookedUp = email
			if email == "alice@example.com" {
				return existing, nil
			}
			return nil, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockSessionRepository{}, &mockHasher{}, &mockJWTService{}, 24*time.Hour, &mockLogger{})

	// The account is stored normalized, so the lookup must lowercase the
	// address the user typed.
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "Alice@Example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "alice@example.com", lookedUp)
}

func TestLoginUseCase_Execute_GenericError(t *testing.T) {
	existing := newTestUser(t, 5, "jane@example.com", "pw")

	tests := []struct {
		name       string
		getByEmail func(ctx context.Context, email string) (*user.User, error)
		password   string
	}{
		{
			name: "unknown email",
			getByEmail: func(ctx context.Context, email string) (*user.User, error) {
				return nil, nil
			},
			password: "pw",
		},
		{
			name: "wrong password",
			getByEmail: func(ctx context.Context, email string) (*user.User, error) {
				return existing, nil
			},
			password: "wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{GetByEmailFunc: tt.getByEmail}
			uc := NewLoginUseCase(userRepo, &mockSessionRepository{}, &mockHasher{}, &mockJWTService{}, 24*time.Hour, &mockLogger{})

			_, err := uc.Execute(context.Background(), LoginCommand{
				Email:    "jane@example.com",
				Password: tt.password,
			})

			// Both failure modes return the same error so responses
			// cannot be used to probe which emails are registered.
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogoutUseCase_Execute(t *testing.T) {
	t.Run("revokes active session", func(t *testing.T) {
		session, err := user.NewSession(5, "10.0.0.1", "test", time.Hour)
		require.NoError(t, err)

		var revoked string
		sessionRepo := &mockSessionRepository{
			GetByIDFunc: func(ctx context.Context, sessionID string) (*user.Session, error) {
				return session, nil
			},
			RevokeFunc: func(ctx context.Context, sessionID string) error {
				revoked = sessionID
				return nil
			},
		}

		uc := NewLogoutUseCase(sessionRepo, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: session.ID()}))
		assert.Equal(t, session.ID(), revoked)
	})

	t.Run("unknown session is not an error", func(t *testing.T) {
		uc := NewLogoutUseCase(&mockSessionRepository{}, &mockLogger{})
		assert.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "missing"}))
	})

	t.Run("empty session id is a no-op", func(t *testing.T) {
		uc := NewLogoutUseCase(&mockSessionRepository{}, &mockLogger{})
		assert.NoError(t, uc.Execute(context.Background(), LogoutCommand{}))
	})
}
