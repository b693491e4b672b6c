package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/domain/user"
	"gastrack/internal/shared/authorization"
	"gastrack/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	CreateProfileFunc func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	GetNamesByIDsFunc func(ctx context.Context, ids []uint) (map[uint]string, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) CreateProfile(ctx context.Context, u *user.User) error {
	if m.CreateProfileFunc != nil {
		return m.CreateProfileFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) GetNamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.GetNamesByIDsFunc != nil {
		return m.GetNamesByIDsFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

type mockSessionRepository struct {
	CreateFunc        func(ctx context.Context, s *user.Session) error
	GetByIDFunc       func(ctx context.Context, sessionID string) (*user.Session, error)
	RevokeFunc        func(ctx context.Context, sessionID string) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *user.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userID uint, sessionID string, role authorization.UserRole) (*TokenPair, error)
}

func (m *mockJWTService) Generate(userID uint, sessionID string, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, sessionID, role)
	}
	return &TokenPair{AccessToken: "token", ExpiresIn: 3600}, nil
}

type mockEmailService struct {
	SendWelcomeEmailFunc func(to, displayName, accountNumber string) error
	sent                 []string
	greeted              []string
}

func (m *mockEmailService) SendWelcomeEmail(to, displayName, accountNumber string) error {
	m.sent = append(m.sent, to)
	m.greeted = append(m.greeted, displayName)
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(to, displayName, accountNumber)
	}
	return nil
}

// noopTxManager runs the function directly without a real transaction.
type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
