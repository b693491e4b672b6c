package usecases

import (
	"context"
	"io"
	"time"

	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/domain/user"
	"gastrack/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc    func(ctx context.Context, r *servicerequest.ServiceRequest) error
	UpdateFunc  func(ctx context.Context, r *servicerequest.ServiceRequest) error
	DeleteFunc  func(ctx context.Context, requestID uint) error
	GetByIDFunc func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error)
	ListFunc    func(ctx context.Context, filter servicerequest.Filter) ([]*servicerequest.ServiceRequest, int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *servicerequest.ServiceRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	if r.ID() == 0 {
		return r.SetID(1)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *servicerequest.ServiceRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, requestID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, requestID)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter servicerequest.Filter) ([]*servicerequest.ServiceRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *servicerequest.Comment) error
	GetByRequestIDFunc func(ctx context.Context, requestID uint) ([]*servicerequest.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *servicerequest.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	if c.ID() == 0 {
		return c.SetID(1)
	}
	return nil
}

func (m *mockCommentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*servicerequest.Comment, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, a *servicerequest.Attachment) error
	GetByRequestIDFunc func(ctx context.Context, requestID uint) ([]*servicerequest.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *servicerequest.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	if a.ID() == 0 {
		return a.SetID(1)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*servicerequest.Attachment, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetNamesByIDsFunc func(ctx context.Context, ids []uint) (map[uint]string, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error        { return nil }
func (m *mockUserRepository) CreateProfile(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error        { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) GetNamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.GetNamesByIDsFunc != nil {
		return m.GetNamesByIDsFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

type mockFileStore struct {
	UploadFunc          func(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	PresignedGetURLFunc func(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	RemoveFunc          func(ctx context.Context, objectKey string) error

	uploaded []string
	removed  []string
}

func (m *mockFileStore) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	m.uploaded = append(m.uploaded, objectKey)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, objectKey, reader, size, contentType)
	}
	return nil
}

func (m *mockFileStore) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	if m.PresignedGetURLFunc != nil {
		return m.PresignedGetURLFunc(ctx, objectKey, expiry)
	}
	return "https://storage.example.com/" + objectKey, nil
}

func (m *mockFileStore) Remove(ctx context.Context, objectKey string) error {
	m.removed = append(m.removed, objectKey)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, objectKey)
	}
	return nil
}

type mockNotifier struct {
	notified    []uint
	commentMail []string
}

func (m *mockNotifier) NotifyUrgentRequest(requestID uint, requestType, address string) error {
	m.notified = append(m.notified, requestID)
	return nil
}

func (m *mockNotifier) NotifyCommentAdded(to string, requestID uint, authorName string) error {
	m.commentMail = append(m.commentMail, to)
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
