package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/domain/user"
	vo "gastrack/internal/domain/user/valueobjects"
	"gastrack/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}
	var saved *servicerequest.Comment
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *servicerequest.Comment) error {
			if err := c.SetID(100); err != nil {
				return err
			}
			saved = c
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetNamesByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{10: "Jane Doe"}, nil
		},
	}

	uc := NewAddCommentUseCase(requestRepo, commentRepo, userRepo, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		RequestID: 1,
		UserID:    10,
		Text:      "any update?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, "any update?", result.Text)
	assert.Equal(t, "Jane Doe", result.UserName)
	require.NotNil(t, saved)
	assert.Equal(t, uint(1), saved.RequestID())
}

func TestAddCommentUseCase_Execute_EmptyText(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}

	uc := NewAddCommentUseCase(requestRepo, &mockCommentRepository{}, &mockUserRepository{}, &mockNotifier{}, &mockLogger{})

	for _, text := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), AddCommentCommand{RequestID: 1, UserID: 10, Text: text})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestAddCommentUseCase_Execute_OtherCustomerGetsNotFound(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}

	uc := NewAddCommentUseCase(requestRepo, &mockCommentRepository{}, &mockUserRepository{}, &mockNotifier{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{RequestID: 1, UserID: 11, Text: "hi"})
	assert.True(t, errors.IsNotFoundError(err))

	// Staff can comment on any request.
	_, err = uc.Execute(context.Background(), AddCommentCommand{RequestID: 1, UserID: 99, IsStaff: true, Text: "hi"})
	assert.NoError(t, err)
}

func TestAddCommentUseCase_Execute_StaffCommentNotifiesRequester(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			email, err := vo.NewEmail("owner@example.com")
			require.NoError(t, err)
			name, err := vo.NewName("Jane", "Doe")
			require.NoError(t, err)
			u, err := user.NewUser(email, name, "1 Main St", "555-0100")
			require.NoError(t, err)
			require.NoError(t, u.SetID(userID))
			return u, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewAddCommentUseCase(requestRepo, &mockCommentRepository{}, userRepo, notifier, &mockLogger{})

	// A staff reply on someone else's request mails the requester.
	_, err := uc.Execute(context.Background(), AddCommentCommand{RequestID: 1, UserID: 99, IsStaff: true, Text: "crew dispatched"})
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, notifier.commentMail)

	// The owner commenting on their own request does not.
	notifier.commentMail = nil
	_, err = uc.Execute(context.Background(), AddCommentCommand{RequestID: 1, UserID: 10, Text: "still smells"})
	require.NoError(t, err)
	assert.Empty(t, notifier.commentMail)
}
