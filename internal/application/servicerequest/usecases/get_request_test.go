package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrack/internal/domain/servicerequest"
	vo "gastrack/internal/domain/servicerequest/valueobjects"
	"gastrack/internal/shared/errors"
)

func reconstructedRequest(t *testing.T, id, requesterID uint) *servicerequest.ServiceRequest {
	t.Helper()
	r, err := servicerequest.NewServiceRequest(vo.TypeOther, "desc", "1 Main St", vo.PriorityMedium, requesterID)
	require.NoError(t, err)
	require.NoError(t, r.SetID(id))
	return r
}

func TestGetRequestUseCase_Execute_OwnerSeesOwnRequest(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}
	commentRepo := &mockCommentRepository{
		GetByRequestIDFunc: func(ctx context.Context, requestID uint) ([]*servicerequest.Comment, error) {
			c, err := servicerequest.ReconstructComment(5, 1, 20, "on our way", existing.CreatedAt())
			require.NoError(t, err)
			return []*servicerequest.Comment{c}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetNamesByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{10: "Jane Doe", 20: "Sam Staff"}, nil
		},
	}

	uc := NewGetRequestUseCase(requestRepo, commentRepo, &mockAttachmentRepository{}, userRepo, &mockFileStore{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: 1, UserID: 10, IsStaff: false})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "Jane Doe", result.RequesterName)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "Sam Staff", result.Comments[0].UserName)
}

func TestGetRequestUseCase_Execute_VisibilityIsNotFound(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			if requestID == 1 {
				return existing, nil
			}
			return nil, nil
		},
	}

	uc := NewGetRequestUseCase(requestRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, &mockUserRepository{}, nil, &mockLogger{})

	t.Run("missing request", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: 99, UserID: 10})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("other customer's request", func(t *testing.T) {
		// Same not-found error as a missing request, so customers cannot
		// probe which IDs exist.
		_, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: 1, UserID: 11})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("staff sees any request", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: 1, UserID: 99, IsStaff: true})
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
	})
}

func TestGetRequestUseCase_Execute_PresignsAttachmentURLs(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		GetByRequestIDFunc: func(ctx context.Context, requestID uint) ([]*servicerequest.Attachment, error) {
			a, err := servicerequest.ReconstructAttachment(3, 1, "requests/1/abc.pdf", "abc.pdf", "application/pdf", 100, existing.CreatedAt())
			require.NoError(t, err)
			return []*servicerequest.Attachment{a}, nil
		},
	}

	uc := NewGetRequestUseCase(requestRepo, &mockCommentRepository{}, attachmentRepo, &mockUserRepository{}, &mockFileStore{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: 1, UserID: 10})

	require.NoError(t, err)
	require.Len(t, result.Attachments, 1)
	assert.Equal(t, "https://storage.example.com/requests/1/abc.pdf", result.Attachments[0].URL)
}
