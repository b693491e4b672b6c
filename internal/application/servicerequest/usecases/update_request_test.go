package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/domain/user"
	uservo "gastrack/internal/domain/user/valueobjects"
	"gastrack/internal/shared/errors"
)

func staffUser(t *testing.T, id uint) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("staff@example.com")
	require.NoError(t, err)
	name, err := uservo.NewName("Sam", "Staff")
	require.NoError(t, err)
	u, err := user.NewUser(email, name, "", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	u.GrantStaff()
	return u
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateRequestUseCase_Execute_OwnerUpdatesDetails(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	var updated *servicerequest.ServiceRequest

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, r *servicerequest.ServiceRequest) error {
			updated = r
			return nil
		},
	}

	uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateRequestCommand{
		RequestID:   1,
		UserID:      10,
		Description: strPtr("updated description"),
		Priority:    strPtr("high"),
	})

	require.NoError(t, err)
	assert.Equal(t, "updated description", result.Description)
	assert.Equal(t, "high", result.Priority)
	require.NotNil(t, updated)
}

func TestUpdateRequestUseCase_Execute_NonStaffCannotChangeStatus(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}

	uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

	t.Run("status", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: 1,
			UserID:    10,
			Status:    strPtr("resolved"),
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("assignee", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID:  1,
			UserID:     10,
			AssigneeID: uintPtr(20),
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})
}

func TestUpdateRequestUseCase_Execute_StaffResolvesRequest(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}

	uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateRequestCommand{
		RequestID: 1,
		UserID:    99,
		IsStaff:   true,
		Status:    strPtr("resolved"),
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	require.NotNil(t, result.ResolvedAt)

	// Reopening clears the resolution timestamp.
	result, err = uc.Execute(context.Background(), UpdateRequestCommand{
		RequestID: 1,
		UserID:    99,
		IsStaff:   true,
		Status:    strPtr("in_progress"),
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Nil(t, result.ResolvedAt)
}

func TestUpdateRequestUseCase_Execute_Assignment(t *testing.T) {
	staff := staffUser(t, 20)

	t.Run("assign to staff user", func(t *testing.T) {
		existing := reconstructedRequest(t, 1, 10)
		requestRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
				return existing, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				if userID == 20 {
					return staff, nil
				}
				return nil, nil
			},
		}

		uc := NewUpdateRequestUseCase(requestRepo, userRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID:  1,
			UserID:     99,
			IsStaff:    true,
			AssigneeID: uintPtr(20),
		})

		require.NoError(t, err)
		require.NotNil(t, result.AssigneeID)
		assert.Equal(t, uint(20), *result.AssigneeID)
		assert.Equal(t, "in_progress", result.Status, "assigning a pending request starts progress")
	})

	t.Run("assignee must be staff", func(t *testing.T) {
		existing := reconstructedRequest(t, 1, 10)
		requestRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
				return existing, nil
			},
		}

		uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID:  1,
			UserID:     99,
			IsStaff:    true,
			AssigneeID: uintPtr(44),
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("zero clears assignment", func(t *testing.T) {
		existing := reconstructedRequest(t, 1, 10)
		require.NoError(t, existing.AssignTo(20))
		requestRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
				return existing, nil
			},
		}

		uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID:  1,
			UserID:     99,
			IsStaff:    true,
			AssigneeID: uintPtr(0),
		})

		require.NoError(t, err)
		assert.Nil(t, result.AssigneeID)
	})
}

func TestUpdateRequestUseCase_Execute_NotFoundForOtherCustomer(t *testing.T) {
	existing := reconstructedRequest(t, 1, 10)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
			return existing, nil
		},
	}

	uc := NewUpdateRequestUseCase(requestRepo, &mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateRequestCommand{
		RequestID:   1,
		UserID:      11,
		Description: strPtr("hijack"),
	})

	assert.True(t, errors.IsNotFoundError(err))
}
