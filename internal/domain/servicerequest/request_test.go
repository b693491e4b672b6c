package servicerequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gastrack/internal/domain/servicerequest/valueobjects"
)

func newTestRequest(t *testing.T) *ServiceRequest {
	t.Helper()
	r, err := NewServiceRequest(vo.TypeGasLeak, "smell of gas near the meter", "1 Main St", vo.PriorityMedium, 1)
	require.NoError(t, err)
	return r
}

func TestNewServiceRequest(t *testing.T) {
	r := newTestRequest(t)

	assert.Equal(t, vo.StatusPending, r.Status())
	assert.Nil(t, r.AssigneeID())
	assert.Nil(t, r.ResolvedAt())
	assert.Equal(t, uint(1), r.RequesterID())
	assert.Equal(t, vo.TypeGasLeak, r.RequestType())
}

func TestNewServiceRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		requestType vo.RequestType
		description string
		address     string
		priority    vo.Priority
		requesterID uint
	}{
		{"invalid type", vo.RequestType("plumbing"), "desc", "addr", vo.PriorityLow, 1},
		{"empty description", vo.TypeOther, "", "addr", vo.PriorityLow, 1},
		{"empty address", vo.TypeOther, "desc", "", vo.PriorityLow, 1},
		{"invalid priority", vo.TypeOther, "desc", "addr", vo.Priority("urgent"), 1},
		{"zero requester", vo.TypeOther, "desc", "addr", vo.PriorityLow, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServiceRequest(tt.requestType, tt.description, tt.address, tt.priority, tt.requesterID)
			assert.Error(t, err)
		})
	}
}

func TestServiceRequest_ChangeStatus(t *testing.T) {
	t.Run("entering resolved stamps resolvedAt", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.ChangeStatus(vo.StatusResolved))
		assert.Equal(t, vo.StatusResolved, r.Status())
		require.NotNil(t, r.ResolvedAt())
	})

	t.Run("entering closed stamps resolvedAt", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.ChangeStatus(vo.StatusClosed))
		require.NotNil(t, r.ResolvedAt())
	})

	t.Run("resolved to closed keeps the original timestamp", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.ChangeStatus(vo.StatusResolved))
		first := *r.ResolvedAt()
		require.NoError(t, r.ChangeStatus(vo.StatusClosed))
		assert.Equal(t, first, *r.ResolvedAt())
	})

	t.Run("leaving a terminal state clears resolvedAt", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.ChangeStatus(vo.StatusResolved))
		require.NoError(t, r.ChangeStatus(vo.StatusInProgress))
		assert.Nil(t, r.ResolvedAt())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		r := newTestRequest(t)
		assert.Error(t, r.ChangeStatus(vo.Status("reopened")))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		r := newTestRequest(t)
		before := r.UpdatedAt()
		require.NoError(t, r.ChangeStatus(vo.StatusPending))
		assert.Equal(t, before, r.UpdatedAt())
	})
}

func TestServiceRequest_AssignTo(t *testing.T) {
	r := newTestRequest(t)

	require.NoError(t, r.AssignTo(5))
	require.NotNil(t, r.AssigneeID())
	assert.Equal(t, uint(5), *r.AssigneeID())
	// Assigning a pending request moves it into progress.
	assert.Equal(t, vo.StatusInProgress, r.Status())

	assert.Error(t, r.AssignTo(0))

	r.Unassign()
	assert.Nil(t, r.AssigneeID())
}

func TestServiceRequest_UpdateDetails(t *testing.T) {
	r := newTestRequest(t)

	newType := vo.TypeBillingInquiry
	newDesc := "question about last invoice"
	newPriority := vo.PriorityHigh

	require.NoError(t, r.UpdateDetails(&newType, &newDesc, nil, &newPriority))
	assert.Equal(t, vo.TypeBillingInquiry, r.RequestType())
	assert.Equal(t, newDesc, r.Description())
	assert.Equal(t, "1 Main St", r.Address())
	assert.Equal(t, vo.PriorityHigh, r.Priority())

	empty := ""
	assert.Error(t, r.UpdateDetails(nil, &empty, nil, nil))

	badType := vo.RequestType("nope")
	assert.Error(t, r.UpdateDetails(&badType, nil, nil, nil))
}

func TestServiceRequest_CanBeViewedBy(t *testing.T) {
	r := newTestRequest(t)

	assert.True(t, r.CanBeViewedBy(1, false), "owner can view")
	assert.True(t, r.CanBeViewedBy(99, true), "staff can view")
	assert.False(t, r.CanBeViewedBy(2, false), "other customers cannot view")
}

func TestComment(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		c, err := NewComment(1, 2, "checked meter")
		require.NoError(t, err)
		assert.Equal(t, "checked meter", c.Text())
		assert.Equal(t, uint(2), c.UserID())
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := NewComment(1, 2, "")
		assert.Error(t, err)
	})

	t.Run("whitespace-only text rejected", func(t *testing.T) {
		_, err := NewComment(1, 2, "   \t ")
		assert.Error(t, err)
	})

	t.Run("id set once", func(t *testing.T) {
		c, err := NewComment(1, 2, "x")
		require.NoError(t, err)
		require.NoError(t, c.SetID(10))
		assert.Error(t, c.SetID(11))
	})
}

func TestAddComment_RequestIDMismatch(t *testing.T) {
	r := newTestRequest(t)
	require.NoError(t, r.SetID(3))

	c, err := NewComment(99, 1, "wrong parent")
	require.NoError(t, err)
	assert.Error(t, r.AddComment(c))

	ok, err := NewComment(3, 1, "right parent")
	require.NoError(t, err)
	require.NoError(t, r.AddComment(ok))
	assert.Len(t, r.Comments(), 1)
}

func TestAttachment(t *testing.T) {
	a, err := NewAttachment(1, "requests/1/abc-file.pdf", "file.pdf", "application/pdf", 1024)
	require.NoError(t, err)
	assert.Equal(t, "requests/1/abc-file.pdf", a.ObjectKey())
	assert.Equal(t, int64(1024), a.Size())

	_, err = NewAttachment(0, "k", "f", "", 0)
	assert.Error(t, err)

	_, err = NewAttachment(1, "", "f", "", 0)
	assert.Error(t, err)
}
