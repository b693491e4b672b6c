package servicerequest

import (
	"fmt"
	"time"

	vo "gastrack/internal/domain/servicerequest/valueobjects"
)

const maxDescriptionLength = 5000

// ServiceRequest is the aggregate root for a customer service request.
// The requester is fixed at creation; status, priority and assignee are
// mutated over time by staff.
type ServiceRequest struct {
	id          uint
	requestType vo.RequestType
	status      vo.Status
	priority    vo.Priority
	description string
	address     string
	requesterID uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	comments    []*Comment
	attachments []*Attachment
}

// NewServiceRequest creates a request owned by requesterID. Status always
// starts at pending and no assignee is set, regardless of what the caller
// supplied on the wire.
func NewServiceRequest(
	requestType vo.RequestType,
	description string,
	address string,
	priority vo.Priority,
	requesterID uint,
) (*ServiceRequest, error) {
	if !requestType.IsValid() {
		return nil, fmt.Errorf("invalid request type")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now()
	return &ServiceRequest{
		requestType: requestType,
		status:      vo.StatusPending,
		priority:    priority,
		description: description,
		address:     address,
		requesterID: requesterID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
		attachments: []*Attachment{},
	}, nil
}

// ReconstructServiceRequest rebuilds a request from persistence.
func ReconstructServiceRequest(
	id uint,
	requestType vo.RequestType,
	status vo.Status,
	priority vo.Priority,
	description string,
	address string,
	requesterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*ServiceRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("service request ID cannot be zero")
	}
	if !requestType.IsValid() {
		return nil, fmt.Errorf("invalid request type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &ServiceRequest{
		id:          id,
		requestType: requestType,
		status:      status,
		priority:    priority,
		description: description,
		address:     address,
		requesterID: requesterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		comments:    []*Comment{},
		attachments: []*Attachment{},
	}, nil
}

func (r *ServiceRequest) ID() uint                    { return r.id }
func (r *ServiceRequest) RequestType() vo.RequestType { return r.requestType }
func (r *ServiceRequest) Status() vo.Status           { return r.status }
func (r *ServiceRequest) Priority() vo.Priority       { return r.priority }
func (r *ServiceRequest) Description() string         { return r.description }
func (r *ServiceRequest) Address() string             { return r.address }
func (r *ServiceRequest) RequesterID() uint           { return r.requesterID }
func (r *ServiceRequest) AssigneeID() *uint           { return r.assigneeID }
func (r *ServiceRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *ServiceRequest) UpdatedAt() time.Time        { return r.updatedAt }
func (r *ServiceRequest) ResolvedAt() *time.Time      { return r.resolvedAt }

func (r *ServiceRequest) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(r.comments))
	copy(commentsCopy, r.comments)
	return commentsCopy
}

func (r *ServiceRequest) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(r.attachments))
	copy(attachmentsCopy, r.attachments)
	return attachmentsCopy
}

func (r *ServiceRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("service request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service request ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails changes the describable fields of the request. Empty values
// leave the current field untouched.
func (r *ServiceRequest) UpdateDetails(requestType *vo.RequestType, description, address *string, priority *vo.Priority) error {
	if requestType != nil {
		if !requestType.IsValid() {
			return fmt.Errorf("invalid request type: %s", *requestType)
		}
		r.requestType = *requestType
	}
	if description != nil {
		if len(*description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		if len(*description) > maxDescriptionLength {
			return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
		}
		r.description = *description
	}
	if address != nil {
		if len(*address) == 0 {
			return fmt.Errorf("address cannot be empty")
		}
		r.address = *address
	}
	if priority != nil {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", *priority)
		}
		r.priority = *priority
	}

	r.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the request to a new status. Entering a terminal status
// stamps resolvedAt; leaving terminal states clears it again.
func (r *ServiceRequest) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if r.status == newStatus {
		return nil
	}

	wasTerminal := r.status.IsTerminal()
	r.status = newStatus
	r.updatedAt = time.Now()

	if newStatus.IsTerminal() && r.resolvedAt == nil {
		now := time.Now()
		r.resolvedAt = &now
	}

	if wasTerminal && !newStatus.IsTerminal() {
		r.resolvedAt = nil
	}

	return nil
}

// AssignTo hands the request to a staff member.
func (r *ServiceRequest) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	r.assigneeID = &assigneeID
	r.updatedAt = time.Now()

	if r.status.IsPending() {
		r.status = vo.StatusInProgress
	}

	return nil
}

// Unassign removes the current assignee.
func (r *ServiceRequest) Unassign() {
	r.assigneeID = nil
	r.updatedAt = time.Now()
}

// AddComment appends a comment to the in-memory aggregate.
func (r *ServiceRequest) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.RequestID() != r.id {
		return fmt.Errorf("comment request ID mismatch")
	}

	r.comments = append(r.comments, comment)
	r.updatedAt = time.Now()
	return nil
}

// AttachComments replaces the loaded comment collection.
func (r *ServiceRequest) AttachComments(comments []*Comment) {
	r.comments = comments
}

// AttachFiles replaces the loaded attachment collection.
func (r *ServiceRequest) AttachFiles(attachments []*Attachment) {
	r.attachments = attachments
}

// CanBeViewedBy reports whether the given user may see this request.
// Staff see everything; customers only their own requests.
func (r *ServiceRequest) CanBeViewedBy(userID uint, isStaff bool) bool {
	if isStaff {
		return true
	}
	return r.requesterID == userID
}
