package servicerequest

import (
	"fmt"
	"strings"
	"time"
)

const maxCommentLength = 5000

// Comment is an append-only note on a service request. Comments are never
// edited or individually deleted; they disappear only when the parent
// request is deleted.
type Comment struct {
	id        uint
	requestID uint
	userID    uint
	text      string
	createdAt time.Time
}

// NewComment creates a comment by userID on the given request.
func NewComment(requestID, userID uint, text string) (*Comment, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("text exceeds maximum length of %d characters", maxCommentLength)
	}

	return &Comment{
		requestID: requestID,
		userID:    userID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

// ReconstructComment rebuilds a comment from persistence.
func ReconstructComment(id, requestID, userID uint, text string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:        id,
		requestID: requestID,
		userID:    userID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) RequestID() uint      { return c.requestID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
