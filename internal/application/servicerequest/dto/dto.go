package dto

import (
	"time"

	"gastrack/internal/domain/servicerequest"
)

type RequestDTO struct {
	ID            uint            `json:"id"`
	RequestType   string          `json:"type"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	RequesterID   uint            `json:"created_by"`
	RequesterName string          `json:"created_by_name,omitempty"`
	AssigneeID    *uint           `json:"assigned_to"`
	AssigneeName  *string         `json:"assigned_to_name"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ResolvedAt    *time.Time      `json:"resolved_at"`
	Comments      []CommentDTO    `json:"comments"`
	Attachments   []AttachmentDTO `json:"attachments"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user"`
	UserName  string    `json:"user_name,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type RequestListItemDTO struct {
	ID            uint       `json:"id"`
	RequestType   string     `json:"type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Description   string     `json:"description"`
	Address       string     `json:"address"`
	RequesterID   uint       `json:"created_by"`
	RequesterName string     `json:"created_by_name,omitempty"`
	AssigneeID    *uint      `json:"assigned_to"`
	AssigneeName  *string    `json:"assigned_to_name"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ResolvedAt    *time.Time `json:"resolved_at"`
}

// ToRequestDTO maps the aggregate with its loaded comments and attachments.
// userNames resolves user IDs to display names; unknown IDs map to "".
func ToRequestDTO(r *servicerequest.ServiceRequest, userNames map[uint]string, attachmentURLs map[uint]string) *RequestDTO {
	if r == nil {
		return nil
	}

	comments := make([]CommentDTO, 0)
	for _, c := range r.Comments() {
		comments = append(comments, ToCommentDTO(c, userNames[c.UserID()]))
	}

	attachments := make([]AttachmentDTO, 0)
	for _, a := range r.Attachments() {
		attachments = append(attachments, ToAttachmentDTO(a, attachmentURLs[a.ID()]))
	}

	d := &RequestDTO{
		ID:          r.ID(),
		RequestType: r.RequestType().String(),
		Status:      r.Status().String(),
		Priority:    r.Priority().String(),
		Description: r.Description(),
		Address:     r.Address(),
		RequesterID: r.RequesterID(),
		AssigneeID:  r.AssigneeID(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
		ResolvedAt:  r.ResolvedAt(),
		Comments:    comments,
		Attachments: attachments,
	}
	d.RequesterName = userNames[r.RequesterID()]
	if r.AssigneeID() != nil {
		name := userNames[*r.AssigneeID()]
		d.AssigneeName = &name
	}
	return d
}

func ToCommentDTO(c *servicerequest.Comment, userName string) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		UserID:    c.UserID(),
		UserName:  userName,
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *servicerequest.Attachment, url string) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		URL:         url,
		UploadedAt:  a.UploadedAt(),
	}
}

func ToRequestListItemDTO(r *servicerequest.ServiceRequest, userNames map[uint]string) RequestListItemDTO {
	item := RequestListItemDTO{
		ID:            r.ID(),
		RequestType:   r.RequestType().String(),
		Status:        r.Status().String(),
		Priority:      r.Priority().String(),
		Description:   r.Description(),
		Address:       r.Address(),
		RequesterID:   r.RequesterID(),
		RequesterName: userNames[r.RequesterID()],
		AssigneeID:    r.AssigneeID(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
		ResolvedAt:    r.ResolvedAt(),
	}
	if r.AssigneeID() != nil {
		name := userNames[*r.AssigneeID()]
		item.AssigneeName = &name
	}
	return item
}
