package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gastrack/internal/domain/servicerequest"
	vo "gastrack/internal/domain/servicerequest/valueobjects"
	"gastrack/internal/infrastructure/persistence/models"
)

// attachmentMetadata is the JSON document stored alongside the object key.
type attachmentMetadata struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ServiceRequestMapper converts between the request aggregate and its
// persistence models.
type ServiceRequestMapper interface {
	ToModel(r *servicerequest.ServiceRequest) *models.ServiceRequestModel
	ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error)
	CommentToModel(c *servicerequest.Comment) *models.RequestCommentModel
	CommentToDomain(model *models.RequestCommentModel) (*servicerequest.Comment, error)
	AttachmentToModel(a *servicerequest.Attachment) (*models.AttachmentModel, error)
	AttachmentToDomain(model *models.AttachmentModel) (*servicerequest.Attachment, error)
}

type ServiceRequestMapperImpl struct{}

func NewServiceRequestMapper() ServiceRequestMapper {
	return &ServiceRequestMapperImpl{}
}

func (m *ServiceRequestMapperImpl) ToModel(r *servicerequest.ServiceRequest) *models.ServiceRequestModel {
	model := &models.ServiceRequestModel{
		ID:          r.ID(),
		RequestType: r.RequestType().String(),
		Status:      r.Status().String(),
		Priority:    r.Priority().String(),
		Description: r.Description(),
		Address:     r.Address(),
		RequesterID: r.RequesterID(),
		AssigneeID:  r.AssigneeID(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
		UpdatedAt:   r.UpdatedAt().UnixMilli(),
	}

	if r.ResolvedAt() != nil {
		resolved := r.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

// ToDomain rebuilds the request without its comment and attachment
// collections; the repository loads those separately.
func (m *ServiceRequestMapperImpl) ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error) {
	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt)
		resolvedAt = &t
	}

	return servicerequest.ReconstructServiceRequest(
		model.ID,
		vo.RequestType(model.RequestType),
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.Description,
		model.Address,
		model.RequesterID,
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		resolvedAt,
	)
}

func (m *ServiceRequestMapperImpl) CommentToModel(c *servicerequest.Comment) *models.RequestCommentModel {
	return &models.RequestCommentModel{
		ID:        c.ID(),
		RequestID: c.RequestID(),
		UserID:    c.UserID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *ServiceRequestMapperImpl) CommentToDomain(model *models.RequestCommentModel) (*servicerequest.Comment, error) {
	return servicerequest.ReconstructComment(
		model.ID,
		model.RequestID,
		model.UserID,
		model.Text,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *ServiceRequestMapperImpl) AttachmentToModel(a *servicerequest.Attachment) (*models.AttachmentModel, error) {
	meta, err := json.Marshal(attachmentMetadata{
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachment metadata: %w", err)
	}

	return &models.AttachmentModel{
		ID:         a.ID(),
		RequestID:  a.RequestID(),
		ObjectKey:  a.ObjectKey(),
		Metadata:   meta,
		UploadedAt: a.UploadedAt().UnixMilli(),
	}, nil
}

func (m *ServiceRequestMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*servicerequest.Attachment, error) {
	var meta attachmentMetadata
	if err := json.Unmarshal(model.Metadata, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attachment metadata (id=%d): %w", model.ID, err)
	}

	return servicerequest.ReconstructAttachment(
		model.ID,
		model.RequestID,
		model.ObjectKey,
		meta.FileName,
		meta.ContentType,
		meta.Size,
		time.UnixMilli(model.UploadedAt),
	)
}
