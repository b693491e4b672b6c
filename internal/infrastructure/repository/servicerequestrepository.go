package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/infrastructure/persistence/mappers"
	"gastrack/internal/infrastructure/persistence/models"
	"gastrack/internal/shared/db"
)

type ServiceRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db:     db,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *ServiceRequestRepository) Save(ctx context.Context, req *servicerequest.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *ServiceRequestRepository) Update(ctx context.Context, req *servicerequest.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	// Updates with a struct skips zero values, which would drop a cleared
	// assignee or resolution timestamp. Select forces every column through.
	if err := tx.
		Model(&models.ServiceRequestModel{}).
		Where("id = ?", model.ID).
		Select("request_type", "status", "priority", "description", "address", "assignee_id", "resolved_at", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update service request: %w", err)
	}
	return nil
}

// Delete removes the request row and cascades to its comments and
// attachments. Callers wrap it in a transaction.
func (r *ServiceRequestRepository) Delete(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("request_id = ?", requestID).Delete(&models.RequestCommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := tx.Where("request_id = ?", requestID).Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}

	result := tx.Delete(&models.ServiceRequestModel{}, requestID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service request not found")
	}
	return nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, requestID uint) (*servicerequest.ServiceRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ServiceRequestModel
	if err := tx.First(&model, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRequestRepository) List(ctx context.Context, filter servicerequest.Filter) ([]*servicerequest.ServiceRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ServiceRequestModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.RequestType != nil {
		query = query.Where("request_type = ?", filter.RequestType.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.ServiceRequestModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]*servicerequest.ServiceRequest, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

type RequestCommentRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewRequestCommentRepository(db *gorm.DB) *RequestCommentRepository {
	return &RequestCommentRepository{
		db:     db,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *RequestCommentRepository) Save(ctx context.Context, c *servicerequest.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *RequestCommentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*servicerequest.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.RequestCommentModel
	if err := tx.
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*servicerequest.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

type RequestAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewRequestAttachmentRepository(db *gorm.DB) *RequestAttachmentRepository {
	return &RequestAttachmentRepository{
		db:     db,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *RequestAttachmentRepository) Save(ctx context.Context, a *servicerequest.Attachment) error {
	model, err := r.mapper.AttachmentToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *RequestAttachmentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*servicerequest.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AttachmentModel
	if err := tx.
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*servicerequest.Attachment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}
