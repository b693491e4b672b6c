package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastrack/internal/application/servicerequest/usecases"
	"gastrack/internal/shared/authorization"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/utils"
)

type ServiceRequestHandler struct {
	createUseCase     usecases.CreateRequestExecutor
	listUseCase       usecases.ListRequestsExecutor
	getUseCase        usecases.GetRequestExecutor
	updateUseCase     usecases.UpdateRequestExecutor
	deleteUseCase     usecases.DeleteRequestExecutor
	addCommentUseCase usecases.AddCommentExecutor
	uploadUseCase     usecases.UploadAttachmentExecutor
	logger            logger.Interface
}

func NewServiceRequestHandler(
	createUC usecases.CreateRequestExecutor,
	listUC usecases.ListRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	updateUC usecases.UpdateRequestExecutor,
	deleteUC usecases.DeleteRequestExecutor,
	addCommentUC usecases.AddCommentExecutor,
	uploadUC usecases.UploadAttachmentExecutor,
	logger logger.Interface,
) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		createUseCase:     createUC,
		listUseCase:       listUC,
		getUseCase:        getUC,
		updateUseCase:     updateUC,
		deleteUseCase:     deleteUC,
		addCommentUseCase: addCommentUC,
		uploadUseCase:     uploadUC,
		logger:            logger,
	}
}

type CreateRequestBody struct {
	RequestType string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Priority    string `json:"priority"`
}

type UpdateRequestBody struct {
	RequestType *string `json:"type"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssigneeID  *uint   `json:"assigned_to"`
}

type AddCommentBody struct {
	Text string `json:"text" binding:"required"`
}

func currentUser(c *gin.Context) (userID uint, isStaff bool) {
	userID = c.GetUint("user_id")
	role := authorization.ParseUserRole(c.GetString("user_role"))
	return userID, role.IsStaff()
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	userID, _ := currentUser(c)
	cmd := usecases.CreateRequestCommand{
		RequestType: body.RequestType,
		Description: body.Description,
		Address:     body.Address,
		Priority:    body.Priority,
		RequesterID: userID,
	}

	request, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, request, "service request created")
}

func (h *ServiceRequestHandler) List(c *gin.Context) {
	userID, isStaff := currentUser(c)
	page, pageSize := utils.ParsePageParams(c)

	query := usecases.ListRequestsQuery{
		UserID:      userID,
		IsStaff:     isStaff,
		Status:      c.Query("status"),
		Priority:    c.Query("priority"),
		RequestType: c.Query("type"),
		Page:        page,
		PageSize:    pageSize,
	}

	requests, total, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, requests, total, page, pageSize)
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "service request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, isStaff := currentUser(c)
	query := usecases.GetRequestQuery{
		RequestID: requestID,
		UserID:    userID,
		IsStaff:   isStaff,
	}

	request, err := h.getUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", request)
}

func (h *ServiceRequestHandler) Update(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "service request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	userID, isStaff := currentUser(c)
	cmd := usecases.UpdateRequestCommand{
		RequestID:   requestID,
		UserID:      userID,
		IsStaff:     isStaff,
		RequestType: body.RequestType,
		Description: body.Description,
		Address:     body.Address,
		Priority:    body.Priority,
		Status:      body.Status,
		AssigneeID:  body.AssigneeID,
	}

	request, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service request updated", request)
}

func (h *ServiceRequestHandler) Delete(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "service request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, isStaff := currentUser(c)
	cmd := usecases.DeleteRequestCommand{
		RequestID: requestID,
		UserID:    userID,
		IsStaff:   isStaff,
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ServiceRequestHandler) AddComment(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "service request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body AddCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	userID, isStaff := currentUser(c)
	cmd := usecases.AddCommentCommand{
		RequestID: requestID,
		UserID:    userID,
		IsStaff:   isStaff,
		Text:      body.Text,
	}

	comment, err := h.addCommentUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, comment, "comment added")
}

func (h *ServiceRequestHandler) UploadAttachment(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "service request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}
	defer file.Close()

	userID, isStaff := currentUser(c)
	cmd := usecases.UploadAttachmentCommand{
		RequestID:   requestID,
		UserID:      userID,
		IsStaff:     isStaff,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	attachment, err := h.uploadUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, attachment, "attachment uploaded")
}
