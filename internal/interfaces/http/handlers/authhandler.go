package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gastrack/internal/application/user/usecases"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase   usecases.RegisterExecutor
	loginUseCase      usecases.LoginExecutor
	logoutUseCase     usecases.LogoutExecutor
	getProfileUseCase usecases.GetProfileExecutor
	logger            logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	getProfileUC usecases.GetProfileExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:   registerUC,
		loginUseCase:      loginUC,
		logoutUseCase:     logoutUC,
		getProfileUseCase: getProfileUC,
		logger:            logger,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	cmd := usecases.RegisterCommand{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Address:   req.Address,
		Phone:     req.Phone,
	}

	newUser, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err, "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newUser, "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	cmd := usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		// A flat error body with a 400, so clients cannot distinguish a bad
		// password from an unknown email by shape or status.
		if stderrors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		h.logger.Errorw("login failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cmd := usecases.LogoutCommand{
		SessionID: c.GetString("session_id"),
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("logout failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	query := usecases.GetProfileQuery{
		UserID: c.GetUint("user_id"),
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}
