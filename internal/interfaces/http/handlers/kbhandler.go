package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastrack/internal/application/kb/usecases"
	"gastrack/internal/shared/utils"
)

type KBHandler struct {
	listUseCase usecases.ListArticlesExecutor
	getUseCase  usecases.GetArticleExecutor
}

func NewKBHandler(listUC usecases.ListArticlesExecutor, getUC usecases.GetArticleExecutor) *KBHandler {
	return &KBHandler{
		listUseCase: listUC,
		getUseCase:  getUC,
	}
}

func (h *KBHandler) List(c *gin.Context) {
	articles, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", articles)
}

func (h *KBHandler) Get(c *gin.Context) {
	query := usecases.GetArticleQuery{
		Slug: c.Param("slug"),
	}

	article, err := h.getUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", article)
}
