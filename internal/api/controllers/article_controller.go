package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type ArticleController struct {
	articleService services.ArticleServiceInterface
}

func NewArticleController(articleService services.ArticleServiceInterface) *ArticleController {
	return &ArticleController{articleService: articleService}
}

func (a *ArticleController) List(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	articles, total, err := a.articleService.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(articles, page, limit, total), "")
}

func (a *ArticleController) Get(c *gin.Context) {
	article, err := a.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, article, "")
}

func (a *ArticleController) Create(c *gin.Context) {
	var req request_models.UpsertArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	article, err := a.articleService.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, article, "Article created")
}

func (a *ArticleController) Update(c *gin.Context) {
	var req request_models.UpsertArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	article, err := a.articleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, article, "Article updated")
}

func (a *ArticleController) Delete(c *gin.Context) {
	if err := a.articleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Article deleted")
}

func (a *ArticleController) AddComment(c *gin.Context) {
	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	comment, err := a.articleService.AddComment(c.Request.Context(), c.Param("id"), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, comment, "Comment added")
}

func (a *ArticleController) ListComments(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	comments, total, err := a.articleService.ListComments(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(comments, page, limit, total), "")
}

// DeleteComment is allowed for the comment author or an admin.
func (a *ArticleController) DeleteComment(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := a.articleService.DeleteComment(c.Request.Context(), c.Param("commentId"), identity.ID, identity.Role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Comment deleted")
}
