package handlers

import (
	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
)

const messageArticleNotFound = "Article not found"

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleService.GetArticles(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageArticleNotFound)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageArticleNotFound)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageArticleNotFound)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}
