package handlers

import (
	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
)

const messageChangeNotFound = "Change not found"

type ChangeHandler struct {
	changeService services.ChangeService
	Helper        *helper.HTTPHelper
}

func NewChangeHandler(changeService services.ChangeService, httpHelper *helper.HTTPHelper) *ChangeHandler {
	return &ChangeHandler{changeService: changeService, Helper: httpHelper}
}

func (h *ChangeHandler) CreateChange(c *gin.Context) {
	var req models.CreateChangeRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	change, err := h.changeService.CreateChange(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Change proposed", change)
}

func (h *ChangeHandler) GetChange(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageChangeNotFound)
	if !ok {
		return
	}

	change, err := h.changeService.GetChange(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Change loaded", change)
}

func (h *ChangeHandler) DeleteChange(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageChangeNotFound)
	if !ok {
		return
	}

	if err := h.changeService.DeleteChange(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Change deleted", h.Helper.EmptyJsonMap())
}

func (h *ChangeHandler) GetMyChanges(c *gin.Context) {
	changes, err := h.changeService.GetMyChanges(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Changes loaded", changes)
}

func (h *ChangeHandler) GetChangesInReview(c *gin.Context) {
	changes, err := h.changeService.GetChangesInReview(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Changes loaded", changes)
}
