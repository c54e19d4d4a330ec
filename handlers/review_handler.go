package handlers

import (
	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
)

const messageReviewNotFound = "Review not found"

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService, httpHelper *helper.HTTPHelper) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: httpHelper}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Review submitted", review)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	changeID, ok := paramID(c, h.Helper, "change_id", messageReviewNotFound)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), middleware.CurrentUser(c), changeID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Review loaded", review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	changeID, ok := paramID(c, h.Helper, "change_id", messageReviewNotFound)
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), middleware.CurrentUser(c), changeID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Review updated", review)
}

func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetMyReviews(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Reviews loaded", reviews)
}

func (h *ReviewHandler) GetMyChangesReviewed(c *gin.Context) {
	reviews, err := h.reviewService.GetMyChangesReviewed(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Reviews loaded", reviews)
}
