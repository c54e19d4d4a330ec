package repositories

import (
	"context"

	"article-review-cms/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByChangeID(ctx context.Context, changeID uint) (*models.Review, error)
	GetByReviewerID(ctx context.Context, reviewerID uint) ([]models.Review, error)
	GetByProposerID(ctx context.Context, proposerID uint) ([]models.Review, error)
	ExistsForChange(ctx context.Context, changeID uint) (bool, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	DeleteByChangeID(ctx context.Context, changeID uint) error
	ReassignReviewer(ctx context.Context, fromUserID, toUserID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByChangeID(ctx context.Context, changeID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Where("change_id = ?", changeID).First(&review).Error
	return &review, err
}

func (r *reviewRepository) GetByReviewerID(ctx context.Context, reviewerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Where("reviewer_id = ?", reviewerID).Order("id asc").Find(&reviews).Error
	return reviews, err
}

// GetByProposerID returns the reviews written on changes proposed by proposerID.
func (r *reviewRepository) GetByProposerID(ctx context.Context, proposerID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Joins("JOIN changes ON changes.id = reviews.change_id").
		Where("changes.proposer_id = ?", proposerID).
		Order("reviews.id asc").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ExistsForChange(ctx context.Context, changeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("change_id = ?", changeID).Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByChangeID removes the review of a change, if any.
func (r *reviewRepository) DeleteByChangeID(ctx context.Context, changeID uint) error {
	return r.db.WithContext(ctx).Where("change_id = ?", changeID).Delete(&models.Review{}).Error
}

func (r *reviewRepository) ReassignReviewer(ctx context.Context, fromUserID, toUserID uint) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).
		Where("reviewer_id = ?", fromUserID).
		Update("reviewer_id", toUserID).Error
}
