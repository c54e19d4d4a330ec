package repositories

import (
	"context"

	"article-review-cms/models"

	"gorm.io/gorm"
)

type ChangeRepository interface {
	Create(ctx context.Context, change *models.Change) error
	GetByID(ctx context.Context, id uint) (*models.Change, error)
	GetByArticleID(ctx context.Context, articleID uint) ([]models.Change, error)
	GetByProposerID(ctx context.Context, proposerID uint) ([]models.Change, error)
	GetByStatus(ctx context.Context, status models.ChangeStatus) ([]models.Change, error)
	// Transition moves a change from one status to another and reports
	// whether the change was still in the expected status.
	Transition(ctx context.Context, id uint, from, to models.ChangeStatus) (bool, error)
	DenySiblings(ctx context.Context, change *models.Change) (int64, error)
	Delete(ctx context.Context, id uint) error
	ReassignProposer(ctx context.Context, fromUserID, toUserID uint) error
}

type changeRepository struct {
	db *gorm.DB
}

func NewChangeRepository(db *gorm.DB) ChangeRepository {
	return &changeRepository{db: db}
}

func (r *changeRepository) Create(ctx context.Context, change *models.Change) error {
	return r.db.WithContext(ctx).Create(change).Error
}

func (r *changeRepository) GetByID(ctx context.Context, id uint) (*models.Change, error) {
	var change models.Change
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&change).Error
	return &change, err
}

func (r *changeRepository) GetByArticleID(ctx context.Context, articleID uint) ([]models.Change, error) {
	var changes []models.Change
	err := r.db.WithContext(ctx).Where("article_id = ?", articleID).Order("id asc").Find(&changes).Error
	return changes, err
}

func (r *changeRepository) GetByProposerID(ctx context.Context, proposerID uint) ([]models.Change, error) {
	var changes []models.Change
	err := r.db.WithContext(ctx).Where("proposer_id = ?", proposerID).Order("id asc").Find(&changes).Error
	return changes, err
}

func (r *changeRepository) GetByStatus(ctx context.Context, status models.ChangeStatus) ([]models.Change, error) {
	var changes []models.Change
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id asc").Find(&changes).Error
	return changes, err
}

func (r *changeRepository) Transition(ctx context.Context, id uint, from, to models.ChangeStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Change{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DenySiblings denies every other change still in review that was proposed
// against the same article version as change.
func (r *changeRepository) DenySiblings(ctx context.Context, change *models.Change) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Change{}).
		Where("article_id = ? AND article_version = ? AND status = ? AND id <> ?",
			change.ArticleID, change.ArticleVersion, models.StatusInReview, change.ID).
		Update("status", models.StatusDenied)
	return result.RowsAffected, result.Error
}

func (r *changeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Change{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *changeRepository) ReassignProposer(ctx context.Context, fromUserID, toUserID uint) error {
	return r.db.WithContext(ctx).Model(&models.Change{}).
		Where("proposer_id = ?", fromUserID).
		Update("proposer_id", toUserID).Error
}
