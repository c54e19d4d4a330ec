package repositories

import (
	"context"

	"article-review-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetAll(ctx context.Context) ([]models.Article, error)
	// LockForUpdate loads the article and holds its row lock until the
	// surrounding transaction ends.
	LockForUpdate(ctx context.Context, id uint) (*models.Article, error)
	// Revise applies fields and bumps the version by one in the same statement.
	Revise(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	ReassignCreator(ctx context.Context, fromUserID, toUserID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	return &article, err
}

func (r *articleRepository) LockForUpdate(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	query := r.db.WithContext(ctx)
	// SQLite has no row locks; its single writer already serializes acceptance.
	if r.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.Where("id = ?", id).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Order("id asc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Revise(ctx context.Context, id uint, fields map[string]any) error {
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = gorm.Expr("version + ?", 1)

	result := r.db.WithContext(ctx).Model(&models.Article{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) ReassignCreator(ctx context.Context, fromUserID, toUserID uint) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("creator_id = ?", fromUserID).
		Update("creator_id", toUserID).Error
}
