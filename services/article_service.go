package services

import (
	"context"
	"fmt"

	"article-review-cms/metrics"
	"article-review-cms/models"
	"article-review-cms/policy"
	"article-review-cms/repositories"

	"go.uber.org/zap"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, caller *models.User, req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(ctx context.Context, id uint) (*models.Article, error)
	GetArticles(ctx context.Context) ([]models.Article, error)
	UpdateArticle(ctx context.Context, caller *models.User, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(ctx context.Context, caller *models.User, id uint) error
}

type articleService struct {
	store   *repositories.Store
	logger  *zap.Logger
	metrics *metrics.WorkflowMetrics
}

func NewArticleService(store *repositories.Store, logger *zap.Logger, metrics *metrics.WorkflowMetrics) ArticleService {
	return &articleService{
		store:   store,
		logger:  logger.With(zap.String("service", "article_service")),
		metrics: metrics,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, caller *models.User, req models.CreateArticleRequest) (*models.Article, error) {
	if err := policy.NotContributor(caller); err != nil {
		return nil, err
	}

	article := &models.Article{
		Name:      req.Name,
		Text:      req.Text,
		Version:   0,
		CreatorID: caller.ID,
	}
	if err := s.store.Articles.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("Article created",
		zap.Uint("article_id", article.ID),
		zap.Uint("creator_id", caller.ID))
	return article, nil
}

// GetArticle is available to anonymous callers.
func (s *articleService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.store.Articles.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, messageArticleNotFound)
	}
	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context) ([]models.Article, error) {
	return s.store.Articles.GetAll(ctx)
}

// UpdateArticle edits an article directly, bypassing review. Each edit
// advances the version exactly like an accepted change.
func (s *articleService) UpdateArticle(ctx context.Context, caller *models.User, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	if err := policy.NotContributor(caller); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Text != nil {
		fields["text"] = *req.Text
	}

	var article *models.Article
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Articles.Revise(ctx, id, fields); err != nil {
			return notFound(err, messageArticleNotFound)
		}
		var err error
		article, err = tx.Articles.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Article edited",
		zap.Uint("article_id", article.ID),
		zap.Int("version", article.Version),
		zap.Uint("editor_id", caller.ID))
	return article, nil
}

// DeleteArticle removes the article together with its changes and their
// reviews, all or nothing.
func (s *articleService) DeleteArticle(ctx context.Context, caller *models.User, id uint) error {
	if err := policy.AdminOnly(caller); err != nil {
		return err
	}

	var removed int
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := tx.Articles.GetByID(ctx, id); err != nil {
			return notFound(err, messageArticleNotFound)
		}

		changes, err := tx.Changes.GetByArticleID(ctx, id)
		if err != nil {
			return err
		}
		for _, change := range changes {
			if err := tx.Reviews.DeleteByChangeID(ctx, change.ID); err != nil {
				return fmt.Errorf("failed to delete review of change %d: %w", change.ID, err)
			}
			if err := tx.Changes.Delete(ctx, change.ID); err != nil {
				return fmt.Errorf("failed to delete change %d: %w", change.ID, err)
			}
		}
		removed = len(changes)

		return notFound(tx.Articles.Delete(ctx, id), messageArticleNotFound)
	})
	if err != nil {
		return err
	}

	s.metrics.IncCascadeDelete("article")
	s.logger.Info("Article deleted",
		zap.Uint("article_id", id),
		zap.Int("changes_removed", removed),
		zap.Uint("deleted_by", caller.ID))
	return nil
}
