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

type ChangeService interface {
	CreateChange(ctx context.Context, caller *models.User, req models.CreateChangeRequest) (*models.Change, error)
	GetChange(ctx context.Context, caller *models.User, id uint) (*models.Change, error)
	DeleteChange(ctx context.Context, caller *models.User, id uint) error
	GetMyChanges(ctx context.Context, caller *models.User) ([]models.Change, error)
	GetChangesInReview(ctx context.Context, caller *models.User) ([]models.Change, error)
}

type changeService struct {
	store   *repositories.Store
	logger  *zap.Logger
	metrics *metrics.WorkflowMetrics
}

func NewChangeService(store *repositories.Store, logger *zap.Logger, metrics *metrics.WorkflowMetrics) ChangeService {
	return &changeService{
		store:   store,
		logger:  logger.With(zap.String("service", "change_service")),
		metrics: metrics,
	}
}

// CreateChange proposes new text for an article, pinned to the article's
// current version and text.
func (s *changeService) CreateChange(ctx context.Context, caller *models.User, req models.CreateChangeRequest) (*models.Change, error) {
	if err := policy.Authenticated(caller); err != nil {
		return nil, err
	}

	var change *models.Change
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		article, err := tx.Articles.GetByID(ctx, req.ArticleID)
		if err != nil {
			return notFound(err, messageArticleNotFound)
		}

		change = &models.Change{
			ArticleID:      article.ID,
			ArticleVersion: article.Version,
			OldText:        article.Text,
			NewText:        req.NewText,
			Status:         models.StatusInReview,
			ProposerID:     caller.ID,
		}
		return tx.Changes.Create(ctx, change)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncChangeProposed()
	s.logger.Info("Change proposed",
		zap.Uint("change_id", change.ID),
		zap.Uint("article_id", change.ArticleID),
		zap.Int("article_version", change.ArticleVersion),
		zap.Uint("proposer_id", caller.ID))
	return change, nil
}

func (s *changeService) GetChange(ctx context.Context, caller *models.User, id uint) (*models.Change, error) {
	if err := policy.Authenticated(caller); err != nil {
		return nil, err
	}
	change, err := s.store.Changes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, messageChangeNotFound)
	}
	if err := policy.CanViewChange(caller, change); err != nil {
		return nil, err
	}
	return change, nil
}

func (s *changeService) DeleteChange(ctx context.Context, caller *models.User, id uint) error {
	if err := policy.AdminOnly(caller); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if _, err := tx.Changes.GetByID(ctx, id); err != nil {
			return notFound(err, messageChangeNotFound)
		}
		if err := tx.Reviews.DeleteByChangeID(ctx, id); err != nil {
			return fmt.Errorf("failed to delete review of change %d: %w", id, err)
		}
		return notFound(tx.Changes.Delete(ctx, id), messageChangeNotFound)
	})
	if err != nil {
		return err
	}

	s.metrics.IncCascadeDelete("change")
	s.logger.Info("Change deleted",
		zap.Uint("change_id", id),
		zap.Uint("deleted_by", caller.ID))
	return nil
}

func (s *changeService) GetMyChanges(ctx context.Context, caller *models.User) ([]models.Change, error) {
	if err := policy.Authenticated(caller); err != nil {
		return nil, err
	}
	return s.store.Changes.GetByProposerID(ctx, caller.ID)
}

func (s *changeService) GetChangesInReview(ctx context.Context, caller *models.User) ([]models.Change, error) {
	if err := policy.NotContributor(caller); err != nil {
		return nil, err
	}
	return s.store.Changes.GetByStatus(ctx, models.StatusInReview)
}
