package services

import (
	"context"
	"errors"

	"article-review-cms/metrics"
	"article-review-cms/models"
	"article-review-cms/policy"
	"article-review-cms/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const messageReviewExists = "Review already exist"

type ReviewService interface {
	SubmitReview(ctx context.Context, caller *models.User, req models.CreateReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, caller *models.User, changeID uint, req models.UpdateReviewRequest) (*models.Review, error)
	GetReview(ctx context.Context, caller *models.User, changeID uint) (*models.Review, error)
	GetMyReviews(ctx context.Context, caller *models.User) ([]models.Review, error)
	GetMyChangesReviewed(ctx context.Context, caller *models.User) ([]models.Review, error)
}

type reviewService struct {
	store   *repositories.Store
	logger  *zap.Logger
	metrics *metrics.WorkflowMetrics
}

func NewReviewService(store *repositories.Store, logger *zap.Logger, metrics *metrics.WorkflowMetrics) ReviewService {
	return &reviewService{
		store:   store,
		logger:  logger.With(zap.String("service", "review_service")),
		metrics: metrics,
	}
}

// SubmitReview records the single verdict on a change. A positive verdict
// merges the change; a negative one denies it.
func (s *reviewService) SubmitReview(ctx context.Context, caller *models.User, req models.CreateReviewRequest) (*models.Review, error) {
	if err := policy.NotContributor(caller); err != nil {
		return nil, err
	}
	if req.Verdict == nil {
		return nil, models.Validation("verdict is required")
	}
	verdict := *req.Verdict

	var (
		review *models.Review
		denied int64
	)
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		change, err := tx.Changes.GetByID(ctx, req.ChangeID)
		if err != nil {
			return notFound(err, messageChangeNotFound)
		}

		exists, err := tx.Reviews.ExistsForChange(ctx, change.ID)
		if err != nil {
			return err
		}
		if exists {
			return models.BadRequest(messageReviewExists)
		}
		if change.Status.Terminal() {
			return models.BadRequest("Change is already " + string(change.Status))
		}

		review = &models.Review{
			ChangeID:   change.ID,
			Verdict:    verdict,
			Comment:    req.Comment,
			ReviewerID: caller.ID,
		}
		if err := tx.Reviews.Create(ctx, review); err != nil {
			if isDuplicateKey(err) {
				return models.BadRequest(messageReviewExists)
			}
			return err
		}

		if verdict {
			denied, err = accept(ctx, tx, change, models.StatusInReview)
			return err
		}

		moved, err := tx.Changes.Transition(ctx, change.ID, models.StatusInReview, models.StatusDenied)
		if err != nil {
			return err
		}
		if !moved {
			return models.BadRequest("Change is no longer in review")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncReviewSubmitted(verdict)
	if verdict {
		s.metrics.IncChangeAccepted()
		s.metrics.AddAutoDenied(denied)
	}
	s.logger.Info("Review submitted",
		zap.Uint("review_id", review.ID),
		zap.Uint("change_id", review.ChangeID),
		zap.Bool("verdict", verdict),
		zap.Int64("siblings_denied", denied),
		zap.Uint("reviewer_id", caller.ID))
	return review, nil
}

// UpdateReview lets an admin overturn a denial. Accepted reviews are final
// and a review can never be turned back into a denial.
func (s *reviewService) UpdateReview(ctx context.Context, caller *models.User, changeID uint, req models.UpdateReviewRequest) (*models.Review, error) {
	if err := policy.AdminOnly(caller); err != nil {
		return nil, err
	}

	var (
		review *models.Review
		denied int64
	)
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		var err error
		review, err = tx.Reviews.GetByChangeID(ctx, changeID)
		if err != nil {
			return notFound(err, messageReviewNotFound)
		}
		if review.Verdict {
			return models.BadRequest("Nothing can be done. Changes already applied.")
		}
		if req.Verdict == nil || !*req.Verdict {
			return models.BadRequest("You can`t change verdict to denied")
		}

		fields := map[string]any{"verdict": true}
		if req.Comment != nil {
			fields["comment"] = *req.Comment
		}
		if err := tx.Reviews.Update(ctx, review.ID, fields); err != nil {
			return notFound(err, messageReviewNotFound)
		}

		change, err := tx.Changes.GetByID(ctx, review.ChangeID)
		if err != nil {
			return notFound(err, messageChangeNotFound)
		}
		denied, err = accept(ctx, tx, change, models.StatusDenied)
		if err != nil {
			return err
		}

		review, err = tx.Reviews.GetByChangeID(ctx, changeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncReviewRevision()
	s.metrics.IncChangeAccepted()
	s.metrics.AddAutoDenied(denied)
	s.logger.Info("Review revised to accepted",
		zap.Uint("review_id", review.ID),
		zap.Uint("change_id", review.ChangeID),
		zap.Int64("siblings_denied", denied),
		zap.Uint("revised_by", caller.ID))
	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, caller *models.User, changeID uint) (*models.Review, error) {
	if err := policy.Authenticated(caller); err != nil {
		return nil, err
	}
	review, err := s.store.Reviews.GetByChangeID(ctx, changeID)
	if err != nil {
		return nil, notFound(err, messageReviewNotFound)
	}

	// The change may be gone when only its reviewer or an admin can see it.
	change, err := s.store.Changes.GetByID(ctx, changeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		change = nil
	} else if err != nil {
		return nil, err
	}
	if err := policy.CanViewReview(caller, review, change); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetMyReviews(ctx context.Context, caller *models.User) ([]models.Review, error) {
	if err := policy.NotContributor(caller); err != nil {
		return nil, err
	}
	return s.store.Reviews.GetByReviewerID(ctx, caller.ID)
}

func (s *reviewService) GetMyChangesReviewed(ctx context.Context, caller *models.User) ([]models.Review, error) {
	if err := policy.Authenticated(caller); err != nil {
		return nil, err
	}
	return s.store.Reviews.GetByProposerID(ctx, caller.ID)
}
