package services

import (
	"article-review-cms/config"
	"article-review-cms/metrics"
	"article-review-cms/repositories"

	"go.uber.org/zap"
)

// Services bundles every workflow service over one store.
type Services struct {
	Auth     AuthService
	Users    UserService
	Articles ArticleService
	Changes  ChangeService
	Reviews  ReviewService
}

func NewServices(store *repositories.Store, jwtConfig config.JWTConfig, logger *zap.Logger, workflowMetrics *metrics.WorkflowMetrics) Services {
	return Services{
		Auth:     NewAuthService(store, jwtConfig, logger),
		Users:    NewUserService(store, logger, workflowMetrics),
		Articles: NewArticleService(store, logger, workflowMetrics),
		Changes:  NewChangeService(store, logger, workflowMetrics),
		Reviews:  NewReviewService(store, logger, workflowMetrics),
	}
}
