package services

import (
	"context"
	"fmt"

	"article-review-cms/metrics"
	"article-review-cms/models"
	"article-review-cms/policy"
	"article-review-cms/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetUser(ctx context.Context, caller *models.User, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, caller *models.User, id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, caller *models.User, id uint) error
	ChangeStatus(ctx context.Context, caller *models.User, id uint, role models.UserRole) (*models.User, error)
}

type userService struct {
	store   *repositories.Store
	logger  *zap.Logger
	metrics *metrics.WorkflowMetrics
}

func NewUserService(store *repositories.Store, logger *zap.Logger, metrics *metrics.WorkflowMetrics) UserService {
	return &userService{
		store:   store,
		logger:  logger.With(zap.String("service", "user_service")),
		metrics: metrics,
	}
}

// getExisting loads a user and hides the sentinel account.
func getExisting(ctx context.Context, users repositories.UserRepository, id uint) (*models.User, error) {
	if id == models.SentinelUserID {
		return nil, models.NotFound(messageUserNotFound)
	}
	user, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, messageUserNotFound)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, caller *models.User, id uint) (*models.User, error) {
	user, err := getExisting(ctx, s.store.Users, id)
	if err != nil {
		return nil, err
	}
	if err := policy.SelfOrAdmin(caller, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, caller *models.User, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := getExisting(ctx, s.store.Users, id)
	if err != nil {
		return nil, err
	}
	if err := policy.SelfOrAdmin(caller, user.ID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashed)
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := s.store.Users.Update(ctx, user.ID, fields); err != nil {
		return nil, notFound(err, messageUserNotFound)
	}
	return s.store.Users.GetByID(ctx, user.ID)
}

// DeleteUser hands every article, change and review of the user over to the
// sentinel account before removing the user row.
func (s *userService) DeleteUser(ctx context.Context, caller *models.User, id uint) error {
	user, err := getExisting(ctx, s.store.Users, id)
	if err != nil {
		return err
	}
	if err := policy.SelfOrAdmin(caller, user.ID); err != nil {
		return err
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if user.IsAdmin() {
			admins, err := tx.Users.CountByRole(ctx, models.RoleAdmin)
			if err != nil {
				return err
			}
			if err := policy.LeavesAnAdmin(user, models.RoleContributor, admins); err != nil {
				return err
			}
		}

		if err := tx.Users.EnsureSentinel(ctx); err != nil {
			return fmt.Errorf("failed to provision sentinel user: %w", err)
		}
		if err := tx.Reviews.ReassignReviewer(ctx, user.ID, models.SentinelUserID); err != nil {
			return fmt.Errorf("failed to reassign reviews: %w", err)
		}
		if err := tx.Changes.ReassignProposer(ctx, user.ID, models.SentinelUserID); err != nil {
			return fmt.Errorf("failed to reassign changes: %w", err)
		}
		if err := tx.Articles.ReassignCreator(ctx, user.ID, models.SentinelUserID); err != nil {
			return fmt.Errorf("failed to reassign articles: %w", err)
		}
		return notFound(tx.Users.Delete(ctx, user.ID), messageUserNotFound)
	})
	if err != nil {
		return err
	}

	s.metrics.IncCascadeDelete("user")
	s.logger.Info("User deleted",
		zap.Uint("user_id", user.ID),
		zap.Uint("deleted_by", caller.ID))
	return nil
}

func (s *userService) ChangeStatus(ctx context.Context, caller *models.User, id uint, role models.UserRole) (*models.User, error) {
	if err := policy.AdminOnly(caller); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		target, err := getExisting(ctx, tx.Users, id)
		if err != nil {
			return err
		}

		admins, err := tx.Users.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return err
		}
		if err := policy.CanChangeRole(caller, target, role, admins); err != nil {
			return err
		}

		if err := tx.Users.Update(ctx, target.ID, map[string]any{"role": role}); err != nil {
			return notFound(err, messageUserNotFound)
		}
		updated, err = tx.Users.GetByID(ctx, target.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User role changed",
		zap.Uint("user_id", updated.ID),
		zap.String("role", updated.Role.String()),
		zap.Uint("changed_by", caller.ID))
	return updated, nil
}
