package services

import (
	"context"
	"fmt"

	"article-review-cms/models"
	"article-review-cms/repositories"
)

const (
	messageChangeNotFound  = "Change not found"
	messageArticleNotFound = "Article not found"
	messageReviewNotFound  = "Review not found"
	messageUserNotFound    = "User not found"
)

// accept merges change into its article and denies every competing change
// proposed against the same article version. It must run inside a
// transaction; from is the status the change is expected to leave.
//
// The article row is locked before any change row is touched.
func accept(ctx context.Context, tx *repositories.Store, change *models.Change, from models.ChangeStatus) (int64, error) {
	if _, err := tx.Articles.LockForUpdate(ctx, change.ArticleID); err != nil {
		return 0, notFound(err, messageArticleNotFound)
	}

	moved, err := tx.Changes.Transition(ctx, change.ID, from, models.StatusAccepted)
	if err != nil {
		return 0, fmt.Errorf("failed to accept change %d: %w", change.ID, err)
	}
	if !moved {
		return 0, models.BadRequest("Change is no longer open for acceptance")
	}

	err = tx.Articles.Revise(ctx, change.ArticleID, map[string]any{"text": change.NewText})
	if err != nil {
		return 0, notFound(err, messageArticleNotFound)
	}

	denied, err := tx.Changes.DenySiblings(ctx, change)
	if err != nil {
		return 0, fmt.Errorf("failed to deny sibling changes: %w", err)
	}

	change.Status = models.StatusAccepted
	return denied, nil
}
