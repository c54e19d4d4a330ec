package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one connection or transaction.
type Store struct {
	db       *gorm.DB
	Users    UserRepository
	Articles ArticleRepository
	Changes  ChangeRepository
	Reviews  ReviewRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Articles: NewArticleRepository(db),
		Changes:  NewChangeRepository(db),
		Reviews:  NewReviewRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single database
// transaction. Returning an error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
