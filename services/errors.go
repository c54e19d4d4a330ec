package services

import (
	"errors"
	"strings"

	"article-review-cms/models"

	"gorm.io/gorm"
)

// notFound turns a missing record into a typed NotFound and passes any other
// error through unchanged.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFound(message)
	}
	return err
}

// isDuplicateKey reports a uniqueness violation. Drivers without error
// translation are matched on their message.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
