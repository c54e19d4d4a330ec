package models

import (
	"time"
)

type ChangeStatus string

const (
	StatusInReview ChangeStatus = "in review"
	StatusAccepted ChangeStatus = "accepted"
	StatusDenied   ChangeStatus = "denied"
)

// Terminal reports whether no further verdict may be applied.
func (s ChangeStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusDenied
}

// Change is a proposed full-text replacement for an article, pinned to the
// article version it was proposed against.
type Change struct {
	ID             uint         `json:"id" gorm:"primarykey"`
	ArticleID      uint         `json:"article_id" gorm:"not null;index:idx_changes_article_version"`
	Article        *Article     `json:"-" gorm:"foreignKey:ArticleID"`
	ArticleVersion int          `json:"article_version" gorm:"not null;index:idx_changes_article_version"`
	OldText        string       `json:"old_text" gorm:"type:text"`
	NewText        string       `json:"new_text" gorm:"type:text"`
	Status         ChangeStatus `json:"status" gorm:"size:9;not null;default:'in review';index"`
	ProposerID     uint         `json:"proposer_id" gorm:"index"`
	Proposer       *User        `json:"-" gorm:"foreignKey:ProposerID"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
