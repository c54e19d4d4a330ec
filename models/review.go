package models

import (
	"time"
)

// Review is the single verdict on a change. ChangeID is unique so the
// storage layer rejects a second review even if two requests race.
type Review struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	ChangeID   uint      `json:"change_id" gorm:"uniqueIndex;not null"`
	Change     *Change   `json:"-" gorm:"foreignKey:ChangeID"`
	Verdict    bool      `json:"verdict"`
	Comment    string    `json:"comment" gorm:"size:200"`
	ReviewerID uint      `json:"reviewer_id" gorm:"index"`
	Reviewer   *User     `json:"-" gorm:"foreignKey:ReviewerID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MigrateModels lists every table in dependency order.
var MigrateModels = []any{
	&User{},
	&Article{},
	&Change{},
	&Review{},
}
