package models

import (
	"time"
)

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Text      string    `json:"text" gorm:"type:text"`
	Version   int       `json:"version" gorm:"not null;default:0"`
	CreatorID uint      `json:"creator_id" gorm:"index"`
	Creator   *User     `json:"-" gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
