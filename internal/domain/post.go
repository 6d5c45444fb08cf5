package domain

import (
	"time"
)

// Post представляет модель поста,
// соответствует таблице posts в бд.
// Пост всегда принадлежит ровно одному пользователю (UserID not null).
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	UserID int64 `json:"user_id" gorm:"not null;index"`
	User   *User `json:"-" gorm:"foreignKey:UserID"`
}

func (Post) TableName() string {
	return "posts"
}
