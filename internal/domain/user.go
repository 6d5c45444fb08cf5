package domain

import (
	"time"
)

// User представляет модель пользователя в системе,
// соответствует таблице users в бд.
// Username и Email уникальны на уровне БД (unique constraint).
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserName  string    `json:"user_name" gorm:"column:username;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Posts — посты, принадлежащие пользователю.
	// Удаление пользователя каскадно удаляет его посты.
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
