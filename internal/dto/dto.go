// Package dto содержит wire-формы сущностей, которыми обмениваемся с клиентами.
package dto

import (
	"time"
)

// UserDTO — представление пользователя на проводе.
// Id и CreatedAt назначаются сервером и игнорируются/отклоняются на create-путях.
// Значение собирается один раз целиком, мутирующих методов нет.
type UserDTO struct {
	ID        *int64    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Posts     []PostDTO `json:"posts"`
}

// PostDTO — представление поста на проводе.
type PostDTO struct {
	ID        *int64    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
}
