// Package validation — явные проверки входных DTO.
// Все проверки выполняются синхронно, до каких-либо обращений к хранилищу.
package validation

import (
	"fmt"
	"strings"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/mcnijman/go-emailaddress"
)

// ID проверяет идентификатор из path-параметра: он обязан быть положительным.
func ID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be a positive number.", field))
	}
	return nil
}

// UserDTO проверяет входной UserDTO целиком и возвращает ValidationError
// со списком (field, message) по всем найденным проблемам.
// Посты пользователя здесь не проверяются: на create они отбрасываются,
// на update проверяются поэлементно в ходе реконсиляции.
func UserDTO(d *dto.UserDTO) error {
	if d == nil {
		return apperrors.NewValidationError("userDTO", "UserDTO mustn't be null.")
	}

	var fields []apperrors.FieldError

	if strings.TrimSpace(d.UserName) == "" {
		fields = append(fields, apperrors.FieldError{Field: "userName", Message: "Username is empty."})
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		fields = append(fields, apperrors.FieldError{Field: "email", Message: "Email is empty."})
	default:
		if _, err := emailaddress.Parse(d.Email); err != nil {
			fields = append(fields, apperrors.FieldError{Field: "email", Message: "Invalid email format."})
		}
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

// PostDTO проверяет входной PostDTO: title обязателен и непустой.
func PostDTO(d *dto.PostDTO) error {
	if d == nil {
		return apperrors.NewValidationError("postDTO", "PostDTO mustn't be null.")
	}
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.NewValidationError("title", "Title is empty.")
	}
	return nil
}

// PostTitleAt проверяет title одного элемента списка постов при
// полной замене коллекции; field указывает на позицию элемента.
func PostTitleAt(index int, title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError(
			fmt.Sprintf("posts[%d].title", index),
			"Title is empty.",
		)
	}
	return nil
}
