// Package apperrors описывает доменные ошибки приложения и их
// единое отображение в HTTP-статусы.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError — одна ошибка валидации: поле и человекочитаемое сообщение.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError — некорректный или неполный ввод,
// собирается до любого обращения к хранилищу. HTTP 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError создает ValidationError для одного поля.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError — запрошенная сущность отсутствует в хранилище. HTTP 404.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with Id: %d", e.Entity, e.ID)
}

// NewUserNotFound возвращает NotFoundError для пользователя.
func NewUserNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: "User", ID: id}
}

// NewPostNotFound возвращает NotFoundError для поста.
func NewPostNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: "Post", ID: id}
}

// IntegrityError — нарушение ограничения уникальности (username/email). HTTP 409.
type IntegrityError struct {
	// Field — поле, по которому произошла коллизия ("userName", "email"),
	// пусто, если по ошибке хранилища определить не удалось.
	Field   string
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

// MapperError — нарушен внутренний инвариант (nil-сущность в маппере,
// пост без владельца). Признак бага вызывающего кода, не ошибки клиента. HTTP 400.
type MapperError struct {
	Message string
}

func (e *MapperError) Error() string {
	return e.Message
}

// MalformedRequestError — тело запроса нечитаемо или path-параметр
// не того типа. HTTP 400.
type MalformedRequestError struct {
	Message string
}

func (e *MalformedRequestError) Error() string {
	return e.Message
}

// HTTPStatus отображает доменную ошибку ровно в один HTTP-статус.
// Неклассифицированные ошибки — 500.
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		integrityErr  *IntegrityError
		mapperErr     *MapperError
		malformedErr  *MalformedRequestError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &integrityErr):
		return http.StatusConflict
	case errors.As(err, &mapperErr):
		return http.StatusBadRequest
	case errors.As(err, &malformedErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
