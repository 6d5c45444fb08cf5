package storage

import (
	"errors"
	"fmt"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormDB открывает GORM-подключение к PostgreSQL для слоя хранилищ.
// TranslateError включен, чтобы duplicate key приходил как gorm.ErrDuplicatedKey.
func NewGormDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия GORM-соединения с БД: %w", err)
	}
	return db, nil
}

const (
	usernameConstraint = "uni_users_username"
	emailConstraint    = "uni_users_email"

	// SQLSTATE unique_violation
	pgUniqueViolation = "23505"
)

// translateIntegrityError превращает нарушение уникального ограничения
// в доменную IntegrityError, по возможности называя поле коллизии.
// Прочие ошибки возвращаются как есть.
func translateIntegrityError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return &apperrors.IntegrityError{Field: "userName", Message: "Username already exists."}
		case emailConstraint:
			return &apperrors.IntegrityError{Field: "email", Message: "Email already exists."}
		default:
			return &apperrors.IntegrityError{Message: "Unique constraint violated."}
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &apperrors.IntegrityError{Message: "Unique constraint violated."}
	}

	return err
}
