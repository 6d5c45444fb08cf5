package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/UserPostApp/internal/domain"
	"gorm.io/gorm"
)

// PostStorage реализует интерфейс ports.PostStorage с использованием GORM
type PostStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostStorage создает новый экземпляр PostStorage
func NewPostStorage(db *gorm.DB, logger *slog.Logger) *PostStorage {
	return &PostStorage{db: db, logger: logger}
}

// FindAll получает все посты из бд
func (s *PostStorage) FindAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post

	result := s.db.WithContext(ctx).Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении постов из БД: %w", result.Error)
	}
	return posts, nil
}

// FindByID получает пост по ID; (nil, nil), если не найден
func (s *PostStorage) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post

	result := s.db.WithContext(ctx).First(&post, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении поста по ID из БД: %w", result.Error)
	}
	return &post, nil
}

// Save создает или обновляет пост
func (s *PostStorage) Save(ctx context.Context, post *domain.Post) error {
	if err := s.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("ошибка при сохранении поста в БД: %w", err)
	}

	s.logger.Info("post saved in storage", "post_id", post.ID, "user_id", post.UserID)
	return nil
}

// DeleteByID удаляет пост по ID. Идемпотентен: несуществующий ID — не ошибка
func (s *PostStorage) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении поста из БД: %w", result.Error)
	}

	s.logger.Info("post deleted from storage", "post_id", id, "rows_affected", result.RowsAffected)
	return nil
}
