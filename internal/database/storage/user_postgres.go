package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/UserPostApp/internal/domain"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// FindAll получает всех пользователей вместе с их постами.
// Порядок — порядок итерации хранилища, явной сортировки нет.
func (s *UserStorage) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	result := s.db.WithContext(ctx).Preload("Posts").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей из БД: %w", result.Error)
	}
	return users, nil
}

// FindByID получает пользователя с постами по ID; (nil, nil), если не найден
func (s *UserStorage) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User

	result := s.db.WithContext(ctx).Preload("Posts").First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по ID из БД: %w", result.Error)
	}
	return &user, nil
}

// Save создает или полностью обновляет пользователя вместе с набором постов.
// Посты, отсутствующие в переданном наборе, удаляются (orphan removal).
func (s *UserStorage) Save(ctx context.Context, user *domain.User) error {
	start := time.Now()
	tx := s.db.WithContext(ctx)

	if user.ID == 0 {
		if err := tx.Create(user).Error; err != nil {
			return translateIntegrityError(err)
		}
		s.logger.Info("user created in storage",
			"user_id", user.ID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	// Сначала удаляем посты, выпавшие из набора: FullSaveAssociations
	// умеет создавать и обновлять связанные записи, но не удалять их.
	keptIDs := make([]int64, 0, len(user.Posts))
	for i := range user.Posts {
		if user.Posts[i].ID != 0 {
			keptIDs = append(keptIDs, user.Posts[i].ID)
		}
	}

	orphanQuery := tx.Where("user_id = ?", user.ID)
	if len(keptIDs) > 0 {
		orphanQuery = orphanQuery.Where("id NOT IN ?", keptIDs)
	}
	if err := orphanQuery.Delete(&domain.Post{}).Error; err != nil {
		return fmt.Errorf("ошибка при удалении осиротевших постов: %w", err)
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error; err != nil {
		return translateIntegrityError(err)
	}

	s.logger.Info("user saved in storage",
		"user_id", user.ID,
		"posts", len(user.Posts),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteByID удаляет пользователя по ID. Идемпотентен: несуществующий ID
// не считается ошибкой. Посты удаляются каскадно (ON DELETE CASCADE).
func (s *UserStorage) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении пользователя из БД: %w", result.Error)
	}

	s.logger.Info("user deleted from storage", "user_id", id, "rows_affected", result.RowsAffected)
	return nil
}

// ExistsByUserName проверяет, занят ли username
func (s *UserStorage) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	var count int64

	result := s.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", userName).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("ошибка при проверке существования username: %w", result.Error)
	}
	return count > 0, nil
}

// ExistsByEmail проверяет, занят ли email
func (s *UserStorage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	result := s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("ошибка при проверке существования email: %w", result.Error)
	}
	return count > 0, nil
}
