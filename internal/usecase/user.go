package usecase

import (
	"context"

	"github.com/GoArmGo/UserPostApp/internal/dto"
)

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями.
type UserUseCase interface {
	// GetAllUsers возвращает всех пользователей вместе с их постами.
	GetAllUsers(ctx context.Context) ([]dto.UserDTO, error)

	// GetUserByID возвращает пользователя по ID.
	// NotFoundError, если пользователя нет; ValidationError при id <= 0.
	GetUserByID(ctx context.Context, userID int64) (dto.UserDTO, error)

	// CreateNewUser создает нового пользователя из DTO.
	// Посты из входного DTO отбрасываются: создание постов как побочный
	// эффект создания пользователя не допускается. Id клиента отклоняется.
	CreateNewUser(ctx context.Context, userDTO *dto.UserDTO) (dto.UserDTO, error)

	// UpdateExistingUser применяет userName/email из DTO и полностью
	// заменяет набор постов пользователя: существующие посты матчатся
	// по id и мутируются, неизвестные id становятся новыми постами,
	// выпавшие из набора посты удаляются.
	UpdateExistingUser(ctx context.Context, userID int64, userDTO *dto.UserDTO) (dto.UserDTO, error)

	// DeleteUser удаляет пользователя и каскадно все его посты.
	// Удаление несуществующего id — не ошибка.
	DeleteUser(ctx context.Context, userID int64) error
}
