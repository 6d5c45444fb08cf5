package usecase

import (
	"context"

	"github.com/GoArmGo/UserPostApp/internal/dto"
)

// PostUseCase определяет интерфейс бизнес-логики работы с постами.
type PostUseCase interface {
	// GetAllPosts возвращает все посты.
	GetAllPosts(ctx context.Context) ([]dto.PostDTO, error)

	// GetPostByID возвращает пост по ID.
	// NotFoundError, если поста нет; ValidationError при id <= 0.
	GetPostByID(ctx context.Context, postID int64) (dto.PostDTO, error)

	// CreateNewPost создает новый пост для существующего пользователя.
	// Id из входного DTO отбрасывается, владельцем становится userID.
	CreateNewPost(ctx context.Context, userID int64, postDTO *dto.PostDTO) (dto.PostDTO, error)

	// UpdateExistingPost обновляет только title и text поста:
	// владелец, id и createdAt этим путем не меняются никогда.
	UpdateExistingPost(ctx context.Context, postID int64, postDTO *dto.PostDTO) (dto.PostDTO, error)

	// DeletePostByID удаляет пост по ID; несуществующий id — не ошибка.
	DeletePostByID(ctx context.Context, postID int64) error
}
