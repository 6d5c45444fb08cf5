package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/core/ports"
	"github.com/GoArmGo/UserPostApp/internal/domain"
	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/GoArmGo/UserPostApp/internal/mapper"
	"github.com/GoArmGo/UserPostApp/internal/messaging/payloads"
	"github.com/GoArmGo/UserPostApp/internal/validation"
)

// postUseCase implements PostUseCase
type postUseCase struct {
	postStorage ports.PostStorage
	txManager   ports.TxManager
	publisher   ports.EntityEventPublisher
	logger      *slog.Logger
}

// NewPostUseCase создает новый экземпляр PostUseCase
func NewPostUseCase(
	postStorage ports.PostStorage,
	txManager ports.TxManager,
	publisher ports.EntityEventPublisher,
	logger *slog.Logger,
) PostUseCase {
	return &postUseCase{
		postStorage: postStorage,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetAllPosts возвращает все посты
func (uc *postUseCase) GetAllPosts(ctx context.Context) ([]dto.PostDTO, error) {
	posts, err := uc.postStorage.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	result := make([]dto.PostDTO, 0, len(posts))
	for i := range posts {
		postDTO, err := mapper.PostToDTO(&posts[i])
		if err != nil {
			return nil, err
		}
		result = append(result, postDTO)
	}

	uc.logger.Info("all posts retrieved", "count", len(result))
	return result, nil
}

// GetPostByID возвращает пост по ID
func (uc *postUseCase) GetPostByID(ctx context.Context, postID int64) (dto.PostDTO, error) {
	if err := validation.ID("postId", postID); err != nil {
		return dto.PostDTO{}, err
	}

	post, err := uc.postStorage.FindByID(ctx, postID)
	if err != nil {
		return dto.PostDTO{}, fmt.Errorf("usecase: %w", err)
	}
	if post == nil {
		return dto.PostDTO{}, apperrors.NewPostNotFound(postID)
	}

	uc.logger.Info("post found", "post_id", postID)
	return mapper.PostToDTO(post)
}

// CreateNewPost создает новый пост для существующего пользователя.
// Id из DTO отбрасывается, владельцем назначается userID.
func (uc *postUseCase) CreateNewPost(ctx context.Context, userID int64, postDTO *dto.PostDTO) (dto.PostDTO, error) {
	if err := validation.ID("userId", userID); err != nil {
		return dto.PostDTO{}, err
	}
	if err := validation.PostDTO(postDTO); err != nil {
		return dto.PostDTO{}, err
	}

	var newPost *domain.Post

	err := uc.txManager.RunInTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		owner, err := repos.Users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("usecase: %w", err)
		}
		if owner == nil {
			return apperrors.NewUserNotFound(userID)
		}

		post, err := mapper.PostToEntity(postDTO)
		if err != nil {
			return err
		}
		post.UserID = owner.ID

		if err := repos.Posts.Save(ctx, post); err != nil {
			return err
		}

		newPost = post
		return nil
	})
	if err != nil {
		return dto.PostDTO{}, err
	}

	uc.logger.Info("new post created", "post_id", newPost.ID, "user_id", userID)
	uc.publish(ctx, payloads.ActionCreated, newPost.ID)

	return mapper.PostToDTO(newPost)
}

// UpdateExistingPost обновляет только title и text поста.
// Владелец, id и createdAt этим путем не меняются.
func (uc *postUseCase) UpdateExistingPost(ctx context.Context, postID int64, postDTO *dto.PostDTO) (dto.PostDTO, error) {
	if err := validation.ID("postId", postID); err != nil {
		return dto.PostDTO{}, err
	}
	if err := validation.PostDTO(postDTO); err != nil {
		return dto.PostDTO{}, err
	}

	var updated *domain.Post

	err := uc.txManager.RunInTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		post, err := repos.Posts.FindByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("usecase: %w", err)
		}
		if post == nil {
			return apperrors.NewPostNotFound(postID)
		}

		post.Title = postDTO.Title
		post.Text = postDTO.Text

		if err := repos.Posts.Save(ctx, post); err != nil {
			return err
		}

		updated = post
		return nil
	})
	if err != nil {
		return dto.PostDTO{}, err
	}

	uc.logger.Info("post updated", "post_id", updated.ID)
	uc.publish(ctx, payloads.ActionUpdated, updated.ID)

	return mapper.PostToDTO(updated)
}

// DeletePostByID удаляет пост по ID; идемпотентен
func (uc *postUseCase) DeletePostByID(ctx context.Context, postID int64) error {
	if err := validation.ID("postId", postID); err != nil {
		return err
	}

	if err := uc.postStorage.DeleteByID(ctx, postID); err != nil {
		return fmt.Errorf("usecase: %w", err)
	}

	uc.logger.Info("post deleted", "post_id", postID)
	uc.publish(ctx, payloads.ActionDeleted, postID)
	return nil
}

func (uc *postUseCase) publish(ctx context.Context, action string, id int64) {
	payload := payloads.EntityEventPayload{
		Entity:     "post",
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishEntityEvent(ctx, payload); err != nil {
		uc.logger.Warn("failed to publish entity event",
			"entity", "post", "action", action, "entity_id", id, "error", err)
	}
}
