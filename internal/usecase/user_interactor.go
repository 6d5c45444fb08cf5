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

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	txManager   ports.TxManager
	publisher   ports.EntityEventPublisher
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase.
// userStorage используется на read-путях, txManager — на write-путях.
func NewUserUseCase(
	userStorage ports.UserStorage,
	txManager ports.TxManager,
	publisher ports.EntityEventPublisher,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage: userStorage,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetAllUsers возвращает всех пользователей с их постами
func (uc *userUseCase) GetAllUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userStorage.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		userDTO, err := mapper.UserToDTO(&users[i])
		if err != nil {
			return nil, err
		}
		result = append(result, userDTO)
	}

	uc.logger.Info("all users retrieved", "count", len(result))
	return result, nil
}

// GetUserByID возвращает пользователя по ID
func (uc *userUseCase) GetUserByID(ctx context.Context, userID int64) (dto.UserDTO, error) {
	if err := validation.ID("userId", userID); err != nil {
		return dto.UserDTO{}, err
	}

	user, err := uc.userStorage.FindByID(ctx, userID)
	if err != nil {
		return dto.UserDTO{}, fmt.Errorf("usecase: %w", err)
	}
	if user == nil {
		return dto.UserDTO{}, apperrors.NewUserNotFound(userID)
	}

	uc.logger.Info("user received", "user_id", userID)
	return mapper.UserToDTO(user)
}

// CreateNewUser создает нового пользователя.
// Посты из DTO отбрасываются, id клиента отклоняется,
// уникальность username/email предварительно проверяется внутри транзакции.
func (uc *userUseCase) CreateNewUser(ctx context.Context, userDTO *dto.UserDTO) (dto.UserDTO, error) {
	if err := validation.UserDTO(userDTO); err != nil {
		return dto.UserDTO{}, err
	}
	if userDTO.ID != nil {
		return dto.UserDTO{}, apperrors.NewValidationError("id", "Id is assigned by storage and mustn't be set.")
	}

	newUser, err := mapper.UserToEntity(userDTO)
	if err != nil {
		return dto.UserDTO{}, err
	}

	// Создание постов здесь не допускается:
	// новый пользователь всегда начинает с пустым набором.
	newUser.Posts = nil

	err = uc.txManager.RunInTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if err := uc.checkUniqueness(ctx, repos.Users, newUser.UserName, newUser.Email); err != nil {
			return err
		}
		return repos.Users.Save(ctx, newUser)
	})
	if err != nil {
		return dto.UserDTO{}, err
	}

	uc.logger.Info("new user created", "user_id", newUser.ID)
	uc.publish(ctx, "user", payloads.ActionCreated, newUser.ID)

	return mapper.UserToDTO(newUser)
}

// UpdateExistingUser обновляет userName/email и полностью заменяет набор
// постов пользователя. Вся реконсиляция выполняется в одной транзакции:
// ошибка на любом шаге откатывает обновление целиком.
func (uc *userUseCase) UpdateExistingUser(ctx context.Context, userID int64, userDTO *dto.UserDTO) (dto.UserDTO, error) {
	if err := validation.ID("userId", userID); err != nil {
		return dto.UserDTO{}, err
	}
	if err := validation.UserDTO(userDTO); err != nil {
		return dto.UserDTO{}, err
	}
	// Пустой title в любом элементе списка отменяет все обновление
	// еще до первого обращения к хранилищу.
	for i := range userDTO.Posts {
		if err := validation.PostTitleAt(i, userDTO.Posts[i].Title); err != nil {
			return dto.UserDTO{}, err
		}
	}

	var updated *domain.User

	err := uc.txManager.RunInTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		existing, err := repos.Users.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("usecase: %w", err)
		}
		if existing == nil {
			return apperrors.NewUserNotFound(userID)
		}

		if existing.UserName != userDTO.UserName {
			taken, err := repos.Users.ExistsByUserName(ctx, userDTO.UserName)
			if err != nil {
				return fmt.Errorf("usecase: %w", err)
			}
			if taken {
				return &apperrors.IntegrityError{Field: "userName", Message: "Username already exists."}
			}
		}
		if existing.Email != userDTO.Email {
			taken, err := repos.Users.ExistsByEmail(ctx, userDTO.Email)
			if err != nil {
				return fmt.Errorf("usecase: %w", err)
			}
			if taken {
				return &apperrors.IntegrityError{Field: "email", Message: "Email already exists."}
			}
		}

		// CreatedAt не трогаем, применяем только userName и email.
		existing.UserName = userDTO.UserName
		existing.Email = userDTO.Email

		posts, err := uc.reconcilePosts(ctx, repos.Posts, existing, userDTO.Posts)
		if err != nil {
			return err
		}
		existing.Posts = posts

		if err := repos.Users.Save(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return dto.UserDTO{}, err
	}

	uc.logger.Info("user updated", "user_id", updated.ID, "posts", len(updated.Posts))
	uc.publish(ctx, "user", payloads.ActionUpdated, updated.ID)

	return mapper.UserToDTO(updated)
}

// reconcilePosts пересобирает набор постов пользователя из входного списка,
// в порядке входа: nil id — новый пост, известный id — мутируем существующий,
// неизвестный (устаревший) id — молча становится новым постом.
// Пост, принадлежащий другому пользователю, не присваивается, а отклоняется.
func (uc *userUseCase) reconcilePosts(
	ctx context.Context,
	postStorage ports.PostStorage,
	user *domain.User,
	postDTOs []dto.PostDTO,
) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(postDTOs))

	for i := range postDTOs {
		postDTO := &postDTOs[i]

		post := &domain.Post{}
		if postDTO.ID != nil && *postDTO.ID != 0 {
			found, err := postStorage.FindByID(ctx, *postDTO.ID)
			if err != nil {
				return nil, fmt.Errorf("usecase: %w", err)
			}
			if found != nil {
				if found.UserID != user.ID {
					return nil, apperrors.NewValidationError(
						fmt.Sprintf("posts[%d].id", i),
						fmt.Sprintf("Post with Id %d belongs to another user.", *postDTO.ID),
					)
				}
				post = found
			}
		}

		post.Title = postDTO.Title
		post.Text = postDTO.Text
		post.UserID = user.ID
		post.User = nil

		posts = append(posts, *post)
	}

	return posts, nil
}

// DeleteUser удаляет пользователя по ID, каскадно удаляя его посты.
// Идемпотентен по выбору дизайна: несуществующий id — не ошибка.
func (uc *userUseCase) DeleteUser(ctx context.Context, userID int64) error {
	if err := validation.ID("userId", userID); err != nil {
		return err
	}

	if err := uc.userStorage.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("usecase: %w", err)
	}

	uc.logger.Info("user deleted", "user_id", userID)
	uc.publish(ctx, "user", payloads.ActionDeleted, userID)
	return nil
}

// checkUniqueness — предварительная проверка уникальности ради дружелюбной
// синхронной ошибки; авторитетная защита — уникальные ограничения в бд.
func (uc *userUseCase) checkUniqueness(ctx context.Context, users ports.UserStorage, userName, email string) error {
	taken, err := users.ExistsByUserName(ctx, userName)
	if err != nil {
		return fmt.Errorf("usecase: %w", err)
	}
	if taken {
		return &apperrors.IntegrityError{Field: "userName", Message: "Username already exists."}
	}

	taken, err = users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("usecase: %w", err)
	}
	if taken {
		return &apperrors.IntegrityError{Field: "email", Message: "Email already exists."}
	}
	return nil
}

// publish отправляет событие об изменении сущности best-effort:
// неудача публикации не влияет на результат операции.
func (uc *userUseCase) publish(ctx context.Context, entity, action string, id int64) {
	payload := payloads.EntityEventPayload{
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishEntityEvent(ctx, payload); err != nil {
		uc.logger.Warn("failed to publish entity event",
			"entity", entity, "action", action, "entity_id", id, "error", err)
	}
}
