package ports

import (
	"context"

	"github.com/GoArmGo/UserPostApp/internal/messaging/payloads"
)

// EntityEventPublisher определяет методы для публикации событий об
// изменениях сущностей (создание/обновление/удаление пользователей и постов).
// Публикация — best-effort: ошибка публикации не откатывает операцию.
type EntityEventPublisher interface {
	PublishEntityEvent(ctx context.Context, payload payloads.EntityEventPayload) error
}
