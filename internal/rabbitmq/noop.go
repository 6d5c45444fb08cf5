package rabbitmq

import (
	"context"

	"github.com/GoArmGo/UserPostApp/internal/messaging/payloads"
)

// NoopPublisher — заглушка для запуска без RabbitMQ (RABBITMQ_URL не задан).
type NoopPublisher struct{}

func (NoopPublisher) PublishEntityEvent(_ context.Context, _ payloads.EntityEventPayload) error {
	return nil
}
