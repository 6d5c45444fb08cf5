package payloads

import (
	"time"
)

// Действия над сущностями, попадающие в события.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEventPayload — сообщение об изменении сущности,
// публикуется в очередь после успешной записи в бд.
type EntityEventPayload struct {
	Entity     string    `json:"entity"` // "user" или "post"
	Action     string    `json:"action"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
