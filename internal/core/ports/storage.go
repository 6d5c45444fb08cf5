package ports

import (
	"context"

	"github.com/GoArmGo/UserPostApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// FindByID и FindAll возвращают пользователей вместе с их постами.
// Отсутствие записи — (nil, nil), а не ошибка.
type UserStorage interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Save создает или полностью обновляет пользователя вместе с его
	// набором постов: посты, убранные из набора, удаляются (orphan removal).
	Save(ctx context.Context, user *domain.User) error

	// DeleteByID идемпотентен: удаление несуществующего id — не ошибка.
	// Посты пользователя удаляются каскадно.
	DeleteByID(ctx context.Context, id int64) error

	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PostStorage определяет методы для взаимодействия с хранилищем постов.
type PostStorage interface {
	FindAll(ctx context.Context) ([]domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Save(ctx context.Context, post *domain.Post) error
	DeleteByID(ctx context.Context, id int64) error
}

// Repositories — набор хранилищ, привязанных к одной единице работы.
type Repositories struct {
	Users UserStorage
	Posts PostStorage
}

// TxManager выполняет fn внутри одной атомарной единицы работы:
// все чтения и записи внутри fn либо видимы вместе, либо никак.
// Уровень изоляции задается конфигурацией при создании менеджера.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
