package storage

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/GoArmGo/UserPostApp/internal/core/ports"
	"gorm.io/gorm"
)

// GormTxManager реализует ports.TxManager поверх транзакций GORM.
// Уровень изоляции фиксируется конфигурацией при создании: write-пути
// с check-then-act (проверка username/email перед записью) требуют
// минимум repeatable read.
type GormTxManager struct {
	db     *gorm.DB
	opts   *sql.TxOptions
	logger *slog.Logger
}

// NewGormTxManager создает новый экземпляр GormTxManager.
// isolation: "serializable" либо "repeatable_read" (значение по умолчанию).
func NewGormTxManager(db *gorm.DB, isolation string, logger *slog.Logger) *GormTxManager {
	level := sql.LevelRepeatableRead
	if isolation == "serializable" {
		level = sql.LevelSerializable
	}

	return &GormTxManager{
		db:     db,
		opts:   &sql.TxOptions{Isolation: level},
		logger: logger,
	}
}

// RunInTx выполняет fn внутри одной транзакции, передавая ей хранилища,
// привязанные к этой транзакции. Ошибка fn откатывает все записи.
func (m *GormTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := ports.Repositories{
			Users: NewUserStorage(tx, m.logger),
			Posts: NewPostStorage(tx, m.logger),
		}
		return fn(ctx, repos)
	}, m.opts)
}
