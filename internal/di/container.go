package di

import (
	"github.com/GoArmGo/UserPostApp/internal/app"
	"github.com/GoArmGo/UserPostApp/internal/config"
	"github.com/GoArmGo/UserPostApp/internal/core/ports"
	"github.com/GoArmGo/UserPostApp/internal/database/client"
	"github.com/GoArmGo/UserPostApp/internal/database/storage"
	"github.com/GoArmGo/UserPostApp/internal/logger"
	"github.com/GoArmGo/UserPostApp/internal/rabbitmq"
	"github.com/GoArmGo/UserPostApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx, применяет миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация GORM и хранилищ
	gormDB, err := storage.NewGormDB(cfg)
	if err != nil {
		return nil, err
	}

	userStorage := storage.NewUserStorage(gormDB, slogger)
	postStorage := storage.NewPostStorage(gormDB, slogger)
	txManager := storage.NewGormTxManager(gormDB, cfg.TxIsolation, slogger)

	// 4. Инициализация издателя событий: без RABBITMQ_URL — заглушка
	var publisher ports.EntityEventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		publisher = rabbitClient
	} else {
		slogger.Info("RABBITMQ_URL is not set, entity events are disabled")
	}

	// 5. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, txManager, publisher, slogger)
	postUseCase := usecase.NewPostUseCase(postStorage, txManager, publisher, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userUseCase,
		postUseCase,
		publisher,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
