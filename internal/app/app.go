package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/UserPostApp/internal/config"
	"github.com/GoArmGo/UserPostApp/internal/core/ports"
	"github.com/GoArmGo/UserPostApp/internal/database/client"
	"github.com/GoArmGo/UserPostApp/internal/usecase"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	dbClient    *client.Client
	userUseCase usecase.UserUseCase
	postUseCase usecase.PostUseCase
	publisher   ports.EntityEventPublisher
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userUseCase usecase.UserUseCase,
	postUseCase usecase.PostUseCase,
	publisher ports.EntityEventPublisher,
) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		dbClient:    dbClient,
		userUseCase: userUseCase,
		postUseCase: postUseCase,
		publisher:   publisher,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.userUseCase, a.postUseCase, a.logger); err != nil {
		return err
	}

	a.logger.Info("shutting down application")

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("error during shutdown", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если publisher имеет метод Close — вызываем его
	if closer, ok := a.publisher.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
