package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/UserPostApp/internal/config"
	"github.com/GoArmGo/UserPostApp/internal/handler"
	"github.com/GoArmGo/UserPostApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер и блокируется до отмены ctx
func runServer(
	ctx context.Context,
	cfg *config.Config,
	userUseCase usecase.UserUseCase,
	postUseCase usecase.PostUseCase,
	logger *slog.Logger,
) error {
	userHandler := handler.NewUserHandler(userUseCase, logger)
	postHandler := handler.NewPostHandler(postUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUserByID)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.GetAllPosts)
		r.Get("/{id}", postHandler.GetPostByID)
		r.Post("/{userId}", postHandler.CreatePost)
		r.Put("/{id}", postHandler.UpdatePost)
		r.Delete("/{id}", postHandler.DeletePost)
	})

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
