package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/GoArmGo/UserPostApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		logger:      logger,
	}
}

// GetAllUsers — возвращает всех пользователей с их постами.
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("processing request", "endpoint", "GetAllUsers")

	users, err := h.userUseCase.GetAllUsers(r.Context())
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, users, h.logger)
}

// GetUserByID — возвращает пользователя по id.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "GetUserByID", "user_id", id)

	user, err := h.userUseCase.GetUserByID(r.Context(), id)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// CreateUser — создаёт нового пользователя; посты в теле игнорируются.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var userDTO dto.UserDTO
	if err := decodeBody(r, &userDTO); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "CreateUser", "user_name", userDTO.UserName)

	created, err := h.userUseCase.CreateNewUser(r.Context(), &userDTO)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, created, h.logger)
}

// UpdateUser — обновляет пользователя с полной заменой набора постов.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var userDTO dto.UserDTO
	if err := decodeBody(r, &userDTO); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "UpdateUser", "user_id", id)

	updated, err := h.userUseCase.UpdateExistingUser(r.Context(), id, &userDTO)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, updated, h.logger)
}

// DeleteUser — удаляет пользователя вместе с постами; идемпотентен.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "DeleteUser", "user_id", id)

	if err := h.userUseCase.DeleteUser(r.Context(), id); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
