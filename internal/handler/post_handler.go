package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/GoArmGo/UserPostApp/internal/usecase"
)

// PostHandler — обработчик HTTP-запросов для работы с постами.
type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *slog.Logger
}

// NewPostHandler создаёт новый экземпляр PostHandler.
func NewPostHandler(uc usecase.PostUseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: uc,
		logger:      logger,
	}
}

// GetAllPosts — возвращает все посты.
func (h *PostHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("processing request", "endpoint", "GetAllPosts")

	posts, err := h.postUseCase.GetAllPosts(r.Context())
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, posts, h.logger)
}

// GetPostByID — возвращает пост по id.
func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "GetPostByID", "post_id", id)

	post, err := h.postUseCase.GetPostByID(r.Context(), id)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, post, h.logger)
}

// CreatePost — создаёт новый пост для пользователя из path-параметра.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var postDTO dto.PostDTO
	if err := decodeBody(r, &postDTO); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "CreatePost", "user_id", userID)

	created, err := h.postUseCase.CreateNewPost(r.Context(), userID, &postDTO)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, created, h.logger)
}

// UpdatePost — обновляет только title и text поста.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var postDTO dto.PostDTO
	if err := decodeBody(r, &postDTO); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "UpdatePost", "post_id", id)

	updated, err := h.postUseCase.UpdateExistingPost(r.Context(), id, &postDTO)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, updated, h.logger)
}

// DeletePost — удаляет пост по id; идемпотентен.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "DeletePost", "post_id", id)

	if err := h.postUseCase.DeletePostByID(r.Context(), id); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
