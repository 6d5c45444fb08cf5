package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUseCase реализует usecase.UserUseCase через подменяемые функции.
type stubUserUseCase struct {
	getAll  func(ctx context.Context) ([]dto.UserDTO, error)
	getByID func(ctx context.Context, id int64) (dto.UserDTO, error)
	create  func(ctx context.Context, d *dto.UserDTO) (dto.UserDTO, error)
	update  func(ctx context.Context, id int64, d *dto.UserDTO) (dto.UserDTO, error)
	delete  func(ctx context.Context, id int64) error
}

func (s *stubUserUseCase) GetAllUsers(ctx context.Context) ([]dto.UserDTO, error) {
	return s.getAll(ctx)
}

func (s *stubUserUseCase) GetUserByID(ctx context.Context, id int64) (dto.UserDTO, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserUseCase) CreateNewUser(ctx context.Context, d *dto.UserDTO) (dto.UserDTO, error) {
	return s.create(ctx, d)
}

func (s *stubUserUseCase) UpdateExistingUser(ctx context.Context, id int64, d *dto.UserDTO) (dto.UserDTO, error) {
	return s.update(ctx, id, d)
}

func (s *stubUserUseCase) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func newUserRouter(uc *stubUserUseCase) http.Handler {
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Get("/users", h.GetAllUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUserByID)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)
	return r
}

func TestCreateUser_Created(t *testing.T) {
	uc := &stubUserUseCase{
		create: func(_ context.Context, d *dto.UserDTO) (dto.UserDTO, error) {
			id := int64(1)
			return dto.UserDTO{ID: &id, UserName: d.UserName, Email: d.Email, Posts: []dto.PostDTO{}}, nil
		},
	}
	router := newUserRouter(uc)

	body := bytes.NewBufferString(`{"userName":"alice","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got dto.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.ID)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.Posts)
}

func TestCreateUser_Conflict(t *testing.T) {
	uc := &stubUserUseCase{
		create: func(_ context.Context, _ *dto.UserDTO) (dto.UserDTO, error) {
			return dto.UserDTO{}, &apperrors.IntegrityError{Field: "userName", Message: "Username already exists."}
		},
	}
	router := newUserRouter(uc)

	body := bytes.NewBufferString(`{"userName":"alice","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists.")
}

func TestCreateUser_MalformedBody(t *testing.T) {
	uc := &stubUserUseCase{}
	router := newUserRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_ValidationErrorBody(t *testing.T) {
	uc := &stubUserUseCase{
		create: func(_ context.Context, _ *dto.UserDTO) (dto.UserDTO, error) {
			return dto.UserDTO{}, apperrors.NewValidationError("email", "Invalid email format.")
		},
	}
	router := newUserRouter(uc)

	body := bytes.NewBufferString(`{"userName":"alice","email":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "email", got.Fields[0].Field)
	assert.Equal(t, "Invalid email format.", got.Fields[0].Message)
}

func TestGetUserByID_NotFound(t *testing.T) {
	uc := &stubUserUseCase{
		getByID: func(_ context.Context, id int64) (dto.UserDTO, error) {
			return dto.UserDTO{}, apperrors.NewUserNotFound(id)
		},
	}
	router := newUserRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/users/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "9")
}

func TestGetUserByID_NonNumericParam(t *testing.T) {
	uc := &stubUserUseCase{}
	router := newUserRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_NoContent(t *testing.T) {
	deleted := int64(0)
	uc := &stubUserUseCase{
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	router := newUserRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/users/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), deleted)
}

func TestGetAllUsers_InternalFailureHidesDetails(t *testing.T) {
	uc := &stubUserUseCase{
		getAll: func(_ context.Context) ([]dto.UserDTO, error) {
			return nil, assert.AnError
		},
	}
	router := newUserRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error.")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
