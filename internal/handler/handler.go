package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/go-chi/chi/v5"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// errorBody — тело ответа об ошибке; fields заполнены только для
// ошибок валидации.
type errorBody struct {
	Error  string                 `json:"error"`
	Fields []apperrors.FieldError `json:"fields,omitempty"`
}

// respondWithError — отображает доменную ошибку ровно в один HTTP-статус
// и отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := apperrors.HTTPStatus(err)

	body := errorBody{Error: err.Error()}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}

	var mapperErr *apperrors.MapperError
	switch {
	case errors.As(err, &mapperErr):
		// MapperError — признак внутреннего бага, а не ошибки клиента.
		logger.Warn("mapper invariant violated", "error", err)
	case status == http.StatusInternalServerError:
		logger.Error("unclassified internal failure", "error", err)
		body.Error = "Internal server error."
	default:
		logger.Warn("request failed", "status", status, "error", err)
	}

	respondWithJSON(w, status, body, logger)
}

// parseIDParam читает числовой path-параметр.
// Нечисловое значение — MalformedRequestError (HTTP 400).
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &apperrors.MalformedRequestError{
			Message: "Path parameter '" + name + "' must be a number.",
		}
	}
	return id, nil
}

// decodeBody читает JSON-тело запроса в dst.
// Нечитаемое или пустое тело — MalformedRequestError (HTTP 400).
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &apperrors.MalformedRequestError{Message: "Request body is missing or malformed."}
	}
	return nil
}
