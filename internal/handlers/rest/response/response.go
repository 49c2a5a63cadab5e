package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/generated/dto"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

const internalErrorMessage = "internal server error"

// JSON пишет тело ответа с заданным статусом
func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет {"error": "..."}; для 5xx текст причины наружу не отдаётся
func Error(w http.ResponseWriter, log handlerLogger, status int, err error) {
	msg := internalErrorMessage
	if status < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
	}
	JSON(w, log, status, dto.ErrorResponse{Error: msg})
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidBody  = errors.New("invalid request body")
	ErrInvalidID    = errors.New("invalid id")
)
