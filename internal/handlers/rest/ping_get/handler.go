package ping_get

import (
	"errors"
	"net/http"

	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/response"
	"shipping/pkg/logger"
)

var errStorageUnavailable = errors.New("storage unavailable")

type Handler struct {
	log    handlerLogger
	pinger Pinger
}

func New(log handlerLogger, pinger Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		pinger: pinger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("readiness check failed")
		response.JSON(w, h.log, http.StatusServiceUnavailable, dto.ErrorResponse{Error: errStorageUnavailable.Error()})
		return
	}

	message := "pong"
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
