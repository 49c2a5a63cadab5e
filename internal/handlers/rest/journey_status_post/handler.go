package journey_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/entities"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/response"
	"shipping/internal/pkg/identity"
	"shipping/internal/service/journey"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var statusDTO dto.StatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	journeyEntity, err := h.service.UpdateJourneyStatus(r.Context(), userID, id, entities.JourneyStatus(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, journey.ErrInvalidJourneyID),
			errors.Is(err, journey.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, entities.ErrNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Journey(journeyEntity))
}
