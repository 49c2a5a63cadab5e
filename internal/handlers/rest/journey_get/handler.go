package journey_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/entities"
	"shipping/internal/handlers/rest/response"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	journeyEntity, err := h.service.GetJourney(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, journey.ErrInvalidJourneyID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Journey(journeyEntity))
}
