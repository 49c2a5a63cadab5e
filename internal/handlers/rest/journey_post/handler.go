package journey_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var journeyDTO dto.JourneyCreate
	err := json.NewDecoder(r.Body).Decode(&journeyDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	journeyModify := entities.JourneyModify{
		VehicleID:         &journeyDTO.VehicleID,
		DepartureCity:     &journeyDTO.DepartureCity,
		ArrivalCity:       &journeyDTO.ArrivalCity,
		DepartureDate:     &journeyDTO.DepartureDate,
		CollectionDate:    &journeyDTO.CollectionDate,
		CollectionAddress: &journeyDTO.CollectionAddress,
		PricePerKg:        &journeyDTO.PricePerKg,
	}
	if journeyDTO.StopPoints != nil {
		for _, sp := range *journeyDTO.StopPoints {
			journeyModify.StopPoints = append(journeyModify.StopPoints, entities.StopPoint{
				City:           sp.City,
				Address:        sp.Address,
				CollectionDate: sp.CollectionDate,
			})
		}
	}

	journeyEntity, err := h.service.CreateJourney(r.Context(), userID, journeyModify)
	if err != nil {
		switch {
		case errors.Is(err, journey.ErrMissingRequiredFields),
			errors.Is(err, journey.ErrInvalidCity),
			errors.Is(err, journey.ErrInvalidAddress),
			errors.Is(err, journey.ErrInvalidPrice),
			errors.Is(err, journey.ErrInvalidStopPoint):
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

	response.JSON(w, h.log, http.StatusCreated, response.Journey(journeyEntity))
}
