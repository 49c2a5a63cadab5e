package vehicle_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/entities"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/response"
	"shipping/internal/pkg/identity"
	"shipping/internal/service/vehicle"
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

	var vehicleDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	vehicleModify := entities.VehicleModify{
		LicensePlate: &vehicleDTO.LicensePlate,
		Type:         &vehicleDTO.Type,
		Brand:        &vehicleDTO.Brand,
		Capacity:     &vehicleDTO.Capacity,
		Active:       vehicleDTO.Active,
	}

	vehicleEntity, err := h.service.CreateVehicle(r.Context(), userID, vehicleModify)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidLicensePlate),
			errors.Is(err, vehicle.ErrInvalidType),
			errors.Is(err, vehicle.ErrInvalidBrand),
			errors.Is(err, vehicle.ErrInvalidCapacity):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, entities.ErrNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.Vehicle(vehicleEntity))
}
