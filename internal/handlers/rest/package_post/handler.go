package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/entities"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/response"
	"shipping/internal/pkg/identity"
	"shipping/internal/service/parcel"
	"shipping/pkg/logger"
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

	var packageDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&packageDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	size := entities.PackageSize(packageDTO.Size)
	packageModify := entities.PackageModify{
		JourneyID:      &packageDTO.JourneyID,
		SenderIDCard:   &packageDTO.SenderIDCard,
		SenderPhone:    &packageDTO.SenderPhone,
		RecipientPhone: &packageDTO.RecipientPhone,
		Size:           &size,
		Weight:         &packageDTO.Weight,
		Contents:       packageDTO.Contents,
	}

	packageEntity, err := h.service.CreatePackage(r.Context(), userID, packageModify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidSize),
			errors.Is(err, parcel.ErrInvalidWeight),
			errors.Is(err, parcel.ErrInvalidPhone),
			errors.Is(err, parcel.ErrInvalidIDCard),
			errors.Is(err, parcel.ErrInvalidContents):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, parcel.ErrInsufficientCapacity):
			h.log.With(
				logger.NewField("journey_id", packageDTO.JourneyID),
				logger.NewField("weight", packageDTO.Weight.String()),
			).Info("package rejected: insufficient capacity")
			response.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, entities.ErrNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.Package(packageEntity))
}
