package review_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/entities"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/response"
	"shipping/internal/pkg/identity"
	"shipping/internal/service/review"
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

	var reviewDTO dto.ReviewCreate
	err := json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, response.ErrInvalidBody)
		return
	}

	reviewModify := entities.ReviewModify{
		PackageID: &reviewDTO.PackageID,
		Rating:    &reviewDTO.Rating,
		Comment:   &reviewDTO.Comment,
	}

	reviewEntity, err := h.service.CreateReview(r.Context(), userID, reviewModify)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingRequiredFields),
			errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrInvalidComment):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, entities.ErrNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, entities.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.Review(reviewEntity))
}
