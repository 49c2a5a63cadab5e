package review

import (
	"context"
	"fmt"
	"strings"

	"shipping/internal/entities"
)

const (
	minRating = 1
	maxRating = 5
)

type Service struct {
	repository        Repository
	packageRepository PackageRepository
	journeyRepository JourneyRepository
	profileRepository ProfileRepository
}

func New(
	repository Repository,
	packageRepository PackageRepository,
	journeyRepository JourneyRepository,
	profileRepository ProfileRepository,
) *Service {
	return &Service{
		repository:        repository,
		packageRepository: packageRepository,
		journeyRepository: journeyRepository,
		profileRepository: profileRepository,
	}
}

// CreateReview определяет оцениваемую сторону по типу автора:
// перевозчик оценивает отправителя посылки, все остальные - перевозчика маршрута.
// Рейтинги профилей здесь не пересчитываются.
func (s *Service) CreateReview(ctx context.Context, userID int64, reviewModify entities.ReviewModify) (*entities.Review, error) {
	if reviewModify.PackageID == nil ||
		reviewModify.Rating == nil ||
		reviewModify.Comment == nil {
		return nil, ErrMissingRequiredFields
	}

	if *reviewModify.Rating < minRating || *reviewModify.Rating > maxRating {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(*reviewModify.Comment) == "" {
		return nil, ErrInvalidComment
	}

	reviewer, err := s.profileRepository.GetUserProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reviewer profile: %w", err)
	}

	pkg, err := s.packageRepository.GetByID(ctx, *reviewModify.PackageID)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	reviewedID, reviewType, err := s.reviewTarget(ctx, reviewer, pkg)
	if err != nil {
		return nil, err
	}

	reviewModify.ReviewerID = &reviewer.ID
	reviewModify.ReviewedID = &reviewedID
	reviewModify.Type = &reviewType

	review, err := s.repository.Create(ctx, reviewModify)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *Service) reviewTarget(ctx context.Context, reviewer *entities.UserProfile, pkg *entities.Package) (int64, entities.ReviewType, error) {
	if reviewer.Type == entities.ProfileCarrier {
		sender, err := s.profileRepository.GetSenderByID(ctx, pkg.SenderID)
		if err != nil {
			return 0, "", fmt.Errorf("get sender profile: %w", err)
		}
		return sender.UserProfileID, entities.ReviewOfSender, nil
	}

	journey, err := s.journeyRepository.GetByID(ctx, pkg.JourneyID)
	if err != nil {
		return 0, "", fmt.Errorf("get journey: %w", err)
	}
	carrier, err := s.profileRepository.GetCarrierByID(ctx, journey.CarrierID)
	if err != nil {
		return 0, "", fmt.Errorf("get carrier profile: %w", err)
	}
	return carrier.UserProfileID, entities.ReviewOfCarrier, nil
}
