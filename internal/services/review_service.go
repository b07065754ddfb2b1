package services

import (
	"gorm.io/gorm"

	"reviewboard/internal/models"
	"reviewboard/internal/repositories"
	"reviewboard/internal/services/dto"
	"reviewboard/pkg/apperrors"
)

// ReviewService creates and lists reviews for the authenticated caller.
// Visibility is always scoped to the owner; there is no admin override.
type ReviewService interface {
	CreateReview(db *gorm.DB, reviewer *models.User, sourceIP string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListForUser(db *gorm.DB, reviewer *models.User) ([]dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// CreateReview persists a review owned by the caller. Reviewer and IP come
// from the authenticated session and the transport origin, never from the
// request body.
func (s *reviewService) CreateReview(db *gorm.DB, reviewer *models.User, sourceIP string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &models.Review{
		Title:      req.Title,
		Rating:     req.Rating,
		Summary:    req.Summary,
		Company:    req.Company,
		IP:         sourceIP,
		ReviewerID: reviewer.ID,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildReviewResponse(review), nil
}

// ListForUser returns the caller's own reviews, title descending.
func (s *reviewService) ListForUser(db *gorm.DB, reviewer *models.User) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByReviewer(db, reviewer.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *buildReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:             review.ID,
		Title:          review.Title,
		Rating:         review.Rating,
		Summary:        review.Summary,
		SubmissionDate: review.SubmissionDate,
		Company:        review.Company,
	}
}
