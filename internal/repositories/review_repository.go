package repositories

import (
	"gorm.io/gorm"

	"reviewboard/internal/models"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByReviewer(db *gorm.DB, reviewerID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

// FindByReviewer returns only the given user's reviews. Ordering by title
// descending is the long-standing API contract, even though recency would be
// the more natural default.
func (r *ReviewRepositoryImpl) FindByReviewer(db *gorm.DB, reviewerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("reviewer_id = ?", reviewerID).
		Order("title DESC").
		Find(&reviews).Error
	return reviews, err
}
