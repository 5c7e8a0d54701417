package repository

import (
	"time"

	"movie_ratings_api/model"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	CreateReview(review *model.Review) error
	GetReviewById(reviewId int64) (*model.Review, error)
	UpdateReviewContent(reviewId int64, content string) (*model.Review, error)
	DeleteReview(reviewId int64) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) GetReviewById(reviewId int64) (*model.Review, error) {
	var review model.Review
	err := r.db.
		First(&review, "id = ?", reviewId).
		Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) UpdateReviewContent(reviewId int64, content string) (*model.Review, error) {
	err := r.db.Model(&model.Review{}).
		Where("id = ?", reviewId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return nil, err
	}

	return r.GetReviewById(reviewId)
}

func (r *ReviewRepository) DeleteReview(reviewId int64) error {
	return r.db.Delete(&model.Review{}, "id = ?", reviewId).Error
}
