package service

import (
	"context"
	"errors"
	"strings"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"

	"gorm.io/gorm"
)

type IReviewService interface {
	AddReview(ctx context.Context, userId int64, movieId string, content string) (*model.Review, error)
	UpdateReview(userId int64, reviewId int64, content string) (*model.Review, error)
	DeleteReview(userId int64, reviewId int64) error
}

type ReviewService struct {
	reviewRepo repository.IReviewRepository
	movieSvc   IMovieService
}

func NewReviewService(reviewRepo repository.IReviewRepository, movieSvc IMovieService) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieSvc:   movieSvc,
	}
}

//------------------------------------------
//------------------------------------------

func (s *ReviewService) AddReview(ctx context.Context, userId int64, movieId string, content string) (*model.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errorHandler.ValidationError(response.EmptyReviewContent)
	}

	movie, err := s.movieSvc.GetMovie(ctx, movieId)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		UserId:  userId,
		MovieId: movie.Id,
		Content: content,
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, errorHandler.DatabaseError("Error adding review", err)
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(userId int64, reviewId int64, content string) (*model.Review, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errorHandler.ValidationError(response.EmptyReviewContent)
	}

	review, err := s.getOwnedReview(userId, reviewId)
	if err != nil {
		return nil, err
	}

	updated, err := s.reviewRepo.UpdateReviewContent(review.Id, content)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error updating review", err)
	}
	return updated, nil
}

func (s *ReviewService) DeleteReview(userId int64, reviewId int64) error {
	review, err := s.getOwnedReview(userId, reviewId)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.DeleteReview(review.Id); err != nil {
		return errorHandler.DatabaseError("Error deleting review", err)
	}
	return nil
}

func (s *ReviewService) getOwnedReview(userId int64, reviewId int64) (*model.Review, error) {
	review, err := s.reviewRepo.GetReviewById(reviewId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorHandler.NotFound(response.ReviewNotFound)
		}
		return nil, errorHandler.DatabaseError("Error fetching review", err)
	}
	if review.UserId != userId {
		return nil, errorHandler.Forbidden(response.NotReviewAuthor)
	}
	return review, nil
}
