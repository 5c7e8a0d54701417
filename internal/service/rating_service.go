package service

import (
	"context"
	"errors"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"

	"gorm.io/gorm"
)

type IRatingService interface {
	AddRating(ctx context.Context, userId int64, movieId string, value int) (*model.Rating, error)
	UpdateRating(userId int64, ratingId int64, value int) (*model.Rating, error)
	DeleteRating(userId int64, ratingId int64) error
}

type RatingService struct {
	ratingRepo repository.IRatingRepository
	movieSvc   IMovieService
}

func NewRatingService(ratingRepo repository.IRatingRepository, movieSvc IMovieService) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		movieSvc:   movieSvc,
	}
}

//------------------------------------------
//------------------------------------------

// AddRating is an idempotent upsert, a second call for the same (user, movie)
// replaces the value instead of adding a row. The movie aggregate is updated
// atomically with the rating row.
func (s *RatingService) AddRating(ctx context.Context, userId int64, movieId string, value int) (*model.Rating, error) {
	if value < 1 || value > 10 {
		return nil, errorHandler.ValidationError(response.RatingOutOfRange)
	}

	movie, err := s.movieSvc.GetMovie(ctx, movieId)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.UpsertRating(userId, movie.Id, value)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error adding rating", err)
	}
	return rating, nil
}

func (s *RatingService) UpdateRating(userId int64, ratingId int64, value int) (*model.Rating, error) {
	if value < 1 || value > 10 {
		return nil, errorHandler.ValidationError(response.RatingOutOfRange)
	}

	rating, err := s.getOwnedRating(userId, ratingId)
	if err != nil {
		return nil, err
	}

	updated, err := s.ratingRepo.UpdateRatingValue(rating.Id, rating.MovieId, value)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error updating rating", err)
	}
	return updated, nil
}

func (s *RatingService) DeleteRating(userId int64, ratingId int64) error {
	rating, err := s.getOwnedRating(userId, ratingId)
	if err != nil {
		return err
	}

	if err := s.ratingRepo.DeleteRating(rating.Id, rating.MovieId); err != nil {
		return errorHandler.DatabaseError("Error deleting rating", err)
	}
	return nil
}

func (s *RatingService) getOwnedRating(userId int64, ratingId int64) (*model.Rating, error) {
	rating, err := s.ratingRepo.GetRatingById(ratingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorHandler.NotFound(response.RatingNotFound)
		}
		return nil, errorHandler.DatabaseError("Error fetching rating", err)
	}
	if rating.UserId != userId {
		return nil, errorHandler.Forbidden(response.NotRatingAuthor)
	}
	return rating, nil
}
