package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/internal/tmdb"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"

	"gorm.io/gorm"
)

type IMovieService interface {
	GetMovie(ctx context.Context, movieId string) (*model.Movie, error)
	GetMovies(ctx context.Context, page int) ([]tmdb.MappedMovie, error)
	MoviesByTitle(title string) ([]model.Movie, error)
	AddMovie(ctx context.Context, data model.MovieCreateData) (*model.Movie, error)
	TmdbMovieDetails(ctx context.Context, tmdbId int64) (*tmdb.MovieExtraRes, error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchRes, error)
	GetRecommendations(ctx context.Context, tmdbId int64, page int) ([]tmdb.MappedMovie, error)
	GetPopularMovies(ctx context.Context, page int) ([]tmdb.MappedMovie, error)
}

type MovieService struct {
	movieRepo  repository.IMovieRepository
	tmdbClient tmdb.IClient
}

func NewMovieService(movieRepo repository.IMovieRepository, tmdbClient tmdb.IClient) *MovieService {
	return &MovieService{
		movieRepo:  movieRepo,
		tmdbClient: tmdbClient,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovie resolves a movie id. Ids of the `tmdb-<id>` form reference catalog
// entries that may not be persisted yet, those are materialized on first
// access and live as regular rows afterwards.
func (s *MovieService) GetMovie(ctx context.Context, movieId string) (*model.Movie, error) {
	if tmdbId, ok := tmdb.ParseExternalId(movieId); ok {
		return s.materializeMovie(ctx, tmdbId)
	}

	id, err := strconv.ParseInt(movieId, 10, 64)
	if err != nil {
		return nil, errorHandler.BadRequest("Invalid movie id")
	}

	movie, err := s.movieRepo.GetMovieById(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorHandler.NotFound(response.MovieNotFound)
		}
		return nil, errorHandler.DatabaseError("Error fetching movie", err)
	}
	return movie, nil
}

func (s *MovieService) materializeMovie(ctx context.Context, tmdbId int64) (*model.Movie, error) {
	movie, err := s.movieRepo.GetMovieByTmdbId(tmdbId)
	if err == nil {
		return movie, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorHandler.DatabaseError("Error fetching movie", err)
	}

	details, err := s.tmdbClient.GetMovieDetails(ctx, tmdbId)
	if err != nil {
		return nil, errorHandler.UpstreamError(response.MovieNotFoundTmdb, err)
	}

	newMovie := &model.Movie{
		Title:         details.Title,
		Description:   details.Overview,
		ReleaseYear:   tmdb.ReleaseYear(details.ReleaseDate),
		ImageSrc:      tmdb.FullImageUrl(details.PosterPath),
		AverageRating: details.VoteAverage,
		TmdbId:        &tmdbId,
		VoteCount:     details.VoteCount,
	}
	if err := s.movieRepo.CreateMovie(newMovie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a materialization race, the row exists now
			return s.movieRepo.GetMovieByTmdbId(tmdbId)
		}
		return nil, errorHandler.DatabaseError("Error saving movie", err)
	}

	return newMovie, nil
}

// GetMovies backs the browse page, it serves the popular list straight from
// the catalog api rather than the local table.
func (s *MovieService) GetMovies(ctx context.Context, page int) ([]tmdb.MappedMovie, error) {
	return s.GetPopularMovies(ctx, page)
}

func (s *MovieService) MoviesByTitle(title string) ([]model.Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errorHandler.BadRequest(response.EmptySearchTitle)
	}

	movies, err := s.movieRepo.SearchMoviesByTitle(title)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error searching movies", err)
	}
	return movies, nil
}

func (s *MovieService) AddMovie(ctx context.Context, data model.MovieCreateData) (*model.Movie, error) {
	if strings.TrimSpace(data.Title) == "" || strings.TrimSpace(data.Description) == "" {
		return nil, errorHandler.ValidationError(response.BadRequestBody)
	}
	if data.TmdbId != nil && !s.tmdbClient.ValidateMovieId(ctx, *data.TmdbId) {
		return nil, errorHandler.ValidationError(response.InvalidTmdbId)
	}

	_, err := s.movieRepo.GetMovieByTitle(data.Title)
	if err == nil {
		return nil, errorHandler.ValidationError(response.MovieAlreadyExist)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorHandler.DatabaseError("Error adding movie", err)
	}

	movie := &model.Movie{
		Title:       data.Title,
		Description: data.Description,
		ReleaseYear: data.ReleaseYear,
		ImageSrc:    data.ImageSrc,
		TmdbId:      data.TmdbId,
	}
	if err := s.movieRepo.CreateMovie(movie); err != nil {
		return nil, errorHandler.DatabaseError("Error adding movie", err)
	}
	return movie, nil
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) TmdbMovieDetails(ctx context.Context, tmdbId int64) (*tmdb.MovieExtraRes, error) {
	if tmdbId == 0 {
		return nil, errorHandler.BadRequest("TMDB ID is required")
	}

	details, err := s.tmdbClient.GetMovieExtra(ctx, tmdbId)
	if err != nil {
		return nil, errorHandler.UpstreamError("Error fetching TMDB movie details", err)
	}
	return details, nil
}

func (s *MovieService) SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchRes, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errorHandler.BadRequest(response.EmptySearchQuery)
	}
	if page < 1 {
		page = 1
	}

	result, err := s.tmdbClient.SearchMovies(ctx, query, page)
	if err != nil {
		return nil, errorHandler.UpstreamError("Error searching TMDB movies", err)
	}
	return result, nil
}

func (s *MovieService) GetRecommendations(ctx context.Context, tmdbId int64, page int) ([]tmdb.MappedMovie, error) {
	if tmdbId == 0 {
		return nil, errorHandler.BadRequest("TMDB ID is required")
	}
	if page < 1 {
		page = 1
	}

	movies, err := s.tmdbClient.GetRecommendations(ctx, tmdbId, page)
	if err != nil {
		return nil, errorHandler.UpstreamError("Error fetching movie recommendations", err)
	}
	return movies, nil
}

func (s *MovieService) GetPopularMovies(ctx context.Context, page int) ([]tmdb.MappedMovie, error) {
	if page < 1 {
		page = 1
	}

	movies, err := s.tmdbClient.GetPopularMovies(ctx, page)
	if err != nil {
		return nil, errorHandler.UpstreamError("Error fetching popular movies", err)
	}
	return movies, nil
}
