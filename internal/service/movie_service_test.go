package service

import (
	"context"
	"strconv"
	"testing"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/internal/tmdb"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMovieFixture(t *testing.T) (*gorm.DB, *fakeCatalog, *MovieService) {
	t.Helper()
	db := newTestDB(t)
	catalog := &fakeCatalog{}
	return db, catalog, NewMovieService(repository.NewMovieRepository(db), catalog)
}

func TestGetMovieInvalidId(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	_, err := movieSvc.GetMovie(context.Background(), "not-a-number")
	requireAppError(t, err, errorHandler.CodeBadRequest, 400)
}

func TestGetMovieNotFound(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	_, err := movieSvc.GetMovie(context.Background(), "999")
	requireAppError(t, err, errorHandler.CodeNotFound, 404)
}

func TestGetMovieById(t *testing.T) {
	db, catalog, movieSvc := newMovieFixture(t)
	movie := seedMovie(t, db, "Heat")

	fetched, err := movieSvc.GetMovie(context.Background(), strconv.FormatInt(movie.Id, 10))
	require.NoError(t, err)
	assert.Equal(t, movie.Id, fetched.Id)
	assert.Equal(t, "Heat", fetched.Title)
	// a plain numeric id never touches the catalog
	assert.Equal(t, 0, catalog.detailsCalls)
}

// first access to a `tmdb-<id>` movie persists it, later ones hit the table
func TestGetMovieMaterializesOnce(t *testing.T) {
	db, catalog, movieSvc := newMovieFixture(t)

	movie, err := movieSvc.GetMovie(context.Background(), tmdb.ExternalId(550))
	require.NoError(t, err)
	require.NotNil(t, movie.TmdbId)
	assert.Equal(t, int64(550), *movie.TmdbId)
	assert.Equal(t, "Catalog Movie 550", movie.Title)
	assert.Equal(t, 2019, movie.ReleaseYear)
	assert.Equal(t, 7.1, movie.AverageRating)
	assert.Equal(t, 300, movie.VoteCount)
	assert.Equal(t, 1, catalog.detailsCalls)

	again, err := movieSvc.GetMovie(context.Background(), tmdb.ExternalId(550))
	require.NoError(t, err)
	assert.Equal(t, movie.Id, again.Id)
	assert.Equal(t, 1, catalog.detailsCalls)

	var count int64
	require.NoError(t, db.Model(&model.Movie{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetMovieUpstreamFailure(t *testing.T) {
	_, catalog, movieSvc := newMovieFixture(t)
	catalog.failDetails = true

	_, err := movieSvc.GetMovie(context.Background(), tmdb.ExternalId(550))
	requireAppError(t, err, errorHandler.CodeUpstreamError, 502)
}

func TestMoviesByTitle(t *testing.T) {
	db, _, movieSvc := newMovieFixture(t)
	seedMovie(t, db, "The Godfather")
	seedMovie(t, db, "Goodfellas")
	seedMovie(t, db, "Heat")

	_, err := movieSvc.MoviesByTitle("  ")
	requireAppError(t, err, errorHandler.CodeBadRequest, 400)

	movies, err := movieSvc.MoviesByTitle("god")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Godfather", movies[0].Title)

	// matching is case insensitive
	movies, err = movieSvc.MoviesByTitle("GOOD")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Goodfellas", movies[0].Title)
}

func TestAddMovie(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)
	ctx := context.Background()

	_, err := movieSvc.AddMovie(ctx, model.MovieCreateData{Title: " ", Description: "d"})
	requireAppError(t, err, errorHandler.CodeValidationError, 422)

	movie, err := movieSvc.AddMovie(ctx, model.MovieCreateData{
		Title:       "Local Hero",
		Description: "small town, big oil",
		ReleaseYear: 1983,
		ImageSrc:    "/local-hero.jpg",
	})
	require.NoError(t, err)
	assert.NotZero(t, movie.Id)

	_, err = movieSvc.AddMovie(ctx, model.MovieCreateData{Title: "Local Hero", Description: "again"})
	requireAppError(t, err, errorHandler.CodeValidationError, 422)
}

// an explicit tmdbId must exist in the catalog before the movie is stored
func TestAddMovieValidatesTmdbId(t *testing.T) {
	db, catalog, movieSvc := newMovieFixture(t)
	catalog.failDetails = true
	ctx := context.Background()

	tmdbId := int64(999999)
	_, err := movieSvc.AddMovie(ctx, model.MovieCreateData{
		Title:       "Phantom Release",
		Description: "never made it",
		TmdbId:      &tmdbId,
	})
	requireAppError(t, err, errorHandler.CodeValidationError, 422)

	var count int64
	require.NoError(t, db.Model(&model.Movie{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	catalog.failDetails = false
	movie, err := movieSvc.AddMovie(ctx, model.MovieCreateData{
		Title:       "Phantom Release",
		Description: "never made it",
		TmdbId:      &tmdbId,
	})
	require.NoError(t, err)
	require.NotNil(t, movie.TmdbId)
	assert.Equal(t, tmdbId, *movie.TmdbId)
}

func TestSearchMoviesValidation(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	_, err := movieSvc.SearchMovies(context.Background(), "   ", 1)
	requireAppError(t, err, errorHandler.CodeBadRequest, 400)

	res, err := movieSvc.SearchMovies(context.Background(), "heat", 0)
	require.NoError(t, err)
	require.Len(t, res.Movies, 1)
	assert.Equal(t, "Result for heat", res.Movies[0].Title)
}

func TestTmdbMovieDetailsValidation(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	_, err := movieSvc.TmdbMovieDetails(context.Background(), 0)
	requireAppError(t, err, errorHandler.CodeBadRequest, 400)

	res, err := movieSvc.TmdbMovieDetails(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, 7.1, res.TmdbRating)
	require.Len(t, res.TmdbReviews, 1)
}

func TestGetRecommendationsValidation(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	_, err := movieSvc.GetRecommendations(context.Background(), 0, 1)
	requireAppError(t, err, errorHandler.CodeBadRequest, 400)

	movies, err := movieSvc.GetRecommendations(context.Background(), 550, 1)
	require.NoError(t, err)
	require.Len(t, movies, 1)
}

func TestGetMoviesServesPopularList(t *testing.T) {
	_, _, movieSvc := newMovieFixture(t)

	movies, err := movieSvc.GetMovies(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Popular", movies[0].Title)
}
