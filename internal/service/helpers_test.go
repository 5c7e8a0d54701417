package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"movie_ratings_api/internal/tmdb"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// file based so concurrent writers contend the way a real db would
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(10000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.User{}, &model.Movie{}, &model.Rating{}, &model.Review{})
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMovie(t *testing.T, db *gorm.DB, title string) *model.Movie {
	t.Helper()
	movie := &model.Movie{Title: title, Description: "seeded", ReleaseYear: 2000, ImageSrc: "/img.jpg"}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func requireAppError(t *testing.T, err error, code string, status int) *errorHandler.AppError {
	t.Helper()
	appErr, ok := errorHandler.AsAppError(err)
	require.True(t, ok, "expected app error, got %v", err)
	require.Equal(t, code, appErr.Code)
	require.Equal(t, status, appErr.Status)
	return appErr
}

//------------------------------------------
//------------------------------------------

// fakeCatalog stands in for the tmdb client so no service test touches the
// network.
type fakeCatalog struct {
	detailsCalls int
	failDetails  bool
}

func (f *fakeCatalog) GetMovieDetails(_ context.Context, tmdbId int64) (*tmdb.MovieResult, error) {
	f.detailsCalls++
	if f.failDetails {
		return nil, errors.New("tmdb api error: status 404")
	}
	return &tmdb.MovieResult{
		Id:          tmdbId,
		Title:       fmt.Sprintf("Catalog Movie %d", tmdbId),
		Overview:    "from the catalog",
		PosterPath:  "/poster.jpg",
		ReleaseDate: "2019-07-01",
		VoteAverage: 7.1,
		VoteCount:   300,
	}, nil
}

func (f *fakeCatalog) GetMovieExtra(_ context.Context, tmdbId int64) (*tmdb.MovieExtraRes, error) {
	if f.failDetails {
		return nil, errors.New("tmdb api error: status 404")
	}
	return &tmdb.MovieExtraRes{
		TmdbRating:  7.1,
		TmdbReviews: []tmdb.MovieReview{{Id: "r1", Author: "critic", Content: "fine"}},
		VoteCount:   300,
	}, nil
}

func (f *fakeCatalog) SearchMovies(_ context.Context, query string, page int) (*tmdb.SearchRes, error) {
	return &tmdb.SearchRes{
		Movies: []tmdb.MappedMovie{
			{Id: "tmdb-1", Title: "Result for " + query, TmdbId: 1},
		},
		TotalPages:   1,
		TotalResults: 1,
	}, nil
}

func (f *fakeCatalog) GetRecommendations(_ context.Context, tmdbId int64, page int) ([]tmdb.MappedMovie, error) {
	return []tmdb.MappedMovie{{Id: "tmdb-2", Title: "Recommended", TmdbId: 2}}, nil
}

func (f *fakeCatalog) GetPopularMovies(_ context.Context, page int) ([]tmdb.MappedMovie, error) {
	return []tmdb.MappedMovie{{Id: "tmdb-3", Title: "Popular", TmdbId: 3}}, nil
}

func (f *fakeCatalog) ValidateMovieId(_ context.Context, _ int64) bool {
	return !f.failDetails
}
