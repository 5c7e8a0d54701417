package service

import (
	"context"
	"strconv"
	"testing"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewFixture(t *testing.T) (*gorm.DB, *ReviewService) {
	t.Helper()
	db := newTestDB(t)
	movieSvc := NewMovieService(repository.NewMovieRepository(db), &fakeCatalog{})
	return db, NewReviewService(repository.NewReviewRepository(db), movieSvc)
}

func TestAddReviewEmptyContent(t *testing.T) {
	_, reviewSvc := newReviewFixture(t)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := reviewSvc.AddReview(context.Background(), 1, "1", content)
		requireAppError(t, err, errorHandler.CodeValidationError, 422)
	}
}

func TestAddReview(t *testing.T) {
	db, reviewSvc := newReviewFixture(t)
	user := seedUser(t, db, "alice")
	movie := seedMovie(t, db, "Heat")

	review, err := reviewSvc.AddReview(context.Background(), user.Id, strconv.FormatInt(movie.Id, 10), "tense heist movie")
	require.NoError(t, err)
	assert.Equal(t, user.Id, review.UserId)
	assert.Equal(t, movie.Id, review.MovieId)
	assert.Equal(t, "tense heist movie", review.Content)

	var stored model.Review
	require.NoError(t, db.First(&stored, "id = ?", review.Id).Error)
	assert.Equal(t, "tense heist movie", stored.Content)
}

// several reviews per (user, movie) are allowed
func TestAddReviewAllowsMultiplePerMovie(t *testing.T) {
	db, reviewSvc := newReviewFixture(t)
	user := seedUser(t, db, "alice")
	movie := seedMovie(t, db, "Heat")
	movieIdArg := strconv.FormatInt(movie.Id, 10)

	_, err := reviewSvc.AddReview(context.Background(), user.Id, movieIdArg, "first take")
	require.NoError(t, err)
	_, err = reviewSvc.AddReview(context.Background(), user.Id, movieIdArg, "second take")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Review{}).
		Where("user_id = ? AND movie_id = ?", user.Id, movie.Id).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateReviewOwnership(t *testing.T) {
	db, reviewSvc := newReviewFixture(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	movie := seedMovie(t, db, "Heat")

	review, err := reviewSvc.AddReview(context.Background(), alice.Id, strconv.FormatInt(movie.Id, 10), "original")
	require.NoError(t, err)

	_, err = reviewSvc.UpdateReview(bob.Id, review.Id, "hijacked")
	requireAppError(t, err, errorHandler.CodeForbidden, 403)

	updated, err := reviewSvc.UpdateReview(alice.Id, review.Id, "revised")
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Content)

	var stored model.Review
	require.NoError(t, db.First(&stored, "id = ?", review.Id).Error)
	assert.Equal(t, "revised", stored.Content)
}

func TestDeleteReview(t *testing.T) {
	db, reviewSvc := newReviewFixture(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	movie := seedMovie(t, db, "Heat")

	review, err := reviewSvc.AddReview(context.Background(), alice.Id, strconv.FormatInt(movie.Id, 10), "gone soon")
	require.NoError(t, err)

	err = reviewSvc.DeleteReview(bob.Id, review.Id)
	requireAppError(t, err, errorHandler.CodeForbidden, 403)

	require.NoError(t, reviewSvc.DeleteReview(alice.Id, review.Id))

	err = reviewSvc.DeleteReview(alice.Id, review.Id)
	requireAppError(t, err, errorHandler.CodeNotFound, 404)
}
