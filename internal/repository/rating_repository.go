package repository

import (
	"time"

	"movie_ratings_api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRatingRepository interface {
	GetRatingById(ratingId int64) (*model.Rating, error)
	UpsertRating(userId int64, movieId int64, value int) (*model.Rating, error)
	UpdateRatingValue(ratingId int64, movieId int64, value int) (*model.Rating, error)
	DeleteRating(ratingId int64, movieId int64) error
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *RatingRepository) GetRatingById(ratingId int64) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.
		First(&rating, "id = ?", ratingId).
		Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// UpsertRating inserts or updates the (user, movie) rating and recomputes the
// movie aggregate in the same transaction, so averageRating never drifts from
// the mean of the stored rows even under concurrent writes.
func (r *RatingRepository) UpsertRating(userId int64, movieId int64, value int) (*model.Rating, error) {
	rating := model.Rating{
		UserId:  userId,
		MovieId: movieId,
		Rating:  value,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"rating":     value,
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&rating).Error
		if err != nil {
			return err
		}

		// the upsert path does not reliably report the row id back
		if err := tx.First(&rating, "user_id = ? AND movie_id = ?", userId, movieId).Error; err != nil {
			return err
		}

		return recomputeMovieAggregate(tx, movieId)
	})
	if err != nil {
		return nil, err
	}

	return &rating, nil
}

func (r *RatingRepository) UpdateRatingValue(ratingId int64, movieId int64, value int) (*model.Rating, error) {
	var rating model.Rating

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Rating{}).
			Where("id = ?", ratingId).
			Updates(map[string]interface{}{
				"rating":     value,
				"updated_at": time.Now().UTC(),
			}).Error
		if err != nil {
			return err
		}

		if err := tx.First(&rating, "id = ?", ratingId).Error; err != nil {
			return err
		}

		return recomputeMovieAggregate(tx, movieId)
	})
	if err != nil {
		return nil, err
	}

	return &rating, nil
}

func (r *RatingRepository) DeleteRating(ratingId int64, movieId int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Rating{}, "id = ?", ratingId).Error; err != nil {
			return err
		}

		return recomputeMovieAggregate(tx, movieId)
	})
}

//------------------------------------------
//------------------------------------------

// recomputeMovieAggregate derives the aggregate from the rating rows in a
// single statement instead of a read-modify-write over the movie record.
func recomputeMovieAggregate(tx *gorm.DB, movieId int64) error {
	return tx.Model(&model.Movie{}).
		Where("id = ?", movieId).
		UpdateColumns(map[string]interface{}{
			"average_rating": gorm.Expr("COALESCE((SELECT AVG(rating * 1.0) FROM ratings WHERE movie_id = ?), 0)", movieId),
			"vote_count":     gorm.Expr("(SELECT COUNT(*) FROM ratings WHERE movie_id = ?)", movieId),
			"updated_at":     time.Now().UTC(),
		}).Error
}
