package repository

import (
	"movie_ratings_api/model"

	"gorm.io/gorm"
)

type IMovieRepository interface {
	CreateMovie(movie *model.Movie) error
	GetMovieById(movieId int64) (*model.Movie, error)
	GetMovieByTmdbId(tmdbId int64) (*model.Movie, error)
	GetMovieByTitle(title string) (*model.Movie, error)
	SearchMoviesByTitle(title string) ([]model.Movie, error)
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) CreateMovie(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

func (r *MovieRepository) GetMovieById(movieId int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Preload("Ratings.User").
		Preload("Reviews.User").
		First(&movie, "id = ?", movieId).
		Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) GetMovieByTmdbId(tmdbId int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Preload("Ratings.User").
		Preload("Reviews.User").
		First(&movie, "tmdb_id = ?", tmdbId).
		Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) GetMovieByTitle(title string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		First(&movie, "title = ?", title).
		Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// SearchMoviesByTitle does a case-insensitive substring match over the local
// catalog, LOWER+LIKE instead of ILIKE so every dialect behaves the same.
func (r *MovieRepository) SearchMoviesByTitle(title string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Preload("Ratings").
		Preload("Reviews").
		Find(&movies).
		Error
	return movies, err
}
