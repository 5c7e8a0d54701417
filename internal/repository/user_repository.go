package repository

import (
	"movie_ratings_api/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserById(userId int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUsers() ([]model.User, error)
	GetUserRatings(userId int64, page int, limit int) ([]model.Rating, int64, error)
	GetUserReviews(userId int64, page int, limit int) ([]model.Review, int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserById(userId int64) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Ratings.Movie").
		Preload("Reviews.Movie").
		First(&user, "id = ?", userId).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.
		First(&user, "username = ?", username).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsers() ([]model.User, error) {
	var users []model.User
	err := r.db.
		Preload("Ratings").
		Preload("Reviews").
		Find(&users).
		Error
	return users, err
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetUserRatings(userId int64, page int, limit int) ([]model.Rating, int64, error) {
	var ratings []model.Rating
	var count int64

	if err := r.db.Model(&model.Rating{}).
		Where("user_id = ?", userId).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("user_id = ?", userId).
		Preload("Movie").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&ratings).
		Error
	return ratings, count, err
}

func (r *UserRepository) GetUserReviews(userId int64, page int, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var count int64

	if err := r.db.Model(&model.Review{}).
		Where("user_id = ?", userId).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("user_id = ?", userId).
		Preload("Movie").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).
		Error
	return reviews, count, err
}
