package service

import (
	"errors"
	"strings"

	"movie_ratings_api/internal/repository"
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"
	"movie_ratings_api/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 6

	ratingsPageSize = 12
	reviewsPageSize = 10
)

type IUserService interface {
	Signup(username string, password string) (*model.AuthRes, error)
	Login(username string, password string) (*model.AuthRes, error)
	GetUser(userId int64) (*model.User, error)
	GetUsers() ([]model.User, error)
	GetUserRatings(userId int64, page int) (*model.PaginatedRatings, error)
	GetUserReviews(userId int64, page int) (*model.PaginatedReviews, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Signup(username string, password string) (*model.AuthRes, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errorHandler.ValidationError(response.MissingCredentials)
	}
	if len(password) < minPasswordLength {
		return nil, errorHandler.ValidationError(response.ShortPassword)
	}

	_, err := s.userRepo.GetUserByUsername(username)
	if err == nil {
		return nil, errorHandler.ValidationError(response.UsernameAlreadyExist)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorHandler.DatabaseError("Error creating user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error creating user", err)
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorHandler.ValidationError(response.UsernameAlreadyExist)
		}
		return nil, errorHandler.DatabaseError("Error creating user", err)
	}

	return s.issueToken(user)
}

func (s *UserService) Login(username string, password string) (*model.AuthRes, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorHandler.Unauthorized(response.InvalidCredentials)
		}
		return nil, errorHandler.DatabaseError("Login error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errorHandler.Unauthorized(response.InvalidCredentials)
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *model.User) (*model.AuthRes, error) {
	token, err := util.CreateJwtToken(user.Id, user.Username, user.IsAdmin)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error signing token", err)
	}
	return &model.AuthRes{Token: token, User: user}, nil
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetUser(userId int64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorHandler.NotFound(response.UserNotFound)
		}
		return nil, errorHandler.DatabaseError("Error fetching user data", err)
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]model.User, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, errorHandler.DatabaseError("Error fetching users", err)
	}
	return users, nil
}

func (s *UserService) GetUserRatings(userId int64, page int) (*model.PaginatedRatings, error) {
	if page < 1 {
		page = 1
	}
	ratings, count, err := s.userRepo.GetUserRatings(userId, page, ratingsPageSize)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error fetching user ratings", err)
	}
	return &model.PaginatedRatings{
		Items:       ratings,
		TotalPages:  totalPages(count, ratingsPageSize),
		CurrentPage: page,
	}, nil
}

func (s *UserService) GetUserReviews(userId int64, page int) (*model.PaginatedReviews, error) {
	if page < 1 {
		page = 1
	}
	reviews, count, err := s.userRepo.GetUserReviews(userId, page, reviewsPageSize)
	if err != nil {
		return nil, errorHandler.DatabaseError("Error fetching user reviews", err)
	}
	return &model.PaginatedReviews{
		Items:       reviews,
		TotalPages:  totalPages(count, reviewsPageSize),
		CurrentPage: page,
	}, nil
}

func totalPages(count int64, pageSize int) int {
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}
