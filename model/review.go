package model

import "time"

// Review has no uniqueness per (user, movie), a user may post several reviews
// for the same title.
type Review struct {
	Id        int64     `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"id"`
	Content   string    `gorm:"column:content;type:text;not null;" json:"content"`
	UserId    int64     `gorm:"column:user_id;type:bigint;not null;index;" json:"userId"`
	MovieId   int64     `gorm:"column:movie_id;type:bigint;not null;index;" json:"movieId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp(3);not null;" json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserId;references:Id;" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;" json:"movie,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

//------------------------------------------
//------------------------------------------

// PaginatedRatings / PaginatedReviews mirror the profile page pagination
// envelopes of the graphql schema.
type PaginatedRatings struct {
	Items       []Rating `json:"items"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}

type PaginatedReviews struct {
	Items       []Review `json:"items"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}
