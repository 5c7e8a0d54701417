package model

import "time"

// Rating holds one user's score for one movie. The composite unique index is
// what makes addRating behave as an upsert instead of stacking rows.
type Rating struct {
	Id        int64     `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"id"`
	Rating    int       `gorm:"column:rating;type:integer;not null;" json:"rating"`
	UserId    int64     `gorm:"column:user_id;type:bigint;not null;uniqueIndex:ratings_user_id_movie_id_key;" json:"userId"`
	MovieId   int64     `gorm:"column:movie_id;type:bigint;not null;uniqueIndex:ratings_user_id_movie_id_key;" json:"movieId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp(3);not null;" json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserId;references:Id;" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;" json:"movie,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
