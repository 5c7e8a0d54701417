package model

import "time"

type Movie struct {
	Id            int64     `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"id"`
	Title         string    `gorm:"column:title;type:text;not null;" json:"title"`
	Description   string    `gorm:"column:description;type:text;not null;" json:"description"`
	ReleaseYear   int       `gorm:"column:release_year;type:integer;not null;" json:"releaseYear"`
	ImageSrc      string    `gorm:"column:image_src;type:text;not null;" json:"imageSrc"`
	AverageRating float64   `gorm:"column:average_rating;type:double precision;not null;default:0;" json:"averageRating"`
	TmdbId        *int64    `gorm:"column:tmdb_id;type:bigint;uniqueIndex:movies_tmdb_id_key;" json:"tmdbId"`
	VoteCount     int       `gorm:"column:vote_count;type:integer;not null;default:0;" json:"voteCount"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamp(3);not null;" json:"updatedAt"`

	Ratings []Rating `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ratings,omitempty"`
	Reviews []Review `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}

//------------------------------------------
//------------------------------------------

// MovieCreateData is the addMovie mutation payload.
type MovieCreateData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"releaseYear"`
	ImageSrc    string `json:"imageSrc"`
	TmdbId      *int64 `json:"tmdbId"`
}
