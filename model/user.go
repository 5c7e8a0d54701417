package model

import "time"

type User struct {
	Id        int64     `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"id"`
	Username  string    `gorm:"column:username;type:text;not null;uniqueIndex:users_username_key;" json:"username"`
	Password  string    `gorm:"column:password;type:text;not null;" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;type:boolean;not null;default:false;" json:"isAdmin"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp(3);not null;" json:"updatedAt"`

	Ratings []Rating `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ratings,omitempty"`
	Reviews []Review `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

func (User) TableName() string {
	return "users"
}

//------------------------------------------
//------------------------------------------

// AuthRes pairs a signed token with the user it identifies.
type AuthRes struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
