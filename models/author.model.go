package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuthorSocial is one social link on an author profile, e.g.
// {id: "github", value: "https://github.com/jane"}.
type AuthorSocial struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Author is a course author profile. ReferenceUID links to a user account
// and defaults to the author's own uid when no account is linked.
type Author struct {
	UID            string                            `json:"uid" gorm:"primaryKey"`
	Name           string                            `json:"name" gorm:"not null"`
	Bio            string                            `json:"bio" gorm:"type:varchar(500)"`
	DisplayPicture string                            `json:"displayPicture"`
	ReferenceUID   string                            `json:"reference_uid"`
	Socials        datatypes.JSONSlice[AuthorSocial] `json:"socials"`
	Ratings        datatypes.JSONSlice[Rating]       `json:"ratings"`
	AverageRatings float64                           `json:"averageRatings" gorm:"index;default:0"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}
