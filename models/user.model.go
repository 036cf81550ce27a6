package models

import "time"

type Provider string

const (
	ProviderMail   Provider = "mail"
	ProviderGoogle Provider = "google"
)

// User is a profile document, keyed by the auth uid.
type User struct {
	UID            string    `json:"uid" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"default:''"`
	Email          string    `json:"email" gorm:"unique;not null"`
	Password       string    `json:"-"`
	DisplayPicture string    `json:"displayPicture"`
	EmailVerified  bool      `json:"emailVerified" gorm:"default:false"`
	ProviderID     Provider  `json:"providerId" gorm:"default:'mail'"`
	Role           Role      `json:"role" gorm:"default:'user'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
