package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ValidCurrency reports whether s is one of the supported currencies.
func ValidCurrency(s string) bool {
	switch Currency(s) {
	case CurrencyINR, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Rating is a single user's score for a course or author, denormalized
// onto the parent document.
type Rating struct {
	UID   string `json:"uid"`
	Value int    `json:"value"`
}

// CourseAuthor is the author snapshot embedded in a course document.
type CourseAuthor struct {
	UID        string `json:"uid" gorm:"column:author_uid;index"`
	Name       string `json:"name" gorm:"column:author_name"`
	IsVerified bool   `json:"isVerified" gorm:"column:author_is_verified"`
	PhotoURL   string `json:"photoUrl" gorm:"column:author_photo_url"`
}

// CourseCategory is the category reference embedded in a course document.
type CourseCategory struct {
	ID    string `json:"id" gorm:"column:category_id;index"`
	Title string `json:"title" gorm:"column:category_title"`
}

// CourseStart describes when a course runs: a scheduled date, or the
// recorded/live flags.
type CourseStart struct {
	Date       *time.Time `json:"date,omitempty" gorm:"column:start_date"`
	IsRecorded bool       `json:"isRecorded" gorm:"column:start_is_recorded"`
	IsLive     bool       `json:"isLive" gorm:"column:start_is_live"`
}

// Course is a catalog entry. AverageRatings is denormalized from Ratings
// and must always equal AverageRating(Ratings).
type Course struct {
	ID             string                      `json:"id" gorm:"primaryKey"`
	Title          string                      `json:"title" gorm:"not null"`
	Description    string                      `json:"description" gorm:"type:text"`
	ContentURL     string                      `json:"content_url"`
	Thumbnail      string                      `json:"thumbnail"`
	Price          float64                     `json:"price" gorm:"default:0"`
	Currency       Currency                    `json:"currency" gorm:"default:'INR'"`
	Language       string                      `json:"language"`
	Category       CourseCategory              `json:"category" gorm:"embedded"`
	Author         CourseAuthor                `json:"author" gorm:"embedded"`
	Start          CourseStart                 `json:"start" gorm:"embedded"`
	Ratings        datatypes.JSONSlice[Rating] `json:"ratings"`
	AverageRatings float64                     `json:"averageRatings" gorm:"index;default:0"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at" gorm:"index"`
}

// AverageRating returns the mean of all rating values rounded to one
// decimal place, or 0 when the list is empty.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += float64(r.Value)
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}
