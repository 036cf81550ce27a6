package models

import "time"

// Category is a small reference document. The id is a caller-supplied slug
// used as the primary key directly, so re-creating an existing id
// overwrites instead of erroring.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryAll is the sentinel id that removes the category predicate from
// course listings.
const CategoryAll = "all"
