package models

import "time"

// Reviewer is the user snapshot embedded in a review document.
type Reviewer struct {
	UID        string `json:"uid" gorm:"column:reviewer_uid;index"`
	Name       string `json:"name" gorm:"column:reviewer_name"`
	IsVerified bool   `json:"isVerified" gorm:"column:reviewer_is_verified"`
	PhotoURL   string `json:"photoUrl" gorm:"column:reviewer_photo_url"`
}

// Review is one user's rating and written feedback for one course. The id
// is the composite "{uid}_{courseId}", so the (reviewer, course) pair acts
// as a natural key and a second submission addresses the same document.
type Review struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CourseID    string    `json:"courseId" gorm:"index;not null"`
	Reviewer    Reviewer  `json:"user" gorm:"embedded"`
	Rating      int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewID builds the deterministic review document id.
func ReviewID(reviewerUID, courseID string) string {
	return reviewerUID + "_" + courseID
}
