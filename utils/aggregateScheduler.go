package utils

import (
	"log"
	"strconv"
	"time"

	"coursehub/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[AGGREGATE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartAggregateScheduler runs a nightly sweep that re-derives every
// course's averageRatings from its ratings list. Review submission keeps
// the aggregate consistent transactionally, but the read-modify-write of
// the ratings list is not fenced against two submissions racing; the
// sweep repairs any row that drifted.
func StartAggregateScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		ReconcileAverageRatings(db)
	}); err != nil {
		log.Fatalf("Failed to register aggregate scheduler: %v", err)
	}
	c.Start()
	logScheduler("Nightly average ratings reconciliation scheduled")
	return c
}

// ReconcileAverageRatings recomputes averageRatings for every course and
// rewrites the rows whose stored aggregate no longer matches.
func ReconcileAverageRatings(db *gorm.DB) {
	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	fixed := 0
	for _, course := range courses {
		want := models.AverageRating(course.Ratings)
		if course.AverageRatings == want {
			continue
		}
		if err := db.Model(&course).Update("average_ratings", want).Error; err != nil {
			logScheduler("Error fixing course " + course.ID + ": " + err.Error())
			continue
		}
		fixed++
	}

	if fixed > 0 {
		logScheduler("Repaired drifted average ratings on "+strconv.Itoa(fixed)+" courses")
	}
}
