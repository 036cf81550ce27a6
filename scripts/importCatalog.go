package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"

	"github.com/google/uuid"
)

// Bulk-imports a course catalog from Catalog.csv. Existing courses are
// matched by content URL and updated in place; categories referenced by
// the rows are created on the fly. Run with: go run scripts/importCatalog.go
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		categoryID := getField(row, headerIndex, "category_id")
		categoryTitle := getField(row, headerIndex, "category_title")

		course := models.Course{
			Title:       getField(row, headerIndex, "title"),
			Description: getField(row, headerIndex, "description"),
			ContentURL:  getField(row, headerIndex, "content_url"),
			Thumbnail:   getField(row, headerIndex, "thumbnail"),
			Price:       parseFloat(getField(row, headerIndex, "price")),
			Currency:    models.Currency(getField(row, headerIndex, "currency")),
			Language:    getField(row, headerIndex, "language"),
			Category: models.CourseCategory{
				ID:    categoryID,
				Title: categoryTitle,
			},
			Author: models.CourseAuthor{
				UID:  getField(row, headerIndex, "author_uid"),
				Name: getField(row, headerIndex, "author_name"),
			},
			Start: models.CourseStart{
				IsRecorded: parseBool(getField(row, headerIndex, "is_recorded")),
				IsLive:     parseBool(getField(row, headerIndex, "is_live")),
			},
		}
		if course.Currency == "" {
			course.Currency = models.CurrencyINR
		}

		if course.Title == "" || course.ContentURL == "" {
			skipped++
			continue
		}

		if categoryID != "" {
			category := models.Category{ID: categoryID, Title: categoryTitle}
			if err := database.Database.Db.FirstOrCreate(&category, models.Category{ID: categoryID}).Error; err != nil {
				log.Printf("Error ensuring category %s: %v", categoryID, err)
			}
		}

		var existing models.Course
		result := database.Database.Db.Where("content_url = ?", course.ContentURL).First(&existing)

		if result.Error != nil {
			course.ID = uuid.NewString()
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %q: %v", course.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Title = course.Title
			existing.Description = course.Description
			existing.Thumbnail = course.Thumbnail
			existing.Price = course.Price
			existing.Currency = course.Currency
			existing.Language = course.Language
			existing.Category = course.Category
			existing.Author = course.Author
			existing.Start = course.Start

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %q: %v", course.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

// parseBool converts string to bool
func parseBool(s string) bool {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return val
}
