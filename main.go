package main

import (
	"log"

	"coursehub/config"
	"coursehub/controllers/authController"
	"coursehub/controllers/authorController"
	"coursehub/controllers/categoryController"
	"coursehub/controllers/courseController"
	"coursehub/controllers/requestController"
	"coursehub/controllers/reviewController"
	"coursehub/database"
	"coursehub/routers/authRoutes"
	"coursehub/routers/authorRoutes"
	"coursehub/routers/categoryRoutes"
	"coursehub/routers/courseRoutes"
	"coursehub/routers/requestRoutes"
	"coursehub/routers/reviewRoutes"
	"coursehub/services"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	users := services.NewUserService(db)
	courses := services.NewCourseService(db)
	reviews := services.NewReviewService(db)
	categories := services.NewCategoryService(db)
	authors := services.NewAuthorService(db)
	requests := services.NewRequestService(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded blobs (thumbnails, display pictures)
	app.Static("/"+config.AppConfig.UploadDir, "./"+config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app, authController.New(users))
	courseRoutes.SetupCourseRoutes(app, courseController.New(courses))
	reviewRoutes.SetupReviewRoutes(app, reviewController.New(reviews, users))
	categoryRoutes.SetupCategoryRoutes(app, categoryController.New(categories))
	authorRoutes.SetupAuthorRoutes(app, authorController.New(authors))
	requestRoutes.SetupRequestRoutes(app, requestController.New(requests))

	scheduler := utils.StartAggregateScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
