package api

import (
	"net/http"

	"fithub/backend/internal/service"
	"fithub/backend/internal/token"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler under /api/v1. The auth group carries a
// per-IP rate limiter; the media group requires a valid bearer token.
func SetupRoutes(
	router *gin.Engine,
	issuer *token.Issuer,
	authService service.AuthService,
	facilityService service.FacilityService,
	categoryService service.CategoryService,
	gymService service.GymService,
	trainerService service.TrainerService,
	mediaService service.MediaService,
) {
	authHandler := NewAuthHandler(authService)
	facilityHandler := NewFacilityHandler(facilityService)
	categoryHandler := NewCategoryHandler(categoryService)
	gymHandler := NewGymHandler(gymService)
	trainerHandler := NewTrainerHandler(trainerService)
	mediaHandler := NewMediaHandler(mediaService)

	authMiddleware := AuthMiddleware(issuer)
	rateLimiter := NewRateLimiter()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Fithub API is running"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		authGroup.Use(rateLimiter.Limit())
		{
			authGroup.POST("/sign-in", authHandler.SignIn)
			authGroup.POST("/sign-up", authHandler.SignUp)
			authGroup.GET("/get/all/users", authHandler.GetAllUsers)
		}

		// --- Facility Routes ---
		apiV1.POST("/create/new/facility", facilityHandler.CreateFacility)
		apiV1.GET("/get/all/facilities", facilityHandler.GetFacilities)
		apiV1.PUT("/update/facility/by/:facility_id", facilityHandler.UpdateFacility)
		apiV1.DELETE("/delete/facility/by/:facility_id", facilityHandler.DeleteFacility)

		// --- Category Routes ---
		apiV1.POST("/create/new/category", categoryHandler.CreateCategory)
		apiV1.GET("/get/all/categories", categoryHandler.GetCategories)
		apiV1.PUT("/update/category/by/:category_id", categoryHandler.UpdateCategory)
		apiV1.DELETE("/delete/category/by/:category_id", categoryHandler.DeleteCategory)

		// --- Gym Routes ---
		apiV1.POST("/create/new/gym", gymHandler.CreateGym)
		apiV1.GET("/get/all/gyms", gymHandler.GetGyms)
		apiV1.PUT("/update/gym/by/:gym_id", gymHandler.UpdateGym)
		apiV1.DELETE("/delete/gym/by/:gym_id", gymHandler.DeleteGym)

		// --- Trainer Routes ---
		apiV1.POST("/create/new/trainer", trainerHandler.CreateTrainer)
		apiV1.GET("/get/all/trainers", trainerHandler.GetTrainers)
		apiV1.GET("/get/trainer/:trainer_id", trainerHandler.GetTrainer)
		apiV1.PUT("/update/trainer/:trainer_id", trainerHandler.UpdateTrainer)
		apiV1.DELETE("/delete/trainer/:trainer_id", trainerHandler.DeleteTrainer)
		apiV1.DELETE("/hard-delete/trainer/:trainer_id", trainerHandler.HardDeleteTrainer)
		apiV1.GET("/get/trainers/by/specialization/:specialization", trainerHandler.GetTrainersBySpecialization)
		apiV1.GET("/search/trainers", trainerHandler.SearchTrainers)

		// --- Media Routes ---
		mediaGroup := apiV1.Group("/media")
		mediaGroup.Use(authMiddleware)
		{
			mediaGroup.POST("/upload-url", mediaHandler.RequestUploadURL)
			mediaGroup.GET("/download-url", mediaHandler.GetDownloadURL)
			mediaGroup.DELETE("/object", mediaHandler.DeleteObject)
		}
	}
}
