package routes

import (
	ferryctl "github.com/jangir-ritik/andamanexcursion-sub005/controllers/ferry"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupFerryRoutes(router *gin.Engine, cfg *config.Config, db *gorm.DB) {
	ferryController := ferryctl.NewFerryController(cfg)
	bookingController := ferryctl.NewBookingController(cfg, db)

	ferryGroup := router.Group("/ferry")
	{
		// Поиск и здоровье операторов
		ferryGroup.GET("/search", ferryController.SearchFerries)
		ferryGroup.GET("/health", ferryController.GetHealth)

		// Схема мест
		ferryGroup.POST("/seat-layout", ferryController.GetSeatLayout)

		// Booking flow: сессия, выбор мест, оформление
		ferryGroup.POST("/booking/session", bookingController.CreateSession)
		ferryGroup.GET("/booking/session/:id", bookingController.GetSession)
		ferryGroup.POST("/booking/session/:id/seat", bookingController.ToggleSeat)
		ferryGroup.POST("/booking/session/:id/clear", bookingController.ClearSeats)
		ferryGroup.POST("/booking/session/:id/preference", bookingController.SetPreference)
		ferryGroup.POST("/booking/session/:id/submit", bookingController.Submit)
	}

	// Служебные endpoints под JWT
	adminGroup := router.Group("/ferry/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	{
		adminGroup.GET("/bookings", bookingController.ListBookings)
	}
}
