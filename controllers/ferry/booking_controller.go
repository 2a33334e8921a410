package ferry

import (
	"net/http"

	ferry "github.com/jangir-ritik/andamanexcursion-sub005/services/ferry"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookingController контроллер booking flow: сессии, выбор мест, оформление
type BookingController struct {
	bookings *ferry.BookingService
	db       *gorm.DB
}

// NewBookingController создает контроллер бронирования
func NewBookingController(cfg *config.Config, db *gorm.DB) *BookingController {
	layouts := ferry.NewSeatLayoutService(
		ferry.NewSealinkService(cfg),
		ferry.NewMakruzzService(cfg),
		ferry.NewGreenOceanService(cfg),
	)
	return &BookingController{
		bookings: ferry.NewBookingService(db, layouts, cfg),
		db:       db,
	}
}

// CreateSessionRequest тело создания сессии: выбранный рейс и состав пассажиров
type CreateSessionRequest struct {
	Ferry    models.UnifiedFerryResult `json:"ferry" binding:"required"`
	ClassID  string                    `json:"class_id" binding:"required"`
	Adults   int                       `json:"adults" binding:"required,min=1"`
	Children int                       `json:"children" binding:"min=0"`
	Infants  int                       `json:"infants" binding:"min=0"`
}

// CreateSession открывает сессию бронирования
func (bc *BookingController) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	session, err := bc.bookings.CreateSession(&req.Ferry, req.ClassID, req.Adults, req.Children, req.Infants)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionView(session),
	})
}

// GetSession возвращает текущее состояние сессии
func (bc *BookingController) GetSession(c *gin.Context) {
	session, ok := bc.bookings.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Booking session not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionView(session),
	})
}

// ToggleSeat переключает место в выборе
func (bc *BookingController) ToggleSeat(c *gin.Context) {
	var req struct {
		SeatID string `json:"seat_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	session, err := bc.bookings.ToggleSeat(c.Request.Context(), c.Param("id"), req.SeatID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sessionView(session),
	})
}

// ClearSeats очищает выбор мест
func (bc *BookingController) ClearSeats(c *gin.Context) {
	if err := bc.bookings.ClearSeats(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetPreference переключает режим рассадки (manual/auto)
func (bc *BookingController) SetPreference(c *gin.Context) {
	var req struct {
		Preference string `json:"preference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	if err := bc.bookings.SetPreference(c.Param("id"), req.Preference); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitRequest тело оформления брони
type SubmitRequest struct {
	Contact    models.ContactDetails    `json:"contact" binding:"required"`
	Passengers []models.PassengerDetail `json:"passengers" binding:"required"`
}

// Submit оформляет бронь из сессии
func (bc *BookingController) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	booking, err := bc.bookings.Submit(c.Request.Context(), c.Param("id"), req.Contact, req.Passengers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

// ListBookings admin-листинг сохраненных броней
func (bc *BookingController) ListBookings(c *gin.Context) {
	if bc.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Booking storage is not configured",
		})
		return
	}

	var bookings []models.FerryBooking
	if err := bc.db.Order("created_at desc").Limit(100).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load bookings: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"count":   len(bookings),
	})
}

// sessionView ответ клиенту: сессия плюс текущий выбор мест
func sessionView(session *ferry.BookingSession) gin.H {
	return gin.H{
		"session":       session,
		"selectedSeats": session.Selection.SeatIDs(),
	}
}
