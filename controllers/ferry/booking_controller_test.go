package ferry

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
	ferrysvc "github.com/jangir-ritik/andamanexcursion-sub005/services/ferry"
)

func newTestBookingController(adapters ...ferrysvc.OperatorAdapter) *BookingController {
	layouts := ferrysvc.NewSeatLayoutService(adapters...)
	return &BookingController{
		bookings: ferrysvc.NewBookingService(nil, layouts, nil),
	}
}

func bookingTestRouter(bc *BookingController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ferry/booking/session", bc.CreateSession)
	r.GET("/ferry/booking/session/:id", bc.GetSession)
	r.POST("/ferry/booking/session/:id/seat", bc.ToggleSeat)
	r.POST("/ferry/booking/session/:id/clear", bc.ClearSeats)
	r.POST("/ferry/booking/session/:id/preference", bc.SetPreference)
	r.POST("/ferry/booking/session/:id/submit", bc.Submit)
	r.GET("/ferry/admin/bookings", bc.ListBookings)
	return r
}

func sealinkFerry() models.UnifiedFerryResult {
	return models.UnifiedFerryResult{
		Operator:        models.OperatorSealink,
		OperatorFerryID: "SL-1",
		FerryName:       "Sealink",
		Route:           models.FerryRoute{From: "port-blair", To: "havelock"},
		Schedule:        models.FerrySchedule{Date: time.Now().AddDate(0, 0, 7).Format("2006-01-02"), DepartureTime: "08:00"},
		Features:        models.FerryFeatures{SupportsSeatSelection: true},
		Classes:         []models.FerryClass{{ID: "pClass", Label: "Premium", Price: 1500, AvailableSeats: 10}},
	}
}

func sealinkLayout() *models.SeatLayout {
	return &models.SeatLayout{
		Operator: models.OperatorSealink,
		FerryID:  "SL-1",
		ClassID:  "pClass",
		Seats: []models.Seat{
			{ID: "A1", Number: "A1", Status: models.SeatStatusAvailable},
			{ID: "A2", Number: "A2", Status: models.SeatStatusAvailable},
		},
	}
}

func createTestSession(t *testing.T, r *gin.Engine, adults, children int) string {
	t.Helper()
	w, resp := doJSON(t, r, "POST", "/ferry/booking/session", CreateSessionRequest{
		Ferry:    sealinkFerry(),
		ClassID:  "pClass",
		Adults:   adults,
		Children: children,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	session := data["session"].(map[string]interface{})
	id, ok := session["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func TestCreateSessionEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)

	id := createTestSession(t, r, 2, 0)

	w, resp := doJSON(t, r, "GET", "/ferry/booking/session/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	session := data["session"].(map[string]interface{})
	assert.Equal(t, "manual", session["preference"])
}

func TestCreateSessionInvalidBody(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink})
	r := bookingTestRouter(bc)

	// adults отсутствует
	w, _ := doJSON(t, r, "POST", "/ferry/booking/session", gin.H{
		"ferry":    sealinkFerry(),
		"class_id": "pClass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink})
	r := bookingTestRouter(bc)

	w, _ := doJSON(t, r, "GET", "/ferry/booking/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleSeatEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 2, 0)

	w, resp := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/seat", gin.H{"seat_id": "A1"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["selectedSeats"], 1)

	// Повторный toggle снимает место
	w, resp = doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/seat", gin.H{"seat_id": "A1"})
	assert.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["selectedSeats"], 0)
}

func TestToggleUnknownSeatEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 1, 0)

	w, _ := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/seat", gin.H{"seat_id": "Z9"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearSeatsEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 1, 0)

	w, _ := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/seat", gin.H{"seat_id": "A1"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/clear", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, resp := doJSON(t, r, "GET", "/ferry/booking/session/"+id, nil)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["selectedSeats"], 0)
}

func TestSetPreferenceRejectedForManualOnly(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 1, 0)

	w, resp := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/preference", gin.H{"preference": "auto"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "manual")
}

func TestSubmitEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 2, 0)

	for _, seat := range []string{"A1", "A2"} {
		w, _ := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/seat", gin.H{"seat_id": seat})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, resp := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/submit", SubmitRequest{
		Contact:    models.ContactDetails{Name: "Amit", Email: "amit@example.com"},
		Passengers: []models.PassengerDetail{{Name: "Amit", Age: 30}, {Name: "Priya", Age: 28}},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "submitted", data["status"])
	assert.Equal(t, float64(3000), data["total_fare"])

	// Сессия закрыта после оформления
	w, _ = doJSON(t, r, "GET", "/ferry/booking/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitWithoutSeatsEndpoint(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink, layout: sealinkLayout()})
	r := bookingTestRouter(bc)
	id := createTestSession(t, r, 2, 0)

	w, resp := doJSON(t, r, "POST", "/ferry/booking/session/"+id+"/submit", SubmitRequest{
		Contact:    models.ContactDetails{Name: "Amit", Email: "amit@example.com"},
		Passengers: []models.PassengerDetail{{Name: "Amit", Age: 30}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "select seats")
}

func TestListBookingsWithoutStorage(t *testing.T) {
	bc := newTestBookingController(&stubAdapter{name: models.OperatorSealink})
	r := bookingTestRouter(bc)

	w, resp := doJSON(t, r, "GET", "/ferry/admin/bookings", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, resp["success"])
}
