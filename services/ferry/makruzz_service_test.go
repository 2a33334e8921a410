package ferry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// makruzzBackend фейковый Makruzz API: логин плюс расписание
func makruzzBackend(t *testing.T, schedules []models.MakruzzSchedule) (*httptest.Server, *int) {
	t.Helper()
	loginCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/booking_api/login":
			loginCalls++
			var req models.MakruzzLoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "agent@example.com", req.Data.Username)

			resp := models.MakruzzLoginResponse{Code: "200"}
			resp.Data.Token = "mak-token-1"
			json.NewEncoder(w).Encode(resp)
		case "/booking_api/schedule_search":
			require.Equal(t, "mak-token-1", r.Header.Get("Mak_Authorization"))

			var req models.MakruzzScheduleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "single_trip", req.Data.TripType)
			assert.Equal(t, "1", req.Data.FromLocation)
			assert.Equal(t, "2", req.Data.ToLocation)
			assert.Equal(t, 3, req.Data.NoOfPassenger)

			json.NewEncoder(w).Encode(models.MakruzzScheduleResponse{Code: "200", Data: schedules})
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	return server, &loginCalls
}

func newMakruzzTestService(baseURL string) *MakruzzService {
	return NewMakruzzService(&config.Config{
		MakruzzBaseURL:  baseURL,
		MakruzzUsername: "agent@example.com",
		MakruzzPassword: "pass",
	})
}

func TestMakruzzSearchGroupsClassRows(t *testing.T) {
	schedules := []models.MakruzzSchedule{
		{ScheduleID: "31", ShipTitle: "Makruzz", FromLocation: "Port Blair", ToLocation: "Havelock", DepartureTime: "08:00:00", ArrivalTime: "09:30:00", ShipClassID: "2", ShipClassTitle: "Deluxe", ShipClassPrice: "1725", Seat: 12},
		{ScheduleID: "31", ShipTitle: "Makruzz", FromLocation: "Port Blair", ToLocation: "Havelock", DepartureTime: "08:00:00", ArrivalTime: "09:30:00", ShipClassID: "1", ShipClassTitle: "Premium", ShipClassPrice: "1550", Seat: 40},
		{ScheduleID: "44", ShipTitle: "Makruzz Gold", FromLocation: "Port Blair", ToLocation: "Havelock", DepartureTime: "14:00:00", ArrivalTime: "15:30:00", ShipClassID: "1", ShipClassTitle: "Premium", ShipClassPrice: "1600", Seat: 25},
	}
	server, loginCalls := makruzzBackend(t, schedules)
	defer server.Close()

	svc := newMakruzzTestService(server.URL)
	params := validParams()
	params.Children = 1

	results, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, results, 2) // две строки одного рейса схлопнуты

	first := results[0]
	assert.Equal(t, "31", first.OperatorFerryID)
	assert.Equal(t, "Makruzz", first.FerryName)
	assert.Equal(t, "08:00", first.Schedule.DepartureTime)
	assert.Equal(t, "09:30", first.Schedule.ArrivalTime)
	assert.False(t, first.Features.SupportsSeatSelection)
	assert.True(t, first.Features.SupportsAutoAssignment)

	// Классы отсортированы по цене
	require.Len(t, first.Classes, 2)
	assert.Equal(t, "Premium", first.Classes[0].Label)
	assert.Equal(t, 1550.0, first.Classes[0].Price)
	assert.Equal(t, "Deluxe", first.Classes[1].Label)

	assert.Equal(t, "Makruzz Gold", results[1].FerryName)
	assert.Equal(t, 1, *loginCalls)
}

func TestMakruzzTokenReusedAcrossSearches(t *testing.T) {
	server, loginCalls := makruzzBackend(t, nil)
	defer server.Close()

	svc := newMakruzzTestService(server.URL)
	params := validParams()
	params.Children = 1

	_, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 1, *loginCalls)
}

func TestMakruzzLoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.MakruzzLoginResponse{Code: "401", Msg: "invalid credentials"})
	}))
	defer server.Close()

	svc := newMakruzzTestService(server.URL)
	_, err := svc.Search(context.Background(), validParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestMakruzzSeatLayoutNotSupported(t *testing.T) {
	svc := newMakruzzTestService("http://unused")
	_, err := svc.SeatLayout(context.Background(), models.SeatLayoutRequest{Operator: models.OperatorMakruzz})
	assert.ErrorIs(t, err, ErrSeatSelectionNotSupported)
}

func TestMakruzzCheckHealth(t *testing.T) {
	server, _ := makruzzBackend(t, nil)
	defer server.Close()

	svc := newMakruzzTestService(server.URL)
	health := svc.CheckHealth(context.Background())
	assert.Equal(t, models.HealthOnline, health.Status)
}

func TestTrimSeconds(t *testing.T) {
	assert.Equal(t, "08:00", trimSeconds("08:00:00"))
	assert.Equal(t, "8:00", trimSeconds("8:00"))
}
