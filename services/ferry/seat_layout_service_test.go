package ferry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

func sampleLayout(seatIDs ...string) *models.SeatLayout {
	seats := make([]models.Seat, len(seatIDs))
	for i, id := range seatIDs {
		seats[i] = models.Seat{ID: id, Number: id, Status: models.SeatStatusAvailable}
	}
	return &models.SeatLayout{
		Operator: models.OperatorSealink,
		FerryID:  "F1",
		ClassID:  "pClass",
		Seats:    seats,
	}
}

func layoutRequest() models.SeatLayoutRequest {
	return models.SeatLayoutRequest{
		Operator:   models.OperatorSealink,
		FerryID:    "F1",
		ClassID:    "pClass",
		TravelDate: futureDate(),
	}
}

func TestLoadSeatLayoutCachesResult(t *testing.T) {
	adapter := &fakeAdapter{name: models.OperatorSealink, layout: sampleLayout("A1", "A2")}
	svc := NewSeatLayoutService(adapter)

	first, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)
	second, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, adapter.layoutCalls)
}

func TestLoadSeatLayoutForceRefreshBypassesCache(t *testing.T) {
	adapter := &fakeAdapter{name: models.OperatorSealink, layout: sampleLayout("A1")}
	svc := NewSeatLayoutService(adapter)

	_, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)

	forced := layoutRequest()
	forced.ForceRefresh = true
	_, err = svc.LoadSeatLayout(context.Background(), forced)
	require.NoError(t, err)

	assert.Equal(t, 2, adapter.layoutCalls)
}

func TestLoadSeatLayoutCacheExpires(t *testing.T) {
	adapter := &fakeAdapter{name: models.OperatorSealink, layout: sampleLayout("A1")}
	svc := NewSeatLayoutService(adapter)

	base := time.Now()
	svc.now = func() time.Time { return base }

	_, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(SeatLayoutTTL + time.Second) }
	_, err = svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, adapter.layoutCalls)
}

func TestLoadSeatLayoutUnknownOperator(t *testing.T) {
	svc := NewSeatLayoutService(&fakeAdapter{name: models.OperatorSealink})

	req := layoutRequest()
	req.Operator = "ddspl"
	_, err := svc.LoadSeatLayout(context.Background(), req)
	assert.Error(t, err)
}

func TestLoadSeatLayoutOperatorError(t *testing.T) {
	adapter := &fakeAdapter{name: models.OperatorMakruzz, layoutErr: ErrSeatSelectionNotSupported}
	svc := NewSeatLayoutService(adapter)

	req := layoutRequest()
	req.Operator = models.OperatorMakruzz
	_, err := svc.LoadSeatLayout(context.Background(), req)
	assert.ErrorIs(t, err, ErrSeatSelectionNotSupported)
}

// gatedLayoutAdapter удерживает первый запрос схемы до release,
// последующие отвечают сразу
type gatedLayoutAdapter struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	layouts []*models.SeatLayout
}

func (g *gatedLayoutAdapter) Name() string { return models.OperatorSealink }

func (g *gatedLayoutAdapter) Search(ctx context.Context, params models.FerrySearchParams) ([]models.UnifiedFerryResult, error) {
	return nil, errors.New("not used")
}

func (g *gatedLayoutAdapter) SeatLayout(ctx context.Context, req models.SeatLayoutRequest) (*models.SeatLayout, error) {
	g.mu.Lock()
	g.calls++
	call := g.calls
	g.mu.Unlock()

	if call == 1 {
		close(g.started)
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return g.layouts[call-1], nil
}

func (g *gatedLayoutAdapter) CheckHealth(ctx context.Context) models.OperatorHealth {
	return models.OperatorHealth{Status: models.HealthOnline}
}

func TestLoadSeatLayoutStaleResponseSuperseded(t *testing.T) {
	adapter := &gatedLayoutAdapter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		layouts: []*models.SeatLayout{sampleLayout("A1"), sampleLayout("A1", "A2")},
	}
	svc := NewSeatLayoutService(adapter)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
		errCh <- err
	}()

	// Первый запрос висит внутри адаптера; второй (принудительный)
	// завершается раньше него
	<-adapter.started
	forced := layoutRequest()
	forced.ForceRefresh = true
	fresh, err := svc.LoadSeatLayout(context.Background(), forced)
	require.NoError(t, err)
	assert.Len(t, fresh.Seats, 2)

	close(adapter.release)
	assert.ErrorIs(t, <-errCh, ErrLayoutSuperseded)

	// В кэше осталась именно свежая схема
	cached, err := svc.LoadSeatLayout(context.Background(), layoutRequest())
	require.NoError(t, err)
	assert.Same(t, fresh, cached)
	assert.Equal(t, 2, adapter.calls)
}

func TestRequestFromResultGreenOceanRouteID(t *testing.T) {
	ferry := &models.UnifiedFerryResult{
		Operator:        models.OperatorGreenOcean,
		OperatorFerryID: "12",
		Schedule:        models.FerrySchedule{Date: "2026-10-01"},
		OperatorData: models.OperatorData{
			OriginalResponse: map[string]interface{}{"route_id": float64(7)},
		},
	}

	req := RequestFromResult(ferry, "3", true)

	assert.Equal(t, models.OperatorGreenOcean, req.Operator)
	assert.Equal(t, "12", req.FerryID)
	assert.Equal(t, 7, req.RouteID)
	assert.Equal(t, "2026-10-01", req.TravelDate)
	assert.True(t, req.ForceRefresh)
}

func TestRequestFromResultNativeTrip(t *testing.T) {
	ferry := &models.UnifiedFerryResult{
		Operator:     models.OperatorGreenOcean,
		OperatorData: models.OperatorData{OriginalResponse: models.GreenOceanTrip{RouteID: 4}},
	}

	assert.Equal(t, 4, RequestFromResult(ferry, "1", false).RouteID)
}

func TestRequestFromResultNonGreenOcean(t *testing.T) {
	ferry := &models.UnifiedFerryResult{
		Operator:        models.OperatorSealink,
		OperatorFerryID: "SL-1",
	}

	assert.Zero(t, RequestFromResult(ferry, "pClass", false).RouteID)
}
