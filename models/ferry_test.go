package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validSearchParams() FerrySearchParams {
	return FerrySearchParams{
		From:   "port-blair",
		To:     "havelock",
		Date:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Adults: 2,
	}
}

func TestSearchParamsValidate(t *testing.T) {
	assert.NoError(t, validSearchParams().Validate())

	p := validSearchParams()
	p.To = p.From
	assert.Error(t, p.Validate())

	p = validSearchParams()
	p.Adults = 0
	assert.Error(t, p.Validate())

	p = validSearchParams()
	p.Date = "2020-01-01"
	assert.Error(t, p.Validate())

	p = validSearchParams()
	p.Date = "01/01/2027"
	assert.Error(t, p.Validate())

	p = validSearchParams()
	p.Children = -1
	assert.Error(t, p.Validate())

	// Сегодняшняя дата валидна в любое время суток и в любой зоне
	p = validSearchParams()
	p.Date = time.Now().Format("2006-01-02")
	assert.NoError(t, p.Validate())
}

func TestSeatedPassengersExcludesInfants(t *testing.T) {
	p := FerrySearchParams{Adults: 2, Children: 1, Infants: 2}
	assert.Equal(t, 3, p.SeatedPassengers())
}

func TestSeatLayoutHelpers(t *testing.T) {
	layout := SeatLayout{
		Seats: []Seat{
			{ID: "A1", Status: SeatStatusAvailable},
			{ID: "A2", Status: SeatStatusBooked},
			{ID: "A3", Status: SeatStatusBlocked},
		},
	}

	assert.Equal(t, 1, layout.AvailableCount())
	assert.NotNil(t, layout.Seat("A2"))
	assert.Nil(t, layout.Seat("Z9"))
}

func TestUnifiedResultClassLookup(t *testing.T) {
	r := UnifiedFerryResult{Classes: []FerryClass{{ID: "pClass"}, {ID: "bClass"}}}
	assert.NotNil(t, r.Class("bClass"))
	assert.Nil(t, r.Class("luxury"))
}

func TestResolvePortAliases(t *testing.T) {
	p, ok := ResolvePort("Swaraj Dweep")
	assert.True(t, ok)
	assert.Equal(t, "Havelock", p.Label)

	p, ok = ResolvePort("  PORT BLAIR ")
	assert.True(t, ok)
	assert.Equal(t, "1", p.MakruzzID)

	_, ok = ResolvePort("atlantis")
	assert.False(t, ok)
}
