package ferry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

func TestSeatSelectionFIFOEviction(t *testing.T) {
	sel := NewSeatSelection(2)

	sel.Toggle("A1")
	sel.Toggle("A2")
	sel.Toggle("A3")

	assert.Equal(t, []string{"A2", "A3"}, sel.SeatIDs())
}

func TestSeatSelectionToggleOff(t *testing.T) {
	sel := NewSeatSelection(3)

	sel.Toggle("A1")
	sel.Toggle("A2")
	sel.Toggle("A1")

	assert.Equal(t, []string{"A2"}, sel.SeatIDs())
}

func TestSeatSelectionClear(t *testing.T) {
	sel := NewSeatSelection(2)
	sel.Toggle("A1")
	sel.Toggle("A2")

	sel.Clear()

	assert.Empty(t, sel.SeatIDs())

	// Выбор остается рабочим после очистки
	sel.Toggle("B1")
	assert.Equal(t, []string{"B1"}, sel.SeatIDs())
}

func TestSeatSelectionResolveDropsVanishedSeats(t *testing.T) {
	sel := NewSeatSelection(3)
	sel.Toggle("A1")
	sel.Toggle("A2")
	sel.Toggle("A3")

	layout := &models.SeatLayout{
		Operator: models.OperatorSealink,
		Seats: []models.Seat{
			{ID: "A1", Number: "1", Status: models.SeatStatusAvailable},
			{ID: "A3", Number: "3", Status: models.SeatStatusAvailable},
		},
	}

	resolved := sel.Resolve(layout)

	assert.Len(t, resolved, 2)
	assert.Equal(t, "A1", resolved[0].ID)
	assert.Equal(t, "A3", resolved[1].ID)
	// Пропавшее место выброшено и из самого выбора
	assert.Equal(t, []string{"A1", "A3"}, sel.SeatIDs())
}

func TestSeatSelectionSeatIDsReturnsCopy(t *testing.T) {
	sel := NewSeatSelection(2)
	sel.Toggle("A1")

	ids := sel.SeatIDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"A1"}, sel.SeatIDs())
}
