package ferry

import (
	"sync"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

// SeatSelection упорядоченный выбор мест одного бронирования.
// Принадлежит ровно одной активной сессии бронирования; размер ограничен
// числом пассажиров. Состояние сбрасывается при смене парома или класса.
type SeatSelection struct {
	mu         sync.Mutex
	passengers int
	seatIDs    []string
}

// NewSeatSelection создает выбор мест с потолком в passengers мест
func NewSeatSelection(passengers int) *SeatSelection {
	return &SeatSelection{passengers: passengers}
}

// Toggle переключает членство места в выборе.
// Уже выбранное место снимается. Новое место добавляется; если потолок
// достигнут, самое старое место (индекс 0) вытесняется — FIFO-замещение
// сохраняет последнее намерение пользователя, не превышая лимит.
func (s *SeatSelection) Toggle(seatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.seatIDs {
		if id == seatID {
			s.seatIDs = append(s.seatIDs[:i], s.seatIDs[i+1:]...)
			return
		}
	}
	if len(s.seatIDs) == s.passengers {
		s.seatIDs = s.seatIDs[1:]
	}
	s.seatIDs = append(s.seatIDs, seatID)
}

// Clear безусловно очищает выбор
func (s *SeatSelection) Clear() {
	s.mu.Lock()
	s.seatIDs = nil
	s.mu.Unlock()
}

// SeatIDs возвращает копию выбранных id в порядке выбора
func (s *SeatSelection) SeatIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seatIDs))
	copy(out, s.seatIDs)
	return out
}

// Resolve сопоставляет выбранные id со свежей схемой мест.
// Id, пропавшие из схемы, молча выбрасываются (и из результата, и из
// самого выбора) — это не ошибка.
func (s *SeatSelection) Resolve(layout *models.SeatLayout) []models.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := make([]models.Seat, 0, len(s.seatIDs))
	kept := s.seatIDs[:0]
	for _, id := range s.seatIDs {
		if seat := layout.Seat(id); seat != nil {
			resolved = append(resolved, *seat)
			kept = append(kept, id)
		}
	}
	s.seatIDs = kept
	return resolved
}
