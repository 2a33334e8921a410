package ferry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jangir-ritik/andamanexcursion-sub005/config"
	"github.com/jangir-ritik/andamanexcursion-sub005/models"
	"github.com/jangir-ritik/andamanexcursion-sub005/utils"
)

// BookingSession активный booking flow одного клиента.
// Выбор мест принадлежит только этой сессии; изоляция между вкладками —
// забота клиента, который держит session id.
type BookingSession struct {
	ID         string                     `json:"id"`
	Ferry      *models.UnifiedFerryResult `json:"ferry"`
	ClassID    string                     `json:"classId"`
	Adults     int                        `json:"adults"`
	Children   int                        `json:"children"`
	Infants    int                        `json:"infants"`
	Preference string                     `json:"preference"`
	Policy     SeatPolicy                 `json:"policy"`
	Selection  *SeatSelection             `json:"-"`
	Layout     *models.SeatLayout         `json:"seatLayout,omitempty"`
	CreatedAt  time.Time                  `json:"createdAt"`
}

// SeatedPassengers пассажиры с местами в этой сессии
func (bs *BookingSession) SeatedPassengers() int {
	return bs.Adults + bs.Children
}

// BookingService держит сессии бронирования и доводит их до сохраненной брони
type BookingService struct {
	mu       sync.RWMutex
	sessions map[string]*BookingSession

	layouts *SeatLayoutService
	db      *gorm.DB
	cfg     *config.Config
}

// NewBookingService создает сервис бронирования.
// db может быть nil — тогда брони не сохраняются (режим без Postgres).
func NewBookingService(db *gorm.DB, layouts *SeatLayoutService, cfg *config.Config) *BookingService {
	return &BookingService{
		sessions: make(map[string]*BookingSession),
		layouts:  layouts,
		db:       db,
		cfg:      cfg,
	}
}

// CreateSession открывает новую сессию для выбранного рейса и класса
func (b *BookingService) CreateSession(ferry *models.UnifiedFerryResult, classID string, adults, children, infants int) (*BookingSession, error) {
	if ferry.Class(classID) == nil {
		return nil, fmt.Errorf("class %s not found on ferry %s", classID, ferry.OperatorFerryID)
	}
	if adults < 1 {
		return nil, fmt.Errorf("at least one adult passenger is required")
	}

	policy := ResolvePolicy(ferry)
	session := &BookingSession{
		ID:         uuid.New().String(),
		Ferry:      ferry,
		ClassID:    classID,
		Adults:     adults,
		Children:   children,
		Infants:    infants,
		Preference: policy.DefaultPreference,
		Policy:     policy,
		Selection:  NewSeatSelection(adults + children),
		CreatedAt:  time.Now(),
	}

	b.mu.Lock()
	b.sessions[session.ID] = session
	b.mu.Unlock()
	return session, nil
}

// Session возвращает сессию по id
func (b *BookingService) Session(id string) (*BookingSession, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.sessions[id]
	return s, ok
}

// DropSession удаляет сессию (выход из booking flow)
func (b *BookingService) DropSession(id string) {
	b.mu.Lock()
	delete(b.sessions, id)
	b.mu.Unlock()
}

// SetPreference переключает manual/auto там, где оператор дает выбор
func (b *BookingService) SetPreference(id, preference string) error {
	session, ok := b.Session(id)
	if !ok {
		return fmt.Errorf("booking session not found")
	}
	if preference != PreferenceManual && preference != PreferenceAuto {
		return fmt.Errorf("invalid preference: %s", preference)
	}
	if session.Policy.ManualRequired && preference == PreferenceAuto {
		return fmt.Errorf("operator requires manual seat selection")
	}
	if !session.Policy.ChooserShown && preference != session.Policy.DefaultPreference {
		return fmt.Errorf("operator does not allow choosing a seat mode")
	}
	session.Preference = preference
	return nil
}

// ToggleSeat переключает место в выборе сессии, подгружая схему при необходимости
func (b *BookingService) ToggleSeat(ctx context.Context, id, seatID string) (*BookingSession, error) {
	session, ok := b.Session(id)
	if !ok {
		return nil, fmt.Errorf("booking session not found")
	}
	if session.Policy.ResolveMode(session.Preference) != PreferenceManual {
		return nil, fmt.Errorf("seat selection is not available in auto mode")
	}

	if session.Layout == nil {
		layout, err := b.layouts.LoadSeatLayout(ctx, RequestFromResult(session.Ferry, session.ClassID, false))
		if err != nil {
			return nil, err
		}
		session.Layout = layout
	}

	seat := session.Layout.Seat(seatID)
	if seat == nil {
		return nil, fmt.Errorf("seat %s not found in layout", seatID)
	}
	if seat.Status != models.SeatStatusAvailable {
		return nil, fmt.Errorf("seat %s is not available", seatID)
	}

	session.Selection.Toggle(seatID)
	return session, nil
}

// ClearSeats очищает выбор мест сессии
func (b *BookingService) ClearSeats(id string) error {
	session, ok := b.Session(id)
	if !ok {
		return fmt.Errorf("booking session not found")
	}
	session.Selection.Clear()
	return nil
}

// RefreshLayout принудительно перечитывает схему мест (после попытки брони).
// Выбранные места, пропавшие из новой схемы, молча выбрасываются.
func (b *BookingService) RefreshLayout(ctx context.Context, id string) (*BookingSession, error) {
	session, ok := b.Session(id)
	if !ok {
		return nil, fmt.Errorf("booking session not found")
	}
	layout, err := b.layouts.LoadSeatLayout(ctx, RequestFromResult(session.Ferry, session.ClassID, true))
	if err != nil {
		if err == ErrLayoutSuperseded {
			return session, nil
		}
		return nil, err
	}
	session.Layout = layout
	session.Selection.Resolve(layout)
	return session, nil
}

// Submit валидирует сессию и создает бронь.
// Оплата и подтверждение мест у оператора — следующий шаг вне этого сервиса.
func (b *BookingService) Submit(ctx context.Context, id string, contact models.ContactDetails, passengers []models.PassengerDetail) (*models.FerryBooking, error) {
	session, ok := b.Session(id)
	if !ok {
		return nil, fmt.Errorf("booking session not found")
	}

	mode := session.Policy.ResolveMode(session.Preference)
	var resolvedSeats []models.Seat
	if mode == PreferenceManual {
		// Перед оформлением перечитываем схему: чужая бронь могла занять места
		layout, err := b.layouts.LoadSeatLayout(ctx, RequestFromResult(session.Ferry, session.ClassID, true))
		if err != nil && err != ErrLayoutSuperseded {
			return nil, err
		}
		if layout != nil {
			session.Layout = layout
		}
		// При ErrLayoutSuperseded схему уже обновил более свежий запрос —
		// резолвим по схеме сессии, чтобы бронь не ушла без списка мест
		if session.Layout != nil {
			resolvedSeats = session.Selection.Resolve(session.Layout)
		}
	}

	validation := ValidateSeatSelection(session.Selection.SeatIDs(), session.SeatedPassengers(), session.Ferry, session.Preference)
	if !validation.IsValid {
		return nil, fmt.Errorf("%s", validation.Message)
	}
	if !CanProceedToCheckout(session.Selection.SeatIDs(), session.SeatedPassengers(), session.Ferry, session.ClassID, session.Preference) {
		return nil, fmt.Errorf("booking is not ready for checkout")
	}

	class := session.Ferry.Class(session.ClassID)
	seatsJSON, _ := json.Marshal(resolvedSeats)
	passengersJSON, _ := json.Marshal(passengers)

	booking := &models.FerryBooking{
		SessionID:     session.ID,
		Operator:      session.Ferry.Operator,
		FerryID:       session.Ferry.OperatorFerryID,
		FerryName:     session.Ferry.FerryName,
		ClassID:       session.ClassID,
		RouteFrom:     session.Ferry.Route.From,
		RouteTo:       session.Ferry.Route.To,
		TravelDate:    session.Ferry.Schedule.Date,
		DepartureTime: session.Ferry.Schedule.DepartureTime,
		Adults:        session.Adults,
		Children:      session.Children,
		Infants:       session.Infants,
		Seats:         datatypes.JSON(seatsJSON),
		Passengers:    datatypes.JSON(passengersJSON),
		ContactName:   contact.Name,
		ContactEmail:  contact.Email,
		ContactPhone:  contact.Phone,
		TotalFare:     class.Price * float64(session.SeatedPassengers()),
		Status:        models.BookingStatusSubmitted,
	}

	if b.db != nil {
		if err := b.db.Create(booking).Error; err != nil {
			return nil, fmt.Errorf("failed to save booking: %v", err)
		}
	}

	if b.cfg != nil && b.cfg.SMTPHost != "" && contact.Email != "" {
		go func(bk models.FerryBooking) {
			if err := utils.SendBookingConfirmation(&bk, b.cfg.SMTPHost, b.cfg.SMTPPort, b.cfg.SMTPUser, b.cfg.SMTPPass); err != nil {
				log.Printf("[BOOKING] confirmation email failed: %v", err)
				utils.LogError(err, "booking confirmation email")
			}
		}(*booking)
	}

	// Сессия завершена, выбор мест вместе с ней
	b.DropSession(id)
	return booking, nil
}
