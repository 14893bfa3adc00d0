package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationStore keeps reservations grouped by customer email and answers
// availability against the room inventory. Every reservation refers to a room in
// the inventory and a customer in the registry.
//
// Lock order: the store lock is always taken before the inventory and registry locks.
type ReservationStore struct {
	mu         sync.RWMutex
	rooms      *RoomInventory
	registry   *CustomerRegistry
	byCustomer map[string][]domain.Reservation
	customers  []string
	now        func() time.Time
	logger     *zap.Logger
}

type ReservationStoreOption func(*ReservationStore)

func WithClock(now func() time.Time) ReservationStoreOption {
	return func(s *ReservationStore) {
		s.now = now
	}
}

func NewReservationStore(rooms *RoomInventory, customers *CustomerRegistry, log *zap.Logger, opts ...ReservationStoreOption) *ReservationStore {
	store := &ReservationStore{
		rooms:      rooms,
		registry:   customers,
		byCustomer: make(map[string][]domain.Reservation),
		now:        time.Now,
		logger:     logger.OrNop(log),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Reserve records a reservation without looking at existing ones. Callers that
// need the no-overlap guarantee use ReserveIfAvailable.
func (s *ReservationStore) Reserve(customer domain.Customer, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered, stored, err := s.validateLocked(customer, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return s.appendLocked(registered, stored, checkIn, checkOut), nil
}

// ReserveIfAvailable checks availability and records the reservation in one
// critical section, so two bookers can never both win the same room and window.
func (s *ReservationStore) ReserveIfAvailable(customer domain.Customer, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered, stored, err := s.validateLocked(customer, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if s.isBookedLocked(stored.Number, domain.DateOf(checkIn), domain.DateOf(checkOut)) {
		s.logger.Info("room already booked for window",
			zap.String("room_number", stored.Number),
			zap.String("check_in", domain.FormatDate(checkIn)),
			zap.String("check_out", domain.FormatDate(checkOut)))
		return nil, fmt.Errorf("room %s: %w", stored.Number, domain.ErrRoomUnavailable)
	}
	return s.appendLocked(registered, stored, checkIn, checkOut), nil
}

// AvailableRooms returns every room, free ones included, that no reservation
// overlapping [checkIn, checkOut) refers to.
func (s *ReservationStore) AvailableRooms(checkIn, checkOut time.Time) ([]domain.Room, error) {
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	booked := s.bookedRoomsLocked(domain.DateOf(checkIn), domain.DateOf(checkOut))
	all := s.rooms.ListAllRooms()
	available := make([]domain.Room, 0, len(all))
	for _, room := range all {
		if _, taken := booked[room.Number]; !taken {
			available = append(available, room)
		}
	}
	return available, nil
}

func (s *ReservationStore) ReservationsFor(email string) []domain.Reservation {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return []domain.Reservation{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byCustomer[normalized]
	out := make([]domain.Reservation, len(list))
	copy(out, list)
	return out
}

func (s *ReservationStore) AllReservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allLocked()
}

// validateLocked resolves the customer and room to the copies held by the
// registry and the inventory.
func (s *ReservationStore) validateLocked(customer domain.Customer, room domain.Room, checkIn, checkOut time.Time) (domain.Customer, domain.Room, error) {
	if strings.TrimSpace(customer.Email) == "" {
		return domain.Customer{}, domain.Room{}, fmt.Errorf("customer is required: %w", domain.ErrInvalidArgument)
	}
	if room.Number == "" {
		return domain.Customer{}, domain.Room{}, fmt.Errorf("room is required: %w", domain.ErrInvalidArgument)
	}
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return domain.Customer{}, domain.Room{}, err
	}
	registered, ok := s.registry.GetCustomer(customer.Email)
	if !ok {
		return domain.Customer{}, domain.Room{}, fmt.Errorf("%q: %w", customer.Email, domain.ErrCustomerNotFound)
	}
	stored, ok := s.rooms.GetRoom(room.Number)
	if !ok {
		return domain.Customer{}, domain.Room{}, fmt.Errorf("room %s: %w", room.Number, domain.ErrRoomNotFound)
	}
	return registered, stored, nil
}

func (s *ReservationStore) appendLocked(customer domain.Customer, room domain.Room, checkIn, checkOut time.Time) *domain.Reservation {
	reservation := domain.Reservation{
		ID:        uuid.NewString(),
		Customer:  customer,
		Room:      room,
		CheckIn:   domain.DateOf(checkIn),
		CheckOut:  domain.DateOf(checkOut),
		CreatedAt: s.now().UTC(),
	}

	key, _ := domain.NormalizeEmail(customer.Email)
	if _, seen := s.byCustomer[key]; !seen {
		s.customers = append(s.customers, key)
	}
	s.byCustomer[key] = append(s.byCustomer[key], reservation)

	s.logger.Debug("reservation recorded",
		zap.String("reservation_id", reservation.ID),
		zap.String("email", customer.Email),
		zap.String("room_number", room.Number))
	return &reservation
}

func (s *ReservationStore) bookedRoomsLocked(checkIn, checkOut time.Time) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, reservation := range s.allLocked() {
		if reservation.Overlaps(checkIn, checkOut) {
			booked[reservation.Room.Number] = struct{}{}
		}
	}
	return booked
}

func (s *ReservationStore) isBookedLocked(roomNumber string, checkIn, checkOut time.Time) bool {
	for _, email := range s.customers {
		for _, reservation := range s.byCustomer[email] {
			if reservation.Room.Number == roomNumber && reservation.Overlaps(checkIn, checkOut) {
				return true
			}
		}
	}
	return false
}

func (s *ReservationStore) allLocked() []domain.Reservation {
	all := make([]domain.Reservation, 0)
	for _, email := range s.customers {
		all = append(all, s.byCustomer[email]...)
	}
	return all
}
