package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"go.uber.org/zap"
)

// HotelUseCase is the operation set the core exposes to its front ends.
type HotelUseCase interface {
	AddRoom(ctx context.Context, room domain.Room) bool
	AddRooms(ctx context.Context, rooms []domain.Room) (int, error)
	ListRooms(ctx context.Context) []domain.Room
	GetRoom(ctx context.Context, number string) (domain.Room, bool)

	AddCustomer(ctx context.Context, email, firstName, lastName string) error
	GetCustomer(ctx context.Context, email string) (domain.Customer, bool)
	ListCustomers(ctx context.Context) []domain.Customer

	FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
	RecommendRooms(ctx context.Context, checkIn, checkOut time.Time) (*Recommendation, error)
	BookRoom(ctx context.Context, email string, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error)
	CustomerReservations(ctx context.Context, email string) []domain.Reservation
	AllReservations(ctx context.Context) []domain.Reservation
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Recommendation is the shifted window offered when the requested one has no room.
type Recommendation struct {
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
	Rooms    []domain.Room `json:"rooms"`
}

type HotelService struct {
	rooms              *repository.RoomInventory
	customers          *repository.CustomerRegistry
	reservations       *repository.ReservationStore
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	logger             *zap.Logger
}

type HotelServiceOption func(*HotelService)

func WithProducer(producer Producer, eventsTopic string) HotelServiceOption {
	return func(s *HotelService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) HotelServiceOption {
	return func(s *HotelService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(log *zap.Logger) HotelServiceOption {
	return func(s *HotelService) {
		s.logger = logger.OrNop(log)
	}
}

func NewHotelService(
	rooms *repository.RoomInventory,
	customers *repository.CustomerRegistry,
	reservations *repository.ReservationStore,
	opts ...HotelServiceOption,
) *HotelService {
	service := &HotelService{
		rooms:        rooms,
		customers:    customers,
		reservations: reservations,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *HotelService) AddRoom(_ context.Context, room domain.Room) bool {
	return s.rooms.AddRoom(room)
}

func (s *HotelService) AddRooms(_ context.Context, rooms []domain.Room) (int, error) {
	return s.rooms.AddRooms(rooms)
}

func (s *HotelService) ListRooms(_ context.Context) []domain.Room {
	return s.rooms.ListRooms()
}

func (s *HotelService) GetRoom(_ context.Context, number string) (domain.Room, bool) {
	return s.rooms.GetRoom(number)
}

func (s *HotelService) AddCustomer(_ context.Context, email, firstName, lastName string) error {
	return s.customers.AddCustomer(email, firstName, lastName)
}

func (s *HotelService) GetCustomer(_ context.Context, email string) (domain.Customer, bool) {
	return s.customers.GetCustomer(email)
}

func (s *HotelService) ListCustomers(_ context.Context) []domain.Customer {
	return s.customers.ListCustomers()
}

func (s *HotelService) FindAvailableRooms(_ context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	return s.reservations.AvailableRooms(checkIn, checkOut)
}

// RecommendRooms looks once at the window shifted by domain.RecommendationOffsetDays.
func (s *HotelService) RecommendRooms(ctx context.Context, checkIn, checkOut time.Time) (*Recommendation, error) {
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	in, out := domain.RecommendedWindow(checkIn, checkOut)
	rooms, err := s.reservations.AvailableRooms(in, out)
	if err != nil {
		return nil, err
	}
	s.logger.Info("recommended window",
		zap.String("check_in", domain.FormatDate(in)),
		zap.String("check_out", domain.FormatDate(out)),
		zap.Int("rooms", len(rooms)))
	return &Recommendation{CheckIn: in, CheckOut: out, Rooms: rooms}, nil
}

// BookRoom validates the stay, resolves the customer and books the room with the
// availability check and the insert in one step.
func (s *HotelService) BookRoom(ctx context.Context, email string, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	customer, ok := s.customers.GetCustomer(email)
	if !ok {
		return nil, fmt.Errorf("%q: %w", email, domain.ErrCustomerNotFound)
	}

	reservation, err := s.reservations.ReserveIfAvailable(customer, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.String("reservation_id", reservation.ID),
		zap.String("email", customer.Email),
		zap.String("room_number", reservation.Room.Number),
		zap.String("check_in", domain.FormatDate(reservation.CheckIn)),
		zap.String("check_out", domain.FormatDate(reservation.CheckOut)))

	if err := s.publish(ctx, kafka.EventReservationCreated, reservation); err != nil {
		s.logger.Warn("failed to publish reservation event", zap.String("reservation_id", reservation.ID), zap.Error(err))
	}
	return reservation, nil
}

func (s *HotelService) CustomerReservations(_ context.Context, email string) []domain.Reservation {
	return s.reservations.ReservationsFor(email)
}

func (s *HotelService) AllReservations(_ context.Context) []domain.Reservation {
	return s.reservations.AllReservations()
}

func (s *HotelService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewReservationEvent(eventType, reservation)
	if err := s.producer.Publish(ctx, s.eventsTopic, reservation.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reservation.ID, event)
	}
	return nil
}

var _ HotelUseCase = (*HotelService)(nil)
