package api

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/stretchr/testify/mock"
)

// MockHotelUseCase is a mock implementation of booking.HotelUseCase
type MockHotelUseCase struct {
	mock.Mock
}

func (m *MockHotelUseCase) AddRoom(ctx context.Context, room domain.Room) bool {
	return m.Called(ctx, room).Bool(0)
}

func (m *MockHotelUseCase) AddRooms(ctx context.Context, rooms []domain.Room) (int, error) {
	args := m.Called(ctx, rooms)
	return args.Int(0), args.Error(1)
}

func (m *MockHotelUseCase) ListRooms(ctx context.Context) []domain.Room {
	return m.Called(ctx).Get(0).([]domain.Room)
}

func (m *MockHotelUseCase) GetRoom(ctx context.Context, number string) (domain.Room, bool) {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.Room), args.Bool(1)
}

func (m *MockHotelUseCase) AddCustomer(ctx context.Context, email, firstName, lastName string) error {
	return m.Called(ctx, email, firstName, lastName).Error(0)
}

func (m *MockHotelUseCase) GetCustomer(ctx context.Context, email string) (domain.Customer, bool) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Customer), args.Bool(1)
}

func (m *MockHotelUseCase) ListCustomers(ctx context.Context) []domain.Customer {
	return m.Called(ctx).Get(0).([]domain.Customer)
}

func (m *MockHotelUseCase) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockHotelUseCase) RecommendRooms(ctx context.Context, checkIn, checkOut time.Time) (*booking.Recommendation, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Recommendation), args.Error(1)
}

func (m *MockHotelUseCase) BookRoom(ctx context.Context, email string, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, email, room, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockHotelUseCase) CustomerReservations(ctx context.Context, email string) []domain.Reservation {
	return m.Called(ctx, email).Get(0).([]domain.Reservation)
}

func (m *MockHotelUseCase) AllReservations(ctx context.Context) []domain.Reservation {
	return m.Called(ctx).Get(0).([]domain.Reservation)
}

var _ booking.HotelUseCase = (*MockHotelUseCase)(nil)
