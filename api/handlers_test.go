package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/report"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestRoomHandler_create(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewRoomHandler(mockService)

	c, w := newTestContext("POST", "/rooms", map[string]interface{}{"number": "101", "price_cents": 10000, "type": "1"})
	room := domain.Room{Number: "101", PriceCents: 10000, Type: domain.RoomTypeSingle}
	mockService.On("AddRoom", mock.Anything, room).Return(true).Once()

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Room roomResponse `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SINGLE", response.Room.Type)
	assert.True(t, response.Room.Available)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_create_Duplicate(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewRoomHandler(mockService)

	c, w := newTestContext("POST", "/rooms", map[string]interface{}{"number": "101", "price_cents": 0, "type": "DOUBLE"})
	existing := domain.Room{Number: "101", PriceCents: 10000, Type: domain.RoomTypeSingle}
	mockService.On("AddRoom", mock.Anything, mock.Anything).Return(false).Once()
	mockService.On("GetRoom", mock.Anything, "101").Return(existing, true).Once()

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Room    roomResponse `json:"room"`
		Warning string       `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(10000), response.Room.PriceCents)
	assert.NotEmpty(t, response.Warning)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_create_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing price", map[string]interface{}{"number": "101", "type": "1"}},
		{"unknown type", map[string]interface{}{"number": "101", "price_cents": 100, "type": "SUITE"}},
		{"negative price", map[string]interface{}{"number": "101", "price_cents": -1, "type": "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockHotelUseCase{}
			handler := NewRoomHandler(mockService)
			c, w := newTestContext("POST", "/rooms", tc.body)

			handler.create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "AddRoom", mock.Anything, mock.Anything)
		})
	}
}

func TestRoomHandler_get_NotFound(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewRoomHandler(mockService)

	c, w := newTestContext("GET", "/rooms/404", nil)
	c.Params = gin.Params{{Key: "number", Value: "404"}}
	mockService.On("GetRoom", mock.Anything, "404").Return(domain.Room{}, false).Once()

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_create_InvalidEmail(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewCustomerHandler(mockService)

	c, w := newTestContext("POST", "/customers", createCustomerRequest{Email: "nope", FirstName: "Ann", LastName: "Bee"})
	mockService.On("GetCustomer", mock.Anything, "nope").Return(domain.Customer{}, false).Once()
	mockService.On("AddCustomer", mock.Anything, "nope", "Ann", "Bee").
		Return(fmt.Errorf("%q: %w", "nope", domain.ErrInvalidEmail)).Once()

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestCustomerHandler_create(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewCustomerHandler(mockService)
	ann := domain.Customer{Email: "ann@example.com", FirstName: "Ann", LastName: "Bee"}

	c, w := newTestContext("POST", "/customers", createCustomerRequest{Email: "ann@example.com", FirstName: "Ann", LastName: "Bee"})
	mockService.On("GetCustomer", mock.Anything, "ann@example.com").Return(domain.Customer{}, false).Once()
	mockService.On("AddCustomer", mock.Anything, "ann@example.com", "Ann", "Bee").Return(nil).Once()
	mockService.On("GetCustomer", mock.Anything, "ann@example.com").Return(ann, true).Once()

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Customer customerResponse `json:"customer"`
		Warning  string           `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Ann", response.Customer.FirstName)
	assert.Empty(t, response.Warning)
	mockService.AssertExpectations(t)
}

func TestCustomerHandler_create_Duplicate(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewCustomerHandler(mockService)
	ann := domain.Customer{Email: "ann@example.com", FirstName: "Ann", LastName: "Bee"}

	c, w := newTestContext("POST", "/customers", createCustomerRequest{Email: "ann@example.com", FirstName: "Augusta", LastName: "King"})
	mockService.On("GetCustomer", mock.Anything, "ann@example.com").Return(ann, true).Once()

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Customer customerResponse `json:"customer"`
		Warning  string           `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Ann", response.Customer.FirstName)
	assert.NotEmpty(t, response.Warning)
	mockService.AssertNotCalled(t, "AddCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockService.AssertExpectations(t)
}

func TestCustomerHandler_reservations_Empty(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewCustomerHandler(mockService)

	c, w := newTestContext("GET", "/customers/a@b.com/reservations", nil)
	c.Params = gin.Params{{Key: "email", Value: "a@b.com"}}
	mockService.On("CustomerReservations", mock.Anything, "a@b.com").Return([]domain.Reservation{}).Once()

	handler.reservations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestReservationHandler_create_Errors(t *testing.T) {
	room := domain.Room{Number: "101", PriceCents: 10000, Type: domain.RoomTypeSingle}
	in, out := day(2024, time.January, 10), day(2024, time.January, 12)

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown customer", fmt.Errorf("x: %w", domain.ErrCustomerNotFound), http.StatusNotFound},
		{"room taken", fmt.Errorf("x: %w", domain.ErrRoomUnavailable), http.StatusConflict},
		{"bad dates", fmt.Errorf("x: %w", domain.ErrInvalidArgument), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockHotelUseCase{}
			handler := NewReservationHandler(mockService, nil)
			c, w := newTestContext("POST", "/reservations", createReservationRequest{
				Email: "a@b.com", RoomNumber: "101", CheckIn: "01/10/2024", CheckOut: "01/12/2024",
			})
			mockService.On("GetRoom", mock.Anything, "101").Return(room, true).Once()
			mockService.On("BookRoom", mock.Anything, "a@b.com", room, in, out).Return(nil, tc.err).Once()

			handler.create(c)

			assert.Equal(t, tc.expected, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReservationHandler_create_BadDateFormat(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewReservationHandler(mockService, nil)
	c, w := newTestContext("POST", "/reservations", createReservationRequest{
		Email: "a@b.com", RoomNumber: "101", CheckIn: "2024-01-10", CheckOut: "01/12/2024",
	})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "BookRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationHandler_availability_Recommended(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewReservationHandler(mockService, nil)
	in, out := day(2024, time.January, 10), day(2024, time.January, 12)

	c, w := newTestContext("GET", "/availability?check_in=01/10/2024&check_out=01/12/2024", nil)
	mockService.On("FindAvailableRooms", mock.Anything, in, out).Return([]domain.Room{}, nil).Once()
	mockService.On("RecommendRooms", mock.Anything, in, out).Return(&booking.Recommendation{
		CheckIn:  day(2024, time.January, 17),
		CheckOut: day(2024, time.January, 19),
		Rooms:    []domain.Room{{Number: "101", PriceCents: 10000, Type: domain.RoomTypeSingle}},
	}, nil).Once()

	handler.availability(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response availabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Rooms)
	require.NotNil(t, response.Recommended)
	assert.Equal(t, "01/17/2024", response.Recommended.CheckIn)
	assert.Equal(t, "101", response.Recommended.Rooms[0].Number)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_availability_MissingQuery(t *testing.T) {
	handler := NewReservationHandler(&MockHotelUseCase{}, nil)
	c, w := newTestContext("GET", "/availability?check_in=01/10/2024", nil)

	handler.availability(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_export(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewReservationHandler(mockService, nil)
	c, w := newTestContext("GET", "/reservations/export", nil)
	mockService.On("AllReservations", mock.Anything).Return([]domain.Reservation{{
		ID:       "res-1",
		Customer: domain.Customer{FirstName: "Ann", LastName: "Bee", Email: "a@b.com"},
		Room:     domain.Room{Number: "101", PriceCents: 10000, Type: domain.RoomTypeSingle},
		CheckIn:  day(2024, time.January, 10),
		CheckOut: day(2024, time.January, 12),
	}}).Once()

	handler.export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.ReservationsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
