package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

type roomResponse struct {
	Number     string `json:"number"`
	PriceCents int64  `json:"price_cents"`
	Type       string `json:"type"`
	Available  bool   `json:"available"`
}

type customerResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type reservationResponse struct {
	ID         string           `json:"id"`
	Customer   customerResponse `json:"customer"`
	Room       roomResponse     `json:"room"`
	CheckIn    string           `json:"check_in"`
	CheckOut   string           `json:"check_out"`
	Nights     int              `json:"nights"`
	TotalCents int64            `json:"total_cents"`
	CreatedAt  string           `json:"created_at"`
}

func toRoomResponse(r domain.Room) roomResponse {
	return roomResponse{
		Number:     r.Number,
		PriceCents: r.PriceCents,
		Type:       string(r.Type),
		Available:  r.IsAvailable(),
	}
}

func toRoomResponses(rooms []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:         r.ID,
		Customer:   toCustomerResponse(r.Customer),
		Room:       toRoomResponse(r.Room),
		CheckIn:    domain.FormatDate(r.CheckIn),
		CheckOut:   domain.FormatDate(r.CheckOut),
		Nights:     r.Nights(),
		TotalCents: r.TotalCents(),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func toReservationResponses(reservations []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCustomerNotFound), errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoomUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// parseStay reads an MM/dd/yyyy check-in/check-out pair.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := domain.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
