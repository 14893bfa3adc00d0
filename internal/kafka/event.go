package kafka

import (
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

const EventReservationCreated = "reservation_created"

type ReservationEvent struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	RoomNumber string    `json:"room_number"`
	RoomType   string    `json:"room_type"`
	PriceCents int64     `json:"price_cents"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReservationEvent(eventType string, r *domain.Reservation) ReservationEvent {
	return ReservationEvent{
		Type:       eventType,
		ID:         r.ID,
		Email:      r.Customer.Email,
		FirstName:  r.Customer.FirstName,
		LastName:   r.Customer.LastName,
		RoomNumber: r.Room.Number,
		RoomType:   string(r.Room.Type),
		PriceCents: r.Room.PriceCents,
		CheckIn:    domain.FormatDate(r.CheckIn),
		CheckOut:   domain.FormatDate(r.CheckOut),
		CreatedAt:  r.CreatedAt,
	}
}
