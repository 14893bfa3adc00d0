package domain

import "time"

type Reservation struct {
	ID        string    `json:"id"`
	Customer  Customer  `json:"customer"`
	Room      Room      `json:"room"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

// Overlaps applies the half-open interval test: touching windows do not conflict.
func (r Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && checkOut.After(r.CheckIn)
}

func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r Reservation) TotalCents() int64 {
	return int64(r.Nights()) * r.Room.PriceCents
}
