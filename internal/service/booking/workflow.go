package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"go.uber.org/zap"
)

// Prompter is what a front end supplies to drive a booking: a terminal, a
// scripted request or a test double.
type Prompter interface {
	Confirm(ctx context.Context) (bool, error)
	IsRegistered(ctx context.Context) (bool, error)
	Email(ctx context.Context) (string, error)
	// SelectRoom returns the room number picked from candidates.
	SelectRoom(ctx context.Context, candidates []domain.Room) (string, error)
}

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

type CancelReason string

const (
	ReasonDeclined        CancelReason = "declined"
	ReasonNotRegistered   CancelReason = "not_registered"
	ReasonUnknownCustomer CancelReason = "unknown_customer"
	ReasonNoAlternatives  CancelReason = "no_alternatives"
	ReasonRoomNotSelected CancelReason = "room_not_selected"
)

type Outcome struct {
	Status      Status              `json:"status"`
	Reason      CancelReason        `json:"reason,omitempty"`
	CheckIn     time.Time           `json:"check_in"`
	CheckOut    time.Time           `json:"check_out"`
	Recommended bool                `json:"recommended"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
}

// Orchestrator runs the booking workflow:
// confirm, registered, resolve customer, select room, book.
type Orchestrator struct {
	hotel  HotelUseCase
	logger *zap.Logger
}

func NewOrchestrator(hotel HotelUseCase, log *zap.Logger) *Orchestrator {
	return &Orchestrator{hotel: hotel, logger: logger.OrNop(log)}
}

// Run books one of candidates for [checkIn, checkOut). When the chosen room is not a
// candidate it retries exactly once on the window shifted by seven days.
// Errors are reserved for prompter failures and failed bookings; every other exit
// is a cancelled Outcome.
func (o *Orchestrator) Run(ctx context.Context, p Prompter, checkIn, checkOut time.Time, candidates []domain.Room) (*Outcome, error) {
	in, out := domain.DateOf(checkIn), domain.DateOf(checkOut)
	recommended := false

	for {
		outcome := &Outcome{CheckIn: in, CheckOut: out, Recommended: recommended}

		reason, email, err := o.identify(ctx, p)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			return o.cancel(outcome, reason), nil
		}

		number, err := p.SelectRoom(ctx, candidates)
		if err != nil {
			return nil, err
		}
		room, ok := findRoom(candidates, number)
		if ok {
			reservation, err := o.hotel.BookRoom(ctx, email, room, in, out)
			if err != nil {
				return nil, err
			}
			outcome.Status = StatusBooked
			outcome.Reservation = reservation
			return outcome, nil
		}

		if recommended {
			return o.cancel(outcome, ReasonRoomNotSelected), nil
		}

		rec, err := o.hotel.RecommendRooms(ctx, in, out)
		if err != nil {
			return nil, err
		}
		if len(rec.Rooms) == 0 {
			return o.cancel(outcome, ReasonNoAlternatives), nil
		}
		o.logger.Info("room not available, offering recommended dates",
			zap.String("room_number", number),
			zap.String("check_in", domain.FormatDate(rec.CheckIn)),
			zap.String("check_out", domain.FormatDate(rec.CheckOut)))
		in, out, candidates, recommended = rec.CheckIn, rec.CheckOut, rec.Rooms, true
	}
}

// identify runs the three gates before room selection and returns the resolved
// email, or the reason the flow stops.
func (o *Orchestrator) identify(ctx context.Context, p Prompter) (CancelReason, string, error) {
	proceed, err := p.Confirm(ctx)
	if err != nil {
		return "", "", err
	}
	if !proceed {
		return ReasonDeclined, "", nil
	}

	registered, err := p.IsRegistered(ctx)
	if err != nil {
		return "", "", err
	}
	if !registered {
		return ReasonNotRegistered, "", nil
	}

	email, err := p.Email(ctx)
	if err != nil {
		return "", "", err
	}
	customer, ok := o.hotel.GetCustomer(ctx, email)
	if !ok {
		return ReasonUnknownCustomer, "", nil
	}
	return "", customer.Email, nil
}

func (o *Orchestrator) cancel(outcome *Outcome, reason CancelReason) *Outcome {
	o.logger.Info("booking cancelled", zap.String("reason", string(reason)), zap.Bool("recommended", outcome.Recommended))
	outcome.Status = StatusCancelled
	outcome.Reason = reason
	return outcome
}

func findRoom(candidates []domain.Room, number string) (domain.Room, bool) {
	for _, room := range candidates {
		if room.Number == number {
			return room, true
		}
	}
	return domain.Room{}, false
}
