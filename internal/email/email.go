package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"go.uber.org/zap"
)

// Sender renders booking confirmations. Delivery is a log line; no mail provider is wired.
type Sender struct {
	logger *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{logger: logger.OrNop(log)}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	s.logger.Info("send confirmation email",
		zap.String("to", event.Email),
		zap.String("subject", Subject(event)),
		zap.String("body", Body(event)))
	return nil
}

func Subject(event kafka.ReservationEvent) string {
	return fmt.Sprintf("Your reservation for room %s is confirmed", event.RoomNumber)
}

func Body(event kafka.ReservationEvent) string {
	return fmt.Sprintf("Dear %s %s,\n\nRoom %s (%s) is booked from %s to %s.\nReservation: %s\n",
		event.FirstName, event.LastName, event.RoomNumber, event.RoomType, event.CheckIn, event.CheckOut, event.ID)
}
