package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"go.uber.org/zap"
)

type Deduper interface {
	MarkNotified(ctx context.Context, reservationID string) (bool, error)
	Forget(ctx context.Context, reservationID string) error
}

type Mailer interface {
	Send(ctx context.Context, event kafka.ReservationEvent) error
}

// Notifier sends one confirmation per reservation, however often the event is delivered.
type Notifier struct {
	dedup  Deduper
	mailer Mailer
	logger *zap.Logger
}

func NewNotifier(dedup Deduper, mailer Mailer, log *zap.Logger) *Notifier {
	return &Notifier{dedup: dedup, mailer: mailer, logger: logger.OrNop(log)}
}

func (n *Notifier) Handle(ctx context.Context, event kafka.ReservationEvent) error {
	if event.Type != kafka.EventReservationCreated {
		n.logger.Debug("skip event", zap.String("type", event.Type))
		return nil
	}

	first, err := n.dedup.MarkNotified(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("mark reservation %s notified: %w", event.ID, err)
	}
	if !first {
		n.logger.Info("duplicate delivery ignored", zap.String("reservation_id", event.ID))
		return nil
	}

	if err := n.mailer.Send(ctx, event); err != nil {
		if ferr := n.dedup.Forget(ctx, event.ID); ferr != nil {
			n.logger.Warn("release notification marker", zap.String("reservation_id", event.ID), zap.Error(ferr))
		}
		return fmt.Errorf("send confirmation for %s: %w", event.ID, err)
	}
	return nil
}
