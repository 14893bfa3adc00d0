package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hotel",
		Short:        "Hotel room booking service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hotel %s (commit=%s)\n", Version, CommitSHA)
		},
	}
}

func newServeCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the booking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the environment may already be set.
			_ = godotenv.Load()

			cfg, err := config.LoadConfig(config.Path(cfgPath))
			if err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-api")
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rooms := repository.NewRoomInventory(log)
			customers := repository.NewCustomerRegistry(log)
			reservations := repository.NewReservationStore(rooms, customers, log)

			opts := []booking.HotelServiceOption{booking.WithLogger(log)}
			if cfg.Kafka.Enabled() {
				producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
				defer producer.Close()
				if err := producer.CheckConnection(ctx); err != nil {
					log.Warn("kafka is not reachable, reservation events may be lost", zap.Error(err))
				}
				opts = append(opts,
					booking.WithProducer(producer, cfg.Kafka.ReservationEventsTopic),
					booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
				)
			}
			hotel := booking.NewHotelService(rooms, customers, reservations, opts...)

			added, err := bootstrap.SeedRooms(ctx, hotel, cfg.Rooms)
			if err != nil {
				return fmt.Errorf("seed rooms: %w", err)
			}
			log.Info("rooms seeded", zap.Int("count", added))

			return bootstrap.Run(ctx, cfg, hotel, log)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file (defaults to $CONFIG_PATH or config.yaml)")
	return cmd
}
