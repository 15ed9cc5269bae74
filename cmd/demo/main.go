package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"realestate/internal/audit"
	bookingservice "realestate/internal/booking/service"
	dealmodels "realestate/internal/deal/models"
	dealservice "realestate/internal/deal/service"
	"realestate/internal/platform/config"
	"realestate/internal/platform/logger"
	"realestate/internal/platform/metrics"
	"realestate/internal/sample"
	"realestate/pkg/requestcontext"
)

// main walks one apartment from listing to transfer of title and prints the
// resulting ownership history and audit trail.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.App, log *slog.Logger) error {
	m := metrics.New(prometheus.NewRegistry(), cfg.MetricsNamespace)
	publisher := audit.NewPublisher(audit.NewInMemoryStore())
	bookings := bookingservice.New(
		bookingservice.WithLogger(log),
		bookingservice.WithPublisher(publisher),
		bookingservice.WithMetrics(m),
	)
	deals := dealservice.New(
		dealservice.WithLogger(log),
		dealservice.WithPublisher(publisher),
		dealservice.WithMetrics(m),
	)

	now := time.Now().UTC()
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
	ctx = requestcontext.WithTime(ctx, now)

	listedAt := now.AddDate(0, -1, 0)
	p := sample.NewProperty(listedAt)
	c := sample.NewClient(listedAt)
	a := sample.NewAgency(listedAt, p)
	log.InfoContext(ctx, "property listed", "property", p.String())

	b, err := bookings.Book(ctx, c, p, a, sample.NewPeriod(now), p.Price())
	if err != nil {
		return fmt.Errorf("book: %w", err)
	}
	if err := bookings.Confirm(ctx, b); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	details, err := dealmodels.NewDetails(now, p.Price(), "Купля-продажа", "", now)
	if err != nil {
		return fmt.Errorf("deal details: %w", err)
	}
	d, err := deals.Open(ctx, c, p, b, details)
	if err != nil {
		return fmt.Errorf("open deal: %w", err)
	}
	completed, err := deals.Close(ctx, d, c, p, b, c.FullName(), "Sale")
	if err != nil {
		return fmt.Errorf("close deal: %w", err)
	}

	log.InfoContext(ctx, "deal closed", "completed_deal", completed.String(), "client", c.String())
	for _, r := range p.OwnershipHistory() {
		log.InfoContext(ctx, "ownership", "record", r.String())
	}
	events, err := publisher.List(ctx, audit.AggregateProperty, p.ID().String())
	if err != nil {
		return fmt.Errorf("list audit events: %w", err)
	}
	for _, e := range events {
		log.InfoContext(ctx, "audit", "action", string(e.Action), "detail", e.Detail)
	}
	return nil
}
