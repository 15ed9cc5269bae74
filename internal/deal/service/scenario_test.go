package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/audit"
	bookingmodels "realestate/internal/booking/models"
	bookingservice "realestate/internal/booking/service"
	dealmodels "realestate/internal/deal/models"
	dealservice "realestate/internal/deal/service"
	property "realestate/internal/property/models"
	"realestate/internal/sample"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/requestcontext"
	"realestate/pkg/testutil"
)

func TestBookingToTransferOfTitle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := audit.NewInMemoryStore()
	publisher := audit.NewPublisher(store)
	bookings := bookingservice.New(bookingservice.WithLogger(logger), bookingservice.WithPublisher(publisher))
	deals := dealservice.New(dealservice.WithLogger(logger), dealservice.WithPublisher(publisher))

	listedAt := sample.FixedNow
	closedAt := listedAt.AddDate(0, 0, 10)
	ctx := requestcontext.WithTime(context.Background(), listedAt)

	p := sample.NewProperty(listedAt)
	c := sample.NewClient(listedAt)
	a := sample.NewAgency(listedAt, p)

	testutil.Given(t, "a listed apartment and a confirmed booking", func(t *testing.T) {
		b, err := bookings.Book(ctx, c, p, a, sample.NewPeriod(listedAt), domain.MustPrice(sample.ListingPrice))
		require.NoError(t, err)
		require.NoError(t, bookings.Confirm(ctx, b))
		assert.Equal(t, property.StatusReserved, p.Status())
		assert.True(t, c.HasBooking(b.ID()))

		testutil.When(t, "another client tries to buy it without the booking", func(t *testing.T) {
			stranger := sample.NewClient(listedAt)
			details, err := dealmodels.NewDetails(listedAt, p.Price(), "Купля-продажа", "", listedAt)
			require.NoError(t, err)
			_, err = deals.Open(ctx, stranger, p, nil, details)

			testutil.Then(t, "the reservation protects the holder", func(t *testing.T) {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
				assert.Equal(t, property.StatusReserved, p.Status())
			})
		})

		testutil.When(t, "the deal is opened and closed", func(t *testing.T) {
			closeCtx := requestcontext.WithTime(context.Background(), closedAt)
			details, err := dealmodels.NewDetails(closedAt, p.Price(), "Купля-продажа", "", closedAt)
			require.NoError(t, err)
			d, err := deals.Open(closeCtx, c, p, b, details)
			require.NoError(t, err)
			completed, err := deals.Close(closeCtx, d, c, p, b, "Petrov P.P.", "Sale")
			require.NoError(t, err)

			testutil.Then(t, "title passes to the buyer", func(t *testing.T) {
				assert.Equal(t, property.StatusSold, p.Status())
				records := p.OwnershipHistory()
				require.Len(t, records, 2)
				assert.Equal(t, "Ivanov I.I.", records[0].OwnerName().String())
				end, ok := records[0].EndDate()
				assert.True(t, ok)
				assert.Equal(t, closedAt, end)
				owner, ok := p.CurrentOwner()
				require.True(t, ok)
				assert.Equal(t, "Petrov P.P.", owner.OwnerName().String())
			})

			testutil.And(t, "the client keeps the completed deal and the booking is done", func(t *testing.T) {
				require.Len(t, c.CompletedDeals(), 1)
				assert.Equal(t, completed.ID(), c.CompletedDeals()[0].ID())
				assert.Equal(t, bookingmodels.StatusCompleted, b.Status())
			})

			testutil.And(t, "the property audit trail is ordered", func(t *testing.T) {
				events, err := publisher.List(context.Background(), audit.AggregateProperty, p.ID().String())
				require.NoError(t, err)
				var actions []audit.Action
				for _, e := range events {
					actions = append(actions, e.Action)
				}
				assert.Equal(t, []audit.Action{
					audit.ActionPropertyReserved,
					audit.ActionOwnershipTransfer,
					audit.ActionPropertySold,
				}, actions)
				assert.Equal(t, closedAt, events[2].Timestamp)
			})
		})
	})
}
