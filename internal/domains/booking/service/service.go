package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sorabora/infras/kafka"
	"sorabora/infras/otel"
	"sorabora/internal/domains/booking/model"
	"sorabora/internal/domains/booking/model/dto"
	"sorabora/internal/domains/booking/repository"
	"sorabora/shared/constant"
	gDto "sorabora/shared/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
}

type serviceImpl struct {
	repo   repository.Booking
	events kafka.Producer
	otel   otel.Otel
}

func New(repo repository.Booking, events kafka.Producer, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		events: events,
		otel:   otel,
	}
}

// Submit records exactly one booking row. Bookings are deliberately
// decoupled from room inventory: no capacity or duplicate checks.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking = req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	// Best-effort notification; a broker outage must never fail the guest.
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingCreatedEvent{
			Name:      booking.Name,
			RoomType:  booking.RoomType,
			CheckIn:   booking.CheckIn,
			CreatedAt: booking.CreatedAt,
		}

		if err := s.events.Publish(c, uuid.NewString(), event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking event")
		}
	}()

	return booking, nil
}

// List returns all bookings, most recently created first.
func (s *serviceImpl) List(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err = s.repo.GetAll(ctx, model.FieldID+" DESC", gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}
