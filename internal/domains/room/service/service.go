package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sorabora/infras/otel"
	bookingModel "sorabora/internal/domains/booking/model"
	bookingDto "sorabora/internal/domains/booking/model/dto"
	bookingRepository "sorabora/internal/domains/booking/repository"
	"sorabora/internal/domains/room/model"
	"sorabora/internal/domains/room/model/dto"
	"sorabora/internal/domains/room/repository"
	"sorabora/shared"
	"sorabora/shared/constant"
	gDto "sorabora/shared/dto"
	"sorabora/shared/failure"
	"sorabora/shared/validator"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Add(ctx context.Context, req dto.AddRoomRequest) error
	Update(ctx context.Context, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, roomNumber string) error
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepository.Booking
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepository.Booking, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// Add registers a new room in Available status. Room numbers are unique;
// adding an existing one is rejected with a conflict.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByField(req.RoomNumber, model.FieldRoomNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("Room %s already exists!", req.RoomNumber))
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to add room")

		return fmt.Errorf("failed to add room: %w", err)
	}

	return nil
}

// Update overwrites the status fields of a room. Updating a room number
// that does not exist is a silent no-op, matching the delete semantics.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	filter := shared.FilterByField(req.RoomNumber, model.FieldRoomNumber, model.TableName)

	if err = s.repo.Update(ctx, req.Fields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// Delete removes a room from the inventory. Missing rooms are a no-op.
func (s *serviceImpl) Delete(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(roomNumber, "required"); err != nil {
		return err
	}

	filter := shared.FilterByField(roomNumber, model.FieldRoomNumber, model.TableName)

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// Dashboard assembles the staff view: the full inventory ordered by room
// number, every booking newest first, and the occupancy counters.
func (s *serviceImpl) Dashboard(ctx context.Context) (resp dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.GetAll(ctx, model.FieldRoomNumber+" ASC", gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return resp, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingModel.FieldID+" DESC", gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return resp, fmt.Errorf("failed to get bookings: %w", err)
	}

	resp.FromModels(rooms)
	resp.Bookings = bookingDto.BookingViews(bookings)

	return resp, nil
}
