package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	kafkaMocks "sorabora/infras/kafka/mocks"
	"sorabora/infras/otel/mocks"
	"sorabora/internal/domains/booking/model"
	"sorabora/internal/domains/booking/model/dto"
	bookingRepoMocks "sorabora/internal/domains/booking/repository/mocks"
	"sorabora/internal/domains/booking/service"
	"sorabora/shared/constant"
)

func TestBookingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockOtel := mocks.NewOtel()

	// Publishing happens on a detached goroutine after the insert, so the
	// expectation cannot be strict.
	mockProducer.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockProducer, mockOtel)

	t.Run("joins and trims the guest name", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		req := dto.SubmitBookingRequest{
			FirstName: "  Jane ",
			LastName:  " Doe  ",
			RoomType:  "garden",
			CheckIn:   "2026-09-15",
		}

		booking, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", booking.Name)
		assert.Equal(t, "garden", booking.RoomType)
	})

	t.Run("single name has no stray spaces", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		booking, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{FirstName: "Jane"})

		assert.NoError(t, err)
		assert.Equal(t, "Jane", booking.Name)
	})

	t.Run("empty room defaults to lake", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		booking, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{FirstName: "Jane", LastName: "Doe"})

		assert.NoError(t, err)
		assert.Equal(t, constant.DefaultRoomType, booking.RoomType)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{FirstName: "Jane"})

		assert.Error(t, err)
	})
}

func TestBookingService_Submit_BrokerFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockOtel := mocks.NewOtel()

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockProducer.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable")).
		AnyTimes()

	svc := service.New(mockRepo, mockProducer, mockOtel)

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{FirstName: "Jane", LastName: "Doe"})

	assert.NoError(t, err)
}

func TestBookingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockProducer, mockOtel)

	t.Run("newest first", func(t *testing.T) {
		bookings := []model.Booking{
			{ID: 2, Name: "John Roe"},
			{ID: 1, Name: "Jane Doe"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), model.FieldID+" DESC", gomock.Any()).
			Return(bookings, nil)

		got, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, bookings, got)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.List(context.Background())

		assert.Error(t, err)
	})
}
