package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sorabora/infras/otel/mocks"
	bookingRepoMocks "sorabora/internal/domains/booking/repository/mocks"
	"sorabora/internal/domains/room/model"
	"sorabora/internal/domains/room/model/dto"
	roomRepoMocks "sorabora/internal/domains/room/repository/mocks"
	"sorabora/internal/domains/room/service"
	"sorabora/shared/constant"
	"sorabora/shared/failure"
)

func TestRoomService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomRepoMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.AddRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful add",
			req:  dto.AddRoomRequest{RoomNumber: "101", RoomType: "lake"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate room number rejected",
			req:  dto.AddRoomRequest{RoomNumber: "101"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:      "missing room number rejected",
			req:       dto.AddRoomRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "existence check error",
			req:  dto.AddRoomRequest{RoomNumber: "101"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Add(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Add_NewRoomStartsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomRepoMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockOtel)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room model.RoomStatus) error {
			assert.Equal(t, constant.RoomStatusAvailable, room.Status)
			assert.Empty(t, room.CustomerName)
			assert.False(t, room.CheckOutDate.Valid)

			return nil
		})

	err := svc.Add(context.Background(), dto.AddRoomRequest{RoomNumber: "204", RoomType: "garden"})

	assert.NoError(t, err)
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomRepoMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockOtel)

	t.Run("setting available clears occupancy", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.RoomStatusAvailable, fields[model.FieldStatus])
				assert.Equal(t, "", fields[model.FieldCustomerName])
				assert.Nil(t, fields[model.FieldCheckOutDate])

				return nil
			})

		req := dto.UpdateRoomRequest{
			RoomNumber:   "101",
			GuestName:    "Jane Doe",
			Status:       constant.RoomStatusAvailable,
			CheckOutDate: "2026-09-01",
		}

		assert.NoError(t, svc.Update(context.Background(), req))
	})

	t.Run("occupied keeps guest and checkout", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.RoomStatusOccupied, fields[model.FieldStatus])
				assert.Equal(t, "Jane Doe", fields[model.FieldCustomerName])
				assert.Equal(t, "2026-09-01", fields[model.FieldCheckOutDate])

				return nil
			})

		req := dto.UpdateRoomRequest{
			RoomNumber:   "101",
			GuestName:    "Jane Doe",
			Status:       constant.RoomStatusOccupied,
			CheckOutDate: "2026-09-01",
		}

		assert.NoError(t, svc.Update(context.Background(), req))
	})

	t.Run("empty checkout stored as null", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				value, present := fields[model.FieldCheckOutDate]
				assert.True(t, present)
				assert.Nil(t, value)

				return nil
			})

		req := dto.UpdateRoomRequest{
			RoomNumber: "101",
			GuestName:  "Jane Doe",
			Status:     constant.RoomStatusOccupied,
		}

		assert.NoError(t, svc.Update(context.Background(), req))
	})

	t.Run("missing room number rejected", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateRoomRequest{})

		assert.Error(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomRepoMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockOtel)

	t.Run("delete succeeds without existence check", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "101"))
	})

	t.Run("empty room number rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), "")

		assert.Error(t, err)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.Error(t, svc.Delete(context.Background(), "101"))
	})
}

func TestRoomService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomRepoMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingRepoMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookingRepo, mockOtel)

	t.Run("counts occupancy", func(t *testing.T) {
		rooms := []model.RoomStatus{
			{RoomNumber: "101", Status: constant.RoomStatusOccupied, CustomerName: "Jane Doe"},
			{RoomNumber: "102", Status: constant.RoomStatusAvailable},
			{RoomNumber: "103", Status: constant.RoomStatusOccupied, CustomerName: "John Roe"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), model.FieldRoomNumber+" ASC", gomock.Any()).
			Return(rooms, nil)
		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		resp, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Occupied)
		assert.Equal(t, 1, resp.Available)
		assert.Len(t, resp.Rooms, 3)
	})

	t.Run("room query error surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}
