package dto_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"sorabora/internal/domains/room/model"
	"sorabora/internal/domains/room/model/dto"
	"sorabora/shared/constant"
)

func TestAddRoomRequest_ToModel(t *testing.T) {
	req := dto.AddRoomRequest{RoomNumber: "101", RoomType: "lake"}

	room := req.ToModel()

	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, constant.RoomStatusAvailable, room.Status)
	assert.Empty(t, room.CustomerName)
	assert.False(t, room.CheckOutDate.Valid)
}

func TestUpdateRoomRequest_Fields(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.UpdateRoomRequest
		wantStatus   string
		wantGuest    string
		wantCheckOut any
	}{
		{
			name: "occupied keeps the submitted occupancy",
			req: dto.UpdateRoomRequest{
				RoomNumber:   "101",
				GuestName:    "Jane Doe",
				Status:       constant.RoomStatusOccupied,
				CheckOutDate: "2026-09-01",
			},
			wantStatus:   constant.RoomStatusOccupied,
			wantGuest:    "Jane Doe",
			wantCheckOut: "2026-09-01",
		},
		{
			name: "available clears occupancy even when submitted",
			req: dto.UpdateRoomRequest{
				RoomNumber:   "101",
				GuestName:    "Jane Doe",
				Status:       constant.RoomStatusAvailable,
				CheckOutDate: "2026-09-01",
			},
			wantStatus:   constant.RoomStatusAvailable,
			wantGuest:    "",
			wantCheckOut: nil,
		},
		{
			name: "empty checkout becomes null not empty string",
			req: dto.UpdateRoomRequest{
				RoomNumber: "101",
				GuestName:  "Jane Doe",
				Status:     constant.RoomStatusOccupied,
			},
			wantStatus:   constant.RoomStatusOccupied,
			wantGuest:    "Jane Doe",
			wantCheckOut: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.req.Fields()

			assert.Equal(t, tt.wantStatus, fields[model.FieldStatus])
			assert.Equal(t, tt.wantGuest, fields[model.FieldCustomerName])
			assert.Equal(t, tt.wantCheckOut, fields[model.FieldCheckOutDate])
		})
	}
}

func TestDashboardResponse_FromModels(t *testing.T) {
	rooms := []model.RoomStatus{
		{RoomNumber: "101", Status: constant.RoomStatusOccupied, CustomerName: "Jane Doe", CheckOutDate: sql.NullString{String: "2026-09-01", Valid: true}},
		{RoomNumber: "102", Status: constant.RoomStatusAvailable},
	}

	resp := dto.DashboardResponse{}
	resp.FromModels(rooms)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Occupied)
	assert.Equal(t, 1, resp.Available)
	assert.Equal(t, "2026-09-01", resp.Rooms[0].CheckOutDate)
	assert.Empty(t, resp.Rooms[1].CheckOutDate)
}
