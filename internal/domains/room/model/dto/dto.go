package dto

import (
	"database/sql"

	"sorabora/internal/domains/room/model"
	"sorabora/shared/constant"

	bookingDto "sorabora/internal/domains/booking/model/dto"
)

type AddRoomRequest struct {
	RoomNumber string `validate:"required"`
	RoomType   string
}

func (r *AddRoomRequest) ToModel() model.RoomStatus {
	return model.RoomStatus{
		RoomNumber:   r.RoomNumber,
		RoomType:     r.RoomType,
		Status:       constant.RoomStatusAvailable,
		CustomerName: constant.Empty,
		CheckOutDate: sql.NullString{},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string `validate:"required"`
	GuestName    string
	Status       string
	CheckOutDate string
}

// Fields builds the column map for the update statement. A transition to
// Available is authoritative over occupancy: guest name and checkout date
// are cleared regardless of what was submitted. An empty checkout date is
// written as NULL, never as an empty string.
func (r *UpdateRoomRequest) Fields() map[string]any {
	guest := r.GuestName
	checkOut := r.CheckOutDate

	if r.Status == constant.RoomStatusAvailable {
		guest = constant.Empty
		checkOut = constant.Empty
	}

	fields := map[string]any{
		model.FieldStatus:       r.Status,
		model.FieldCustomerName: guest,
	}

	if checkOut == constant.Empty {
		fields[model.FieldCheckOutDate] = nil
	} else {
		fields[model.FieldCheckOutDate] = checkOut
	}

	return fields
}

type RoomView struct {
	RoomNumber   string
	RoomType     string
	Status       string
	CustomerName string
	CheckOutDate string
}

func (v *RoomView) FromModel(mod model.RoomStatus) {
	v.RoomNumber = mod.RoomNumber
	v.RoomType = mod.RoomType
	v.Status = mod.Status
	v.CustomerName = mod.CustomerName

	if mod.CheckOutDate.Valid {
		v.CheckOutDate = mod.CheckOutDate.String
	}
}

// DashboardResponse is the full staff dashboard context: inventory ordered
// by room number, bookings most recent first, and the occupancy counters.
type DashboardResponse struct {
	Rooms     []RoomView
	Bookings  []bookingDto.BookingView
	Total     int
	Occupied  int
	Available int
}

func (d *DashboardResponse) FromModels(rooms []model.RoomStatus) {
	d.Rooms = make([]RoomView, len(rooms))

	for i, mod := range rooms {
		d.Rooms[i].FromModel(mod)

		if mod.Status == constant.RoomStatusOccupied {
			d.Occupied++
		}
	}

	d.Total = len(rooms)
	d.Available = d.Total - d.Occupied
}
