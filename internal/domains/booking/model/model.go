package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldName      = "name"
	FieldRoomType  = "room_type"
	FieldCheckIn   = "check_in"
	FieldCreatedAt = "created_at"
)

// Booking is a guest reservation request, recorded independently of room
// inventory. Rows are insert-only.
type Booking struct {
	ID        int64     `db:"id" generated:"true"`
	Name      string    `db:"name"`
	RoomType  string    `db:"room_type"`
	CheckIn   string    `db:"check_in"`
	CreatedAt time.Time `db:"created_at"`
}
