package model

import "database/sql"

const (
	TableName  = "room_status"
	EntityName = "room"

	FieldRoomNumber   = "room_number"
	FieldRoomType     = "room_type"
	FieldStatus       = "status"
	FieldCustomerName = "customer_name"
	FieldCheckOutDate = "check_out_date"
)

// RoomStatus is the staff-managed inventory record of a physical room.
// A room in Available status carries no occupancy data: customer_name is
// empty and check_out_date is NULL.
type RoomStatus struct {
	RoomNumber   string         `db:"room_number"`
	RoomType     string         `db:"room_type"`
	Status       string         `db:"status"`
	CustomerName string         `db:"customer_name"`
	CheckOutDate sql.NullString `db:"check_out_date"`
}
