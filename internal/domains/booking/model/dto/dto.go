package dto

import (
	"time"

	"sorabora/internal/domains/booking/model"
	"sorabora/shared"
	"sorabora/shared/constant"
	"sorabora/shared/timezone"
)

// SubmitBookingRequest carries the guest booking form. Every field is
// optional; the check-in date is stored exactly as submitted.
type SubmitBookingRequest struct {
	FirstName string
	LastName  string
	RoomType  string
	CheckIn   string
}

func (r *SubmitBookingRequest) ToModel() model.Booking {
	roomType := r.RoomType
	if roomType == constant.Empty {
		roomType = constant.DefaultRoomType
	}

	return model.Booking{
		Name:      shared.JoinGuestName(r.FirstName, r.LastName),
		RoomType:  roomType,
		CheckIn:   r.CheckIn,
		CreatedAt: timezone.Now(),
	}
}

// BookingCreatedEvent is the payload published after a successful booking
// insert for downstream staff notification.
type BookingCreatedEvent struct {
	Name      string    `json:"name"`
	RoomType  string    `json:"room_type"`
	CheckIn   string    `json:"check_in"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingPage drives the guest booking template: the empty form when
// Submitted is false, the confirmation banner once a booking went through.
type BookingPage struct {
	Submitted bool
	Name      string
	RoomType  string
	CheckIn   string
}

type BookingView struct {
	ID        int64
	Name      string
	RoomType  string
	CheckIn   string
	CreatedAt string
}

func (v *BookingView) FromModel(mod model.Booking) {
	v.ID = mod.ID
	v.Name = mod.Name
	v.RoomType = mod.RoomType
	v.CheckIn = mod.CheckIn
	v.CreatedAt = mod.CreatedAt.Format("2006-01-02 15:04")
}

func BookingViews(models []model.Booking) []BookingView {
	views := make([]BookingView, len(models))
	for i, mod := range models {
		views[i].FromModel(mod)
	}

	return views
}
