package entities

import (
	"time"
)

// BookingStatus is the closed set of booking states. The only legal
// transition is Booked to Canceled; there is no reverse path and no
// physical deletion.
type BookingStatus string

const (
	BookingStatusBooked   BookingStatus = "Booked"
	BookingStatusCanceled BookingStatus = "Canceled"
)

// Valid reports whether the status is one of the enumerated values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusCanceled:
		return true
	}
	return false
}

// Booking ties a user email to a room.
type Booking struct {
	ID        string        `json:"_id,omitempty"`
	Email     string        `json:"email"`
	RoomID    string        `json:"roomId"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
}
