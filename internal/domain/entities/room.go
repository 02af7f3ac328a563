package entities

import (
	"time"
)

// Room represents a hotel room listing with per-room-type
// availability flags and prices.
type Room struct {
	ID                 string    `json:"_id,omitempty"`
	DistrictName       string    `json:"districtName"`
	HotelImage         string    `json:"hotelImage"`
	TwoBedAvailable    bool      `json:"twoBedAvailable"`
	DeluxeAvailable    bool      `json:"deluxeAvailable"`
	PenthouseAvailable bool      `json:"penthouseAvailable"`
	TwoBedPrice        float64   `json:"twoBedPrice"`
	DeluxePrice        float64   `json:"deluxePrice"`
	PenthousePrice     float64   `json:"penthousePrice"`
	Ratings            float64   `json:"ratings"`
	Description        string    `json:"description"`
	OwnerEmail         string    `json:"ownerEmail,omitempty"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
}
