package models

import (
	"time"
)

// RoomStatus is the closed set of states a room can be in. Persisted as text.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "AVAILABLE"
	RoomOccupied  RoomStatus = "OCCUPIED"
)

// Room owns the guest relationship: GuestID is set exactly while the room is
// OCCUPIED, together with AllottedDays. Both are nil while AVAILABLE.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomNumber int        `gorm:"column:room_number;uniqueIndex;not null" json:"roomNumber"`
	Status     RoomStatus `gorm:"column:status;type:varchar(20);not null;default:AVAILABLE" json:"status"`

	AllottedDays *int `gorm:"column:allotted_days" json:"allottedDays"`

	// One guest holds at most one room; the rule lives in the allotment
	// service, so this is a plain index, not a unique constraint.
	GuestID *uint  `gorm:"column:guest_id;index" json:"guestId"`
	Guest   *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// Occupied reports whether the room currently holds a guest.
func (r Room) Occupied() bool {
	return r.Status == RoomOccupied
}
