package models

import "time"

// BookingStatus of a booking request
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// ValidBookingStatus reports whether s is one of the allowed status values.
// Any status may transition to any other; there is no transition graph.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// Booking defines the booking model based on the 'bookings' table.
// A partial unique index on (facility_id, date, slot) over non-rejected
// rows guarantees that at most one live booking holds a slot.
type Booking struct {
	ID           int64                  `json:"id" db:"id"`
	FacilityID   int64                  `json:"facilityId" db:"facility_id"`
	RequestedBy  int64                  `json:"requestedBy" db:"requested_by"`
	Date         string                 `json:"date" db:"date"`
	Slot         string                 `json:"slot" db:"slot"`
	Purpose      string                 `json:"purpose" db:"purpose"`
	Requirements map[string]interface{} `json:"requirements" db:"requirements"`
	Status       BookingStatus          `json:"status" db:"status"`
	CreatedAt    time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time              `json:"updatedAt" db:"updated_at"`

	// Joined fields, populated on list/get queries
	FacilityName string `json:"facilityName,omitempty"`
	StudentName  string `json:"studentName,omitempty"`
}
