package models

import "time"

// FacilityStatus of a facility
type FacilityStatus string

const (
	FacilityActive   FacilityStatus = "active"
	FacilityInactive FacilityStatus = "inactive"
)

// RequirementFieldType enumerates the dynamic requirement field kinds
type RequirementFieldType string

const (
	RequirementText   RequirementFieldType = "text"
	RequirementNumber RequirementFieldType = "number"
	RequirementFile   RequirementFieldType = "file"
)

// RequirementField is a dynamic descriptor a facility imposes on bookings.
// Stored as JSONB on the facilities row.
type RequirementField struct {
	ID       string               `json:"id"`
	Label    string               `json:"label"`
	Type     RequirementFieldType `json:"type"`
	Required bool                 `json:"required"`
	Max      *int                 `json:"max,omitempty"`
}

// AvailabilityEntry maps a date string to the bookable slot strings on that date
type AvailabilityEntry struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Facility defines the facility model based on the 'facilities' table
type Facility struct {
	ID                int64               `json:"id" db:"id"`
	Name              string              `json:"name" db:"name"`
	Capacity          int                 `json:"capacity" db:"capacity"`
	Location          string              `json:"location" db:"location"`
	RequirementFields []RequirementField  `json:"requirementFields" db:"requirement_fields"`
	Availability      []AvailabilityEntry `json:"availability" db:"availability"`
	Status            FacilityStatus      `json:"status" db:"status"`
	CreatedAt         time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time           `json:"updatedAt" db:"updated_at"`
}

// HasSlot reports whether the given (date, slot) pair appears in the
// facility's availability list.
func (f *Facility) HasSlot(date, slot string) bool {
	for _, entry := range f.Availability {
		if entry.Date != date {
			continue
		}
		for _, s := range entry.Slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}

// MissingRequiredFields returns the ids of required requirement fields that
// have no value in the supplied requirements object.
func (f *Facility) MissingRequiredFields(requirements map[string]interface{}) []string {
	var missing []string
	for _, field := range f.RequirementFields {
		if !field.Required {
			continue
		}
		v, ok := requirements[field.ID]
		if !ok || v == nil || v == "" {
			missing = append(missing, field.ID)
		}
	}
	return missing
}
