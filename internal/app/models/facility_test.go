package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFacility() *Facility {
	return &Facility{
		Name: "Main Auditorium",
		RequirementFields: []RequirementField{
			{ID: "purpose", Label: "Purpose", Type: RequirementText, Required: true},
			{ID: "attendees", Label: "Expected attendees", Type: RequirementNumber, Required: true},
			{ID: "notes", Label: "Notes", Type: RequirementText, Required: false},
		},
		Availability: []AvailabilityEntry{
			{Date: "2025-07-01", Slots: []string{"09:00-11:00", "14:00-16:00"}},
			{Date: "2025-07-02", Slots: []string{"09:00-11:00"}},
		},
		Status: FacilityActive,
	}
}

func TestFacilityHasSlot(t *testing.T) {
	f := testFacility()

	assert.True(t, f.HasSlot("2025-07-01", "09:00-11:00"))
	assert.True(t, f.HasSlot("2025-07-01", "14:00-16:00"))
	assert.False(t, f.HasSlot("2025-07-02", "14:00-16:00"))
	assert.False(t, f.HasSlot("2025-07-03", "09:00-11:00"))
	assert.False(t, f.HasSlot("", ""))
}

func TestFacilityMissingRequiredFields(t *testing.T) {
	f := testFacility()

	missing := f.MissingRequiredFields(map[string]interface{}{
		"purpose":   "Tech fest",
		"attendees": 250,
	})
	assert.Empty(t, missing)

	missing = f.MissingRequiredFields(map[string]interface{}{
		"purpose": "Tech fest",
	})
	assert.Equal(t, []string{"attendees"}, missing)

	// Empty string and nil count as absent; optional fields never do
	missing = f.MissingRequiredFields(map[string]interface{}{
		"purpose":   "",
		"attendees": nil,
		"notes":     nil,
	})
	assert.ElementsMatch(t, []string{"purpose", "attendees"}, missing)

	missing = f.MissingRequiredFields(nil)
	assert.ElementsMatch(t, []string{"purpose", "attendees"}, missing)
}
