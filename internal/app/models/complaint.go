package models

import "time"

// ComplaintStatus of a complaint
type ComplaintStatus string

const (
	ComplaintUnderReview   ComplaintStatus = "Under Review"
	ComplaintInvestigating ComplaintStatus = "Investigating"
	ComplaintResolved      ComplaintStatus = "Resolved"
)

// ValidComplaintStatus reports whether s is one of the allowed status values
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintUnderReview, ComplaintInvestigating, ComplaintResolved:
		return true
	}
	return false
}

// ComplaintCategories is the allowed category enumeration for complaints
var ComplaintCategories = []string{
	"Academic",
	"Infrastructure",
	"Hostel",
	"Canteen",
	"Sports",
	"Other",
}

// IsComplaintCategory reports whether category is in the allowed enumeration
func IsComplaintCategory(category string) bool {
	for _, c := range ComplaintCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Complaint defines the complaint model based on the 'complaints' table.
// Votes is a monotonically incrementable counter.
type Complaint struct {
	ID            int64           `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	Description   string          `json:"description" db:"description"`
	Category      string          `json:"category" db:"category"`
	Status        ComplaintStatus `json:"status" db:"status"`
	Votes         int             `json:"votes" db:"votes"`
	ImageURL      *string         `json:"imageUrl,omitempty" db:"image_url"`
	ImagePublicID *string         `json:"-" db:"image_public_id"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}
