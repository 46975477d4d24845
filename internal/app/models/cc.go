package models

import "time"

// CC is a class-coordinator contact scoped to a class and department,
// used for routing notification emails. Unique per (class, department).
type CC struct {
	ID         int64     `json:"id" db:"id"`
	ClassName  string    `json:"className" db:"class_name"`
	Department string    `json:"department" db:"department"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
