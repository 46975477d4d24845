package models

import "time"

// Violation defines the disciplinary violation model based on the
// 'violations' table. StudentName is free text, not a foreign key.
type Violation struct {
	ID          int64     `json:"id" db:"id"`
	Date        string    `json:"date" db:"date"`
	StudentName string    `json:"studentName" db:"student_name"`
	Reason      string    `json:"reason" db:"reason"`
	Punishment  string    `json:"punishment" db:"punishment"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
