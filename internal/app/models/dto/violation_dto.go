package dto

// CreateViolationRequest records a disciplinary violation. StudentName is
// free text, not a student reference.
type CreateViolationRequest struct {
	Date        string `json:"date" binding:"required"`
	StudentName string `json:"studentName" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Punishment  string `json:"punishment" binding:"required"`
	// Optional routing hints so the class coordinator can be notified
	ClassName  string `json:"className"`
	Department string `json:"department"`
}

// UpdateViolationRequest mirrors the create payload
type UpdateViolationRequest struct {
	Date        string `json:"date" binding:"required"`
	StudentName string `json:"studentName" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Punishment  string `json:"punishment" binding:"required"`
}
