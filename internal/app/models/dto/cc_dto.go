package dto

// CreateCCRequest registers a class-coordinator contact for a class and
// department pair
type CreateCCRequest struct {
	ClassName  string `json:"className" binding:"required"`
	Department string `json:"department" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

// UpdateCCRequest mirrors the create payload
type UpdateCCRequest struct {
	ClassName  string `json:"className" binding:"required"`
	Department string `json:"department" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}
