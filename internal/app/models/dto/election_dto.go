package dto

import (
	"time"

	"github.com/RohitShalgar4/campus360/internal/app/models"
)

// CandidateRequest is an embedded candidate in election creation
type CandidateRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
}

// CreateElectionRequest is the admin payload for a new election.
// Department is required for Departmental and Class levels; Year for Class.
type CreateElectionRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Deadline    time.Time            `json:"deadline" binding:"required"`
	Level       models.ElectionLevel `json:"level" binding:"required,oneof=College Departmental Class"`
	Department  *string              `json:"department"`
	Year        *int                 `json:"year"`
	Candidates  []CandidateRequest   `json:"candidates" binding:"required,min=1,dive"`
}

// VoteRequest names the candidate the authenticated student votes for
type VoteRequest struct {
	CandidateID int64 `json:"candidateId" binding:"required,gt=0"`
}

// ElectionResponse decorates an election with the caller's voting state
type ElectionResponse struct {
	models.Election
	HasVoted bool `json:"hasVoted"`
}
