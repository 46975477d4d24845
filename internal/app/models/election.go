package models

import "time"

// ElectionLevel scopes who is eligible to vote in an election
type ElectionLevel string

const (
	LevelCollege      ElectionLevel = "College"
	LevelDepartmental ElectionLevel = "Departmental"
	LevelClass        ElectionLevel = "Class"
)

// ValidElectionLevel reports whether l is one of the allowed levels
func ValidElectionLevel(l ElectionLevel) bool {
	switch l {
	case LevelCollege, LevelDepartmental, LevelClass:
		return true
	}
	return false
}

// Candidate is a candidate standing in an election, stored in the
// 'election_candidates' table
type Candidate struct {
	ID         int64  `json:"id" db:"id"`
	ElectionID int64  `json:"electionId" db:"election_id"`
	Name       string `json:"name" db:"name"`
	Position   string `json:"position" db:"position"`
	Votes      int    `json:"votes" db:"votes"`
}

// Election defines the election model based on the 'elections' table.
// Department is required for Departmental and Class levels; Year is
// required for Class level. One ballot row per (election, student) in
// 'election_votes' keeps voting idempotent.
type Election struct {
	ID              int64          `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Deadline        time.Time      `json:"deadline" db:"deadline"`
	Level           ElectionLevel  `json:"level" db:"level"`
	Department      *string        `json:"department,omitempty" db:"department"`
	Year            *int           `json:"year,omitempty" db:"year"`
	Candidates      []Candidate    `json:"candidates"`
	TotalVoters     int            `json:"totalVoters" db:"total_voters"`
	Voted           int            `json:"voted" db:"voted"`
	BoysVoted       int            `json:"boysVoted" db:"boys_voted"`
	GirlsVoted      int            `json:"girlsVoted" db:"girls_voted"`
	DepartmentStats map[string]int `json:"departmentStats" db:"department_stats"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// Closed reports whether the election deadline has passed at time now
func (e *Election) Closed(now time.Time) bool {
	return now.After(e.Deadline)
}
