package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElectionClosed(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := &Election{Deadline: now.Add(time.Hour)}

	assert.False(t, e.Closed(now))
	assert.False(t, e.Closed(e.Deadline)) // exact deadline is still open
	assert.True(t, e.Closed(now.Add(2*time.Hour)))
}

func TestValidElectionLevel(t *testing.T) {
	assert.True(t, ValidElectionLevel(LevelCollege))
	assert.True(t, ValidElectionLevel(LevelDepartmental))
	assert.True(t, ValidElectionLevel(LevelClass))
	assert.False(t, ValidElectionLevel("Campus"))
	assert.False(t, ValidElectionLevel(""))
}
