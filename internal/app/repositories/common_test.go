package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, isDuplicateKeyError(dup))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert failed: %w", dup)))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isDuplicateKeyError(errors.New("plain error")))
	assert.False(t, isDuplicateKeyError(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	slotConflict := &pgconn.PgError{Code: "23505", ConstraintName: uniqueLiveSlotIndex}

	assert.True(t, IsDuplicateConstraintError(slotConflict, uniqueLiveSlotIndex))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("wrapped: %w", slotConflict), uniqueLiveSlotIndex))

	// Same code but a different constraint must not match
	otherUnique := &pgconn.PgError{Code: "23505", ConstraintName: "facilities_name_key"}
	assert.False(t, IsDuplicateConstraintError(otherUnique, uniqueLiveSlotIndex))

	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), uniqueLiveSlotIndex))
}
