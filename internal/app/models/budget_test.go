package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedBudgetCategory(t *testing.T) {
	for _, name := range AllowedBudgetCategories {
		assert.True(t, IsAllowedBudgetCategory(name), name)
	}

	assert.False(t, IsAllowedBudgetCategory("Catering"))
	assert.False(t, IsAllowedBudgetCategory("sports")) // case sensitive
	assert.False(t, IsAllowedBudgetCategory(""))
}
