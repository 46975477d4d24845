package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitShalgar4/campus360/internal/app/models"
)

func TestBuildFacilityListQuery_OnlyActive(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, args, err := buildFacilityListQuery(sb)
	require.NoError(t, err)

	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "ORDER BY name ASC")
	require.Len(t, args, 1)
	assert.Equal(t, models.FacilityActive, args[0])
}
