package queries_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignmentLogQuery_DefaultsLimit(t *testing.T) {
	query, err := queries.NewAssignmentLogQuery(0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 50, query.Limit())
}

func TestNewAssignmentLogQuery_ExplicitLimit(t *testing.T) {
	query, err := queries.NewAssignmentLogQuery(10)
	require.NoError(t, err)
	assert.Equal(t, 10, query.Limit())
}

func TestNewAssignmentLogQuery_LimitTooLarge(t *testing.T) {
	_, err := queries.NewAssignmentLogQuery(5000)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAssignmentLogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.AssignmentLogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAssignmentLogQueryIsNotConstructed)
}
