package queries_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryByStatusQuery_Valid(t *testing.T) {
	query := queries.NewInventoryByStatusQuery()
	require.NoError(t, query.Validate())
}

func TestInventoryByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.InventoryByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrInventoryByStatusQueryIsNotConstructed)
}
