package parcel_test

import (
	"testing"

	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.StatusReceived,
		parcel.StatusInWarehouse,
		parcel.StatusOutForDelivery,
		parcel.StatusDelivered,
		parcel.StatusFailedAttempt,
		parcel.StatusReturned,
		parcel.StatusCancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all defined statuses are valid", func(t *testing.T) {
		for _, s := range allStatuses() {
			assert.NoError(t, s.Validate(), "status %q", s)
		}
	})

	t.Run("unknown values are invalid", func(t *testing.T) {
		for _, s := range []parcel.Status{"", "lost", "RECEIVED", "in warehouse"} {
			err := s.Validate()
			require.Error(t, err, "status %q", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[parcel.Status][]parcel.Status{
		parcel.StatusReceived:       {parcel.StatusInWarehouse, parcel.StatusCancelled},
		parcel.StatusInWarehouse:    {parcel.StatusOutForDelivery, parcel.StatusReturned},
		parcel.StatusOutForDelivery: {parcel.StatusDelivered, parcel.StatusFailedAttempt, parcel.StatusReturned},
		parcel.StatusFailedAttempt:  {parcel.StatusOutForDelivery, parcel.StatusReturned},
		parcel.StatusDelivered:      {},
		parcel.StatusReturned:       {},
		parcel.StatusCancelled:      {},
	}

	isAllowed := func(from, to parcel.Status) bool {
		for _, next := range allowed[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	// Exhaustive check of every (from, to) pair against the expected table.
	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			got, err := from.TransitionTo(to)
			if isAllowed(from, to) {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Empty(t, got)
			}
		}
	}
}

func TestStatus_TransitionTo_ErrorDetails(t *testing.T) {
	_, err := parcel.StatusReceived.TransitionTo(parcel.StatusDelivered)

	require.Error(t, err)
	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "received", transitionErr.From)
	assert.Equal(t, "delivered", transitionErr.To)
	assert.Equal(t, []string{"cancelled", "in_warehouse"}, transitionErr.Allowed)
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := parcel.StatusReceived.TransitionTo("lost")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[parcel.Status]bool{
		parcel.StatusDelivered: true,
		parcel.StatusReturned:  true,
		parcel.StatusCancelled: true,
	}

	for _, s := range allStatuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), "status %q", s)
	}

	assert.False(t, parcel.Status("lost").IsTerminal(), "unknown status is not terminal")
}

func TestStatus_AllowedNext(t *testing.T) {
	t.Run("sorted for deterministic error messages", func(t *testing.T) {
		assert.Equal(t,
			[]string{"delivered", "failed_attempt", "returned"},
			parcel.StatusOutForDelivery.AllowedNext())
	})

	t.Run("terminal states yield empty set", func(t *testing.T) {
		assert.Empty(t, parcel.StatusDelivered.AllowedNext())
		assert.Empty(t, parcel.StatusReturned.AllowedNext())
		assert.Empty(t, parcel.StatusCancelled.AllowedNext())
	})
}
