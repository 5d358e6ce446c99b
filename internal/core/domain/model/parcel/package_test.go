package parcel_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("8200 NW 52nd St", "Doral", "FL", "33166")
	require.NoError(t, err)
	return addr
}

func newTestPackage(t *testing.T) *parcel.Package {
	t.Helper()
	p, err := parcel.NewPackage(
		kernel.NewUUID(), "SPX-0001", "Ann Recipient", testAddress(t),
		0, nil, nil, parcel.StatusReceived, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewPackage(t *testing.T) {
	t.Run("creates package in received status by default", func(t *testing.T) {
		p, err := parcel.NewPackage(
			kernel.NewUUID(), "SPX-0001", "Ann Recipient", testAddress(t),
			3, nil, nil, "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		assert.Equal(t, "SPX-0001", p.TrackingNumber())
		assert.Equal(t, 3, p.Priority())
		assert.Zero(t, p.AttemptCount())
		assert.False(t, p.IsAssigned())
		assert.Nil(t, p.DeliveredAt())
	})

	t.Run("accepts any defined status at creation", func(t *testing.T) {
		for _, s := range allStatuses() {
			p, err := parcel.NewPackage(
				kernel.NewUUID(), "SPX-0002", "Bob Recipient", testAddress(t),
				0, nil, nil, s, time.Now())
			require.NoError(t, err, "status %q", s)
			assert.Equal(t, s, p.Status())
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		validID := kernel.NewUUID()
		addr := testAddress(t)

		cases := []struct {
			name    string
			build   func() (*parcel.Package, error)
			wantErr error
		}{
			{
				name: "empty tracking number",
				build: func() (*parcel.Package, error) {
					return parcel.NewPackage(validID, "", "Ann", addr, 0, nil, nil, "", time.Now())
				},
				wantErr: errs.ErrValueIsRequired,
			},
			{
				name: "empty recipient",
				build: func() (*parcel.Package, error) {
					return parcel.NewPackage(validID, "SPX-1", "", addr, 0, nil, nil, "", time.Now())
				},
				wantErr: errs.ErrValueIsRequired,
			},
			{
				name: "negative priority",
				build: func() (*parcel.Package, error) {
					return parcel.NewPackage(validID, "SPX-1", "Ann", addr, -1, nil, nil, "", time.Now())
				},
				wantErr: errs.ErrValueIsOutOfRange,
			},
			{
				name: "unknown status",
				build: func() (*parcel.Package, error) {
					return parcel.NewPackage(validID, "SPX-1", "Ann", addr, 0, nil, nil, "lost", time.Now())
				},
				wantErr: errs.ErrValueIsInvalid,
			},
			{
				name: "zero-value address",
				build: func() (*parcel.Package, error) {
					return parcel.NewPackage(validID, "SPX-1", "Ann", kernel.Address{}, 0, nil, nil, "", time.Now())
				},
				wantErr: errs.ErrValueIsRequired,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := tc.build()
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, p)
			})
		}
	})
}

func TestPackage_Validate(t *testing.T) {
	t.Run("constructed package passes", func(t *testing.T) {
		require.NoError(t, newTestPackage(t).Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var p parcel.Package
		assert.Equal(t, parcel.ErrPackageIsNotConstructed, p.Validate())
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		var p *parcel.Package
		assert.Equal(t, parcel.ErrPackageIsNotConstructed, p.Validate())
	})
}

func TestPackage_TransitionTo(t *testing.T) {
	t.Run("allowed transition updates status and last event", func(t *testing.T) {
		p := newTestPackage(t)
		at := time.Date(2025, 8, 27, 15, 0, 0, 0, time.UTC)

		require.NoError(t, p.TransitionTo(parcel.StatusInWarehouse, at))

		assert.Equal(t, parcel.StatusInWarehouse, p.Status())
		require.NotNil(t, p.LastEventAt())
		assert.Equal(t, at, *p.LastEventAt())
	})

	t.Run("disallowed transition leaves package unchanged", func(t *testing.T) {
		p := newTestPackage(t)

		err := p.TransitionTo(parcel.StatusDelivered, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		assert.Nil(t, p.LastEventAt())
	})

	t.Run("terminal states reject all transitions", func(t *testing.T) {
		for _, terminal := range []parcel.Status{
			parcel.StatusDelivered, parcel.StatusReturned, parcel.StatusCancelled,
		} {
			p, err := parcel.NewPackage(
				kernel.NewUUID(), "SPX-T", "Ann", testAddress(t), 0, nil, nil, terminal, time.Now())
			require.NoError(t, err)

			for _, target := range allStatuses() {
				err = p.TransitionTo(target, time.Now())
				require.Error(t, err, "%s -> %s", terminal, target)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("delivered transition stamps deliveredAt", func(t *testing.T) {
		p, err := parcel.NewPackage(
			kernel.NewUUID(), "SPX-D", "Ann", testAddress(t),
			0, nil, nil, parcel.StatusOutForDelivery, time.Now())
		require.NoError(t, err)
		at := time.Date(2025, 8, 27, 17, 30, 0, 0, time.UTC)

		require.NoError(t, p.TransitionTo(parcel.StatusDelivered, at))

		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, at, *p.DeliveredAt())
	})
}

func TestPackage_Assign(t *testing.T) {
	t.Run("assigns driver without changing status", func(t *testing.T) {
		p := newTestPackage(t)
		driverID := kernel.NewUUID()
		at := time.Date(2025, 8, 27, 9, 0, 0, 0, time.UTC)

		require.NoError(t, p.Assign(driverID, at))

		assert.True(t, p.IsAssigned())
		assert.True(t, p.IsAssignedTo(driverID))
		assert.Equal(t, parcel.StatusReceived, p.Status())
		require.NotNil(t, p.AssignedAt())
		assert.Equal(t, at, *p.AssignedAt())
	})

	t.Run("reassignment replaces driver and refreshes timestamp", func(t *testing.T) {
		p := newTestPackage(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, p.Assign(first, time.Now()))
		require.NoError(t, p.Assign(second, time.Now()))

		assert.False(t, p.IsAssignedTo(first))
		assert.True(t, p.IsAssignedTo(second))
	})

	t.Run("rejects zero-value driver ID", func(t *testing.T) {
		p := newTestPackage(t)

		err := p.Assign(kernel.UUID{}, time.Now())

		require.Error(t, err)
		assert.False(t, p.IsAssigned())
	})
}

func TestPackage_StartRoute(t *testing.T) {
	t.Run("from in_warehouse", func(t *testing.T) {
		p := newTestPackage(t)
		require.NoError(t, p.TransitionTo(parcel.StatusInWarehouse, time.Now()))
		at := time.Date(2025, 8, 27, 8, 0, 0, 0, time.UTC)

		require.NoError(t, p.StartRoute(at))

		assert.Equal(t, parcel.StatusOutForDelivery, p.Status())
		require.NotNil(t, p.OutForDeliveryAt())
		assert.Equal(t, at, *p.OutForDeliveryAt())
	})

	t.Run("from received passes through the warehouse step", func(t *testing.T) {
		p := newTestPackage(t)

		require.NoError(t, p.StartRoute(time.Now()))

		assert.Equal(t, parcel.StatusOutForDelivery, p.Status())
	})

	t.Run("rejected from terminal status", func(t *testing.T) {
		p, err := parcel.NewPackage(
			kernel.NewUUID(), "SPX-T", "Ann", testAddress(t),
			0, nil, nil, parcel.StatusDelivered, time.Now())
		require.NoError(t, err)

		err = p.StartRoute(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestPackage_RecordAttempt(t *testing.T) {
	newOFDPackage := func(t *testing.T) *parcel.Package {
		t.Helper()
		p, err := parcel.NewPackage(
			kernel.NewUUID(), "SPX-OFD", "Ann", testAddress(t),
			0, nil, nil, parcel.StatusOutForDelivery, time.Now())
		require.NoError(t, err)
		return p
	}

	t.Run("delivered attempt is number one and terminal", func(t *testing.T) {
		p := newOFDPackage(t)

		no, err := p.RecordAttempt(parcel.AttemptDelivered, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 1, no)
		assert.Equal(t, 1, p.AttemptCount())
		assert.Equal(t, parcel.StatusDelivered, p.Status())
		assert.NotNil(t, p.DeliveredAt())
	})

	t.Run("attempt numbers are contiguous across the retry loop", func(t *testing.T) {
		p := newOFDPackage(t)

		no, err := p.RecordAttempt(parcel.AttemptFailed, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 1, no)
		assert.Equal(t, parcel.StatusFailedAttempt, p.Status())

		require.NoError(t, p.StartRoute(time.Now()))

		no, err = p.RecordAttempt(parcel.AttemptFailed, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 2, no)

		require.NoError(t, p.StartRoute(time.Now()))

		no, err = p.RecordAttempt(parcel.AttemptDelivered, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 3, no)
		assert.Equal(t, 3, p.AttemptCount())
		assert.Equal(t, parcel.StatusDelivered, p.Status())
	})

	t.Run("rejected when package is not out for delivery", func(t *testing.T) {
		p := newTestPackage(t)

		no, err := p.RecordAttempt(parcel.AttemptDelivered, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Zero(t, no)
		assert.Zero(t, p.AttemptCount())
		assert.Equal(t, parcel.StatusReceived, p.Status())
	})

	t.Run("rejected result value leaves counter untouched", func(t *testing.T) {
		p := newOFDPackage(t)

		_, err := p.RecordAttempt("misplaced", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, p.AttemptCount())
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("round-trips full state", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		assignedAt := time.Date(2025, 8, 27, 9, 0, 0, 0, time.UTC)
		createdAt := time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)

		p, err := parcel.RestorePackage(
			id, "SPX-9", parcel.StatusFailedAttempt, 2, "Ann", testAddress(t),
			nil, nil, &driverID, &assignedAt, nil, nil, 2, &assignedAt, createdAt)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusFailedAttempt, p.Status())
		assert.Equal(t, 2, p.AttemptCount())
		assert.True(t, p.IsAssignedTo(driverID))
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("rejects negative attempt count", func(t *testing.T) {
		_, err := parcel.RestorePackage(
			kernel.NewUUID(), "SPX-9", parcel.StatusReceived, 0, "Ann", testAddress(t),
			nil, nil, nil, nil, nil, nil, -1, nil, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
