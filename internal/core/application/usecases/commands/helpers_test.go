package commands_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

func testDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Maria Lopez", "FL-8841", time.Now())
	require.NoError(t, err)
	return d
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("8200 NW 52nd St", "Doral", "FL", "33166")
	require.NoError(t, err)
	return addr
}

func testGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(25.8103, -80.3222)
	require.NoError(t, err)
	return point
}

func testPackageInStatus(t *testing.T, status parcel.Status) *parcel.Package {
	t.Helper()
	p, err := parcel.NewPackage(
		kernel.NewUUID(), "SPX-"+kernel.NewUUID().String()[:8], "Recipient",
		testAddress(t), 0, nil, nil, status, time.Now())
	require.NoError(t, err)
	return p
}

func testOutForDeliveryPackage(t *testing.T, driverID kernel.UUID) *parcel.Package {
	t.Helper()
	p := testPackageInStatus(t, parcel.StatusOutForDelivery)
	require.NoError(t, p.Assign(driverID, time.Now()))
	return p
}
