package parcel

import (
	"errors"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// ErrAttemptIsNotConstructed is returned when a DeliveryAttempt was not
// created through the NewDeliveryAttempt constructor.
var ErrAttemptIsNotConstructed = errors.New(
	"DeliveryAttempt must be created via NewDeliveryAttempt constructor")

// AttemptResult is the outcome of one delivery attempt.
type AttemptResult string

const (
	// AttemptDelivered means the package reached the recipient.
	AttemptDelivered AttemptResult = "delivered"
	// AttemptFailed means the attempt did not complete; a reason code is required.
	AttemptFailed AttemptResult = "failed"
)

// Validate checks that the AttemptResult is one of the defined values.
func (r AttemptResult) Validate() error {
	if r != AttemptDelivered && r != AttemptFailed {
		return errs.NewValueIsInvalidError("result")
	}
	return nil
}

// PodPhoto is proof-of-delivery image metadata captured at an attempt. Only
// metadata is held here; binary content lives in external photo storage,
// addressed by path and checksum. Photos are owned by their attempt and are
// removed with it.
type PodPhoto struct {
	path      string
	checksum  string
	mimeType  string
	sizeBytes int64
	takenAt   *time.Time
	location  *kernel.GeoPoint

	isConstructed bool
}

// NewPodPhoto creates photo metadata. The storage path is required; checksum,
// MIME type, size and capture context are optional.
func NewPodPhoto(
	path string,
	checksum string,
	mimeType string,
	sizeBytes int64,
	takenAt *time.Time,
	location *kernel.GeoPoint,
) (PodPhoto, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return PodPhoto{}, errs.NewValueIsRequiredError("path")
	}
	if sizeBytes < 0 {
		return PodPhoto{}, errs.NewValueIsOutOfRangeError("size_bytes", sizeBytes, 0, "unbounded")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return PodPhoto{}, err
		}
	}

	return PodPhoto{
		path:          path,
		checksum:      checksum,
		mimeType:      mimeType,
		sizeBytes:     sizeBytes,
		takenAt:       takenAt,
		location:      location,
		isConstructed: true,
	}, nil
}

// Path returns the storage path of the image.
func (ph PodPhoto) Path() string { return ph.path }

// Checksum returns the content checksum, possibly empty.
func (ph PodPhoto) Checksum() string { return ph.checksum }

// MimeType returns the content type, possibly empty.
func (ph PodPhoto) MimeType() string { return ph.mimeType }

// SizeBytes returns the content length, zero when unknown.
func (ph PodPhoto) SizeBytes() int64 { return ph.sizeBytes }

// TakenAt returns when the photo was captured, nil when unknown.
func (ph PodPhoto) TakenAt() *time.Time { return ph.takenAt }

// Location returns where the photo was captured, nil when unknown.
func (ph PodPhoto) Location() *kernel.GeoPoint { return ph.location }

// Validate ensures the PodPhoto was created through NewPodPhoto.
func (ph PodPhoto) Validate() error {
	if !ph.isConstructed {
		return errs.NewValueIsRequiredError("pod photo must be created via NewPodPhoto constructor")
	}
	return nil
}

// DeliveryAttempt records one resolution of an out-for-delivery package:
// delivered or failed, with the GPS evidence captured in the field and any
// proof-of-delivery photos. Attempt numbers are 1-based and contiguous per
// package; the number is handed in by the Package aggregate (RecordAttempt),
// never derived from counting existing rows.
type DeliveryAttempt struct {
	id         kernel.UUID
	packageID  kernel.UUID
	driverID   kernel.UUID
	attemptNo  int
	result     AttemptResult
	reasonCode string
	notes      string
	location   kernel.GeoPoint
	photos     []PodPhoto
	at         time.Time

	isConstructed bool
}

// NewDeliveryAttempt creates an attempt record. GPS coordinates are mandatory
// for both outcomes; failed attempts additionally require a non-empty reason
// code. attemptNo must be at least 1.
func NewDeliveryAttempt(
	id kernel.UUID,
	packageID kernel.UUID,
	driverID kernel.UUID,
	attemptNo int,
	result AttemptResult,
	reasonCode string,
	notes string,
	location kernel.GeoPoint,
	photos []PodPhoto,
	at time.Time,
) (*DeliveryAttempt, error) {
	if err := errors.Join(
		id.Validate(),
		packageID.Validate(),
		driverID.Validate(),
		result.Validate(),
		location.Validate(),
	); err != nil {
		return nil, err
	}
	if attemptNo < 1 {
		return nil, errs.NewValueIsOutOfRangeError("attempt_no", attemptNo, 1, "unbounded")
	}

	reasonCode = strings.TrimSpace(reasonCode)
	if result == AttemptFailed && reasonCode == "" {
		return nil, errs.NewValueIsRequiredError("reason_code")
	}

	for _, photo := range photos {
		if err := photo.Validate(); err != nil {
			return nil, err
		}
	}

	return &DeliveryAttempt{
		id:            id,
		packageID:     packageID,
		driverID:      driverID,
		attemptNo:     attemptNo,
		result:        result,
		reasonCode:    reasonCode,
		notes:         notes,
		location:      location,
		photos:        photos,
		at:            at.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the DeliveryAttempt was properly constructed.
func (a *DeliveryAttempt) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttemptIsNotConstructed
	}
	return nil
}

// ID returns the attempt's unique identifier.
func (a *DeliveryAttempt) ID() kernel.UUID {
	return a.id
}

// PackageID returns the package this attempt belongs to.
func (a *DeliveryAttempt) PackageID() kernel.UUID {
	return a.packageID
}

// DriverID returns the driver who made the attempt.
func (a *DeliveryAttempt) DriverID() kernel.UUID {
	return a.driverID
}

// AttemptNo returns the 1-based attempt number, unique per package.
func (a *DeliveryAttempt) AttemptNo() int {
	return a.attemptNo
}

// Result returns the attempt outcome.
func (a *DeliveryAttempt) Result() AttemptResult {
	return a.result
}

// ReasonCode returns the failure reason; empty for delivered attempts.
func (a *DeliveryAttempt) ReasonCode() string {
	return a.reasonCode
}

// Notes returns free-form notes, possibly empty.
func (a *DeliveryAttempt) Notes() string {
	return a.notes
}

// Location returns the GPS coordinates captured at the attempt.
func (a *DeliveryAttempt) Location() kernel.GeoPoint {
	return a.location
}

// Photos returns the proof-of-delivery photos attached to the attempt.
func (a *DeliveryAttempt) Photos() []PodPhoto {
	return a.photos
}

// At returns when the attempt was recorded.
func (a *DeliveryAttempt) At() time.Time {
	return a.at
}
