package kernel

import (
	"errors"
	"strings"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination of a package. Street, city and ZIP are
// required; state is optional (some service areas do not use one). City and
/// ZIP also drive area-based assignment: ZIP matching is exact, city matching
// is case-insensitive.
//
// Address is an immutable value object; the zero value fails Validate.
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	state  string
	zip    string
	guard  guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street, city and zip must be
// non-empty after trimming whitespace.
func NewAddress(street, city, state, zip string) (Address, error) {
	addr := Address{
		state: strings.TrimSpace(state),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the state or region, possibly empty.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code.
func (a Address) Zip() string {
	return a.zip
}

// MatchesZip reports whether the address postal code equals zip exactly.
func (a Address) MatchesZip(zip string) bool {
	return zip != "" && a.zip == zip
}

// MatchesCity reports whether the address city equals city, ignoring case.
func (a Address) MatchesCity(city string) bool {
	return city != "" && strings.EqualFold(a.city, city)
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setZip(zip string) error {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	a.zip = zip
	return nil
}
