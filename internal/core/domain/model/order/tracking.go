package order

import (
	"replenish/internal/pkg/errs"
)

// Tracking holds courier details for a dispatched order. It is present only
// once the order enters InTransit.
type Tracking struct {
	courier string
	link    string

	isConstructed bool
}

// NewTracking creates tracking details. The courier reference is mandatory;
// the tracking link is optional since not every courier provides one.
func NewTracking(courier, link string) (Tracking, error) {
	if courier == "" {
		return Tracking{}, errs.NewValueIsRequiredError("courier")
	}
	return Tracking{courier: courier, link: link, isConstructed: true}, nil
}

// Validate rejects zero-value tracking details.
func (t Tracking) Validate() error {
	if !t.isConstructed {
		return errs.NewValueIsRequiredError("tracking must be created via NewTracking")
	}
	return nil
}

// Courier returns the courier identifier or name.
func (t Tracking) Courier() string {
	return t.courier
}

// Link returns the tracking URL, possibly empty.
func (t Tracking) Link() string {
	return t.link
}
