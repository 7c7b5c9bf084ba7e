package commands

import (
	"errors"
	"time"

	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrCloseDueOrdersCommandIsNotConstructed = errors.New(
	"CloseDueOrdersCommand must be created via NewCloseDueOrdersCommand constructor",
)

// CloseDueOrdersCommand asks the scheduler sweep to close every received order
// whose auto-close deadline has elapsed at the given instant.
type CloseDueOrdersCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewCloseDueOrdersCommand captures the sweep instant. The scheduler passes
// the tick time so a delayed run still closes everything due before it.
func NewCloseDueOrdersCommand(now time.Time) (CloseDueOrdersCommand, error) {
	if now.IsZero() {
		return CloseDueOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return CloseDueOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCloseDueOrdersCommandIsNotConstructed)
}

// Now returns the sweep instant.
func (c CloseDueOrdersCommand) Now() time.Time { return c.now }
