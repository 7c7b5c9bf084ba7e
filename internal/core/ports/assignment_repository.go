package ports

import (
	"context"

	"replenish/internal/core/domain/model/kernel"
)

// AssignmentRepository resolves the many-to-many assignment between managers
// and branches. The workflow consults it read-only; assignments are
// administered elsewhere and never mutated by order transitions.
type AssignmentRepository interface {
	// EligibleManagers returns the managers with an active assignment to the
	// given branch.
	EligibleManagers(ctx context.Context, branchID kernel.UUID) ([]kernel.UUID, error)

	// IsEligible reports whether the manager holds an active assignment to
	// the branch.
	IsEligible(ctx context.Context, managerID, branchID kernel.UUID) (bool, error)
}
