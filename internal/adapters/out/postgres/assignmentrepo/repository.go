package assignmentrepo

import (
	"context"

	"replenish/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
// All operations are reads; the workflow never mutates assignments.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// EligibleManagers returns the managers with an active assignment to the branch.
func (r *GormAssignmentRepository) EligibleManagers(ctx context.Context, branchID kernel.UUID) ([]kernel.UUID, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND active", branchID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	managers := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		managerID, idErr := kernel.UUIDFromBytes(dto.ManagerID[:])
		if idErr != nil {
			return nil, idErr
		}
		managers = append(managers, managerID)
	}

	return managers, nil
}

// IsEligible reports whether the manager holds an active assignment to the branch.
func (r *GormAssignmentRepository) IsEligible(ctx context.Context, managerID, branchID kernel.UUID) (bool, error) {
	if err := managerID.Validate(); err != nil {
		return false, err
	}
	if err := branchID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("manager_id = ? AND branch_id = ? AND active", managerID.Bytes(), branchID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
