// Package assignmentrepo reads the many-to-many assignment between managers
// and branches. The workflow only consults it; assignment administration is a
// separate system writing to the same table.
package assignmentrepo

import (
	"github.com/google/uuid"
)

// AssignmentDTO is one manager-branch assignment row.
type AssignmentDTO struct {
	ManagerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Active    bool      `gorm:"default:true"`
}

// TableName overrides GORM's default naming to use "manager_assignments".
func (AssignmentDTO) TableName() string {
	return "manager_assignments"
}
