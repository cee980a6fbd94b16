package postgres

import (
	"fieldops/internal/adapters/out/postgres/jobrepo"
	"fieldops/internal/adapters/out/postgres/locationrepo"
	"fieldops/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persistence DTOs,
// including the unique index on (parent_template_id, occurrence_date) that
// guards recurring instance generation.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&workerrepo.WorkerDTO{},
		&workerrepo.SkillDTO{},
		&workerrepo.AvailabilityWindowDTO{},
		&workerrepo.LeaveRequestDTO{},
		&locationrepo.LocationDTO{},
		&locationrepo.SkillRequirementDTO{},
		&jobrepo.JobDTO{},
		&jobrepo.AssigneeDTO{},
		&jobrepo.ChecklistItemDTO{},
	)
}
