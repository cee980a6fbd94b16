// Package locationrepo provides data transfer objects and mapping functions for
// location persistence. This package implements the repository pattern for the
// location domain aggregate, handling the conversion between domain entities and
// database representations.
package locationrepo

import (
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting location aggregates.
type LocationDTO struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Name         string                `gorm:"type:varchar(255);not null"`
	Address      string                `gorm:"type:varchar(512)"`
	Requirements []SkillRequirementDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for location entities.
// Overrides GORM's default naming convention to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

// SkillRequirementDTO represents a single skill requirement row owned by a
// location. Position preserves declaration order.
type SkillRequirementDTO struct {
	LocationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	Skill      string    `gorm:"type:varchar(255);not null"`
	Required   bool      `gorm:"not null"`
}

// TableName specifies the database table name for skill requirement rows.
func (SkillRequirementDTO) TableName() string {
	return "skill_requirements"
}

// fromDomain converts a location domain aggregate to its database representation.
func fromDomain(l *location.Location) LocationDTO {
	locationID := l.ID().Bytes()
	reqs := l.Requirements()

	requirements := make([]SkillRequirementDTO, 0, len(reqs))
	for i, req := range reqs {
		requirements = append(requirements, SkillRequirementDTO{
			LocationID: locationID,
			Position:   i,
			Skill:      req.Skill(),
			Required:   req.Required(),
		})
	}

	return LocationDTO{
		ID:           locationID,
		Name:         l.Name(),
		Address:      l.Address(),
		Requirements: requirements,
	}
}

// toDomain converts a database DTO to a location domain aggregate.
// Reconstructs the complete aggregate including skill requirements using RestoreLocation.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rows := slices.Clone(dto.Requirements)
	slices.SortFunc(rows, func(a, b SkillRequirementDTO) int {
		return a.Position - b.Position
	})

	requirements := make([]location.SkillRequirement, 0, len(rows))
	for _, row := range rows {
		req, reqErr := location.NewSkillRequirement(row.Skill, row.Required)
		if reqErr != nil {
			return nil, reqErr
		}
		requirements = append(requirements, req)
	}

	return location.RestoreLocation(id, dto.Name, dto.Address, requirements)
}
