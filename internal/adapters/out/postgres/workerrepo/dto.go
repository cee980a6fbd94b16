// Package workerrepo provides data transfer objects and mapping functions for
// worker persistence. This package implements the repository pattern for the
// worker domain aggregate, handling the conversion between domain entities and
// database representations.
package workerrepo

import (
	"slices"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
// Skills, availability windows, and leave requests live in child tables owned
// by the worker row.
type WorkerDTO struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Name           string                  `gorm:"type:varchar(255);not null"`
	MaxWeeklyHours *float64                `gorm:"type:numeric"`
	Skills         []SkillDTO              `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Windows        []AvailabilityWindowDTO `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Leaves         []LeaveRequestDTO       `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// SkillDTO represents a single skill row owned by a worker.
// Position preserves the order skills were added in.
type SkillDTO struct {
	WorkerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Skill    string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for worker skill rows.
func (SkillDTO) TableName() string {
	return "worker_skills"
}

// AvailabilityWindowDTO represents a weekly availability window row.
// Day stores time.Weekday ordinals; times are minutes since midnight.
type AvailabilityWindowDTO struct {
	WorkerID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey"`
	Day          int       `gorm:"type:smallint;not null"`
	StartMinutes int       `gorm:"type:smallint;not null"`
	EndMinutes   int       `gorm:"type:smallint;not null"`
}

// TableName specifies the database table name for availability window rows.
func (AvailabilityWindowDTO) TableName() string {
	return "availability_windows"
}

// LeaveRequestDTO represents a leave request entity owned by a worker.
type LeaveRequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Status    int       `gorm:"type:smallint;not null"`
}

// TableName specifies the database table name for leave request entities.
func (LeaveRequestDTO) TableName() string {
	return "leave_requests"
}

// fromDomain converts a worker domain aggregate to its database representation.
// Maps all aggregate entities including skills, windows, and leave requests.
func fromDomain(w *worker.Worker) WorkerDTO {
	workerID := w.ID().Bytes()

	skills := make([]SkillDTO, 0, len(w.Skills()))
	for i, skill := range w.Skills() {
		skills = append(skills, SkillDTO{
			WorkerID: workerID,
			Position: i,
			Skill:    skill,
		})
	}

	windows := make([]AvailabilityWindowDTO, 0, len(w.Windows()))
	for i, window := range w.Windows() {
		windows = append(windows, AvailabilityWindowDTO{
			WorkerID:     workerID,
			Position:     i,
			Day:          int(window.Day()),
			StartMinutes: window.Start().Minutes(),
			EndMinutes:   window.End().Minutes(),
		})
	}

	leaves := make([]LeaveRequestDTO, 0, len(w.Leaves()))
	for _, leave := range w.Leaves() {
		leaves = append(leaves, LeaveRequestDTO{
			ID:        leave.ID().Bytes(),
			WorkerID:  workerID,
			StartDate: leave.StartDate(),
			EndDate:   leave.EndDate(),
			Status:    int(leave.Status()),
		})
	}

	return WorkerDTO{
		ID:             workerID,
		Name:           w.Name(),
		MaxWeeklyHours: w.MaxWeeklyHours(),
		Skills:         skills,
		Windows:        windows,
		Leaves:         leaves,
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
// Reconstructs the complete aggregate including all child entities using RestoreWorker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	skillRows := slices.Clone(dto.Skills)
	slices.SortFunc(skillRows, func(a, b SkillDTO) int { return a.Position - b.Position })

	skills := make([]string, 0, len(skillRows))
	for _, row := range skillRows {
		skills = append(skills, row.Skill)
	}

	windowRows := slices.Clone(dto.Windows)
	slices.SortFunc(windowRows, func(a, b AvailabilityWindowDTO) int { return a.Position - b.Position })

	windows := make([]worker.AvailabilityWindow, 0, len(windowRows))
	for _, row := range windowRows {
		window, windowErr := windowToDomain(row)
		if windowErr != nil {
			return nil, windowErr
		}
		windows = append(windows, window)
	}

	leaves := make([]*worker.LeaveRequest, 0, len(dto.Leaves))
	for _, row := range dto.Leaves {
		leave, leaveErr := leaveToDomain(row)
		if leaveErr != nil {
			return nil, leaveErr
		}
		leaves = append(leaves, leave)
	}

	return worker.RestoreWorker(id, dto.Name, skills, windows, dto.MaxWeeklyHours, leaves)
}

// windowToDomain converts an availability window row to its domain value object.
func windowToDomain(dto AvailabilityWindowDTO) (worker.AvailabilityWindow, error) {
	start, err := kernel.NewTimeOfDay(dto.StartMinutes/60, dto.StartMinutes%60)
	if err != nil {
		return worker.AvailabilityWindow{}, err
	}

	end, err := kernel.NewTimeOfDay(dto.EndMinutes/60, dto.EndMinutes%60)
	if err != nil {
		return worker.AvailabilityWindow{}, err
	}

	return worker.NewAvailabilityWindow(time.Weekday(dto.Day), start, end)
}

// leaveToDomain converts a leave request row to its domain entity.
// Uses RestoreLeaveRequest to reconstruct the entity with its persisted status.
func leaveToDomain(dto LeaveRequestDTO) (*worker.LeaveRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return worker.RestoreLeaveRequest(id, dto.StartDate, dto.EndDate, worker.LeaveStatus(dto.Status))
}
