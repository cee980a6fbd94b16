package http

import (
	"fmt"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
)

// Error is the standard error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AvailabilityWindowRequest declares one weekly availability window.
// Times use the 24-hour "15:04" format.
type AvailabilityWindowRequest struct {
	Day   string `json:"day"   validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

// CreateWorkerRequest is the payload for registering a worker.
type CreateWorkerRequest struct {
	Name           string                      `json:"name" validate:"required"`
	Skills         []string                    `json:"skills"`
	Windows        []AvailabilityWindowRequest `json:"availabilityWindows" validate:"dive"`
	MaxWeeklyHours *float64                    `json:"maxWeeklyHours" validate:"omitempty,gt=0"`
}

// RequestLeaveRequest is the payload for requesting leave.
// Dates use the "2006-01-02" format and the range is inclusive.
type RequestLeaveRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"   validate:"required"`
}

// ApproveLeaveRequest reviews a pending leave request. The worker who owns the
// leave must be named because leave requests live inside the worker aggregate.
type ApproveLeaveRequest struct {
	WorkerID string `json:"workerId" validate:"required,uuid"`
	Approve  *bool  `json:"approve"  validate:"required"`
}

// SkillRequirementRequest declares one skill a location wants from workers.
type SkillRequirementRequest struct {
	Skill    string `json:"skill" validate:"required"`
	Required bool   `json:"required"`
}

// CreateLocationRequest is the payload for registering a location.
type CreateLocationRequest struct {
	Name         string                    `json:"name" validate:"required"`
	Address      string                    `json:"address"`
	Requirements []SkillRequirementRequest `json:"skillRequirements" validate:"dive"`
}

// CreateJobRequest is the payload for creating a job or a recurring template.
// Pattern is required when isRecurring is true.
type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	LocationID      string   `json:"locationId" validate:"required,uuid"`
	ScheduledAt     *string  `json:"scheduledAt"`
	DurationMinutes int      `json:"durationMinutes" validate:"gte=0"`
	IsRecurring     bool     `json:"isRecurring"`
	Pattern         string   `json:"pattern"`
	Checklist       []string `json:"checklist"`
}

// AssignWorkerRequest is the payload for assigning a worker to a job.
type AssignWorkerRequest struct {
	WorkerID string `json:"workerId" validate:"required,uuid"`
}

// ValidateAssignmentRequest is the payload for the pre-assignment check.
// WeekStart and weekEnd optionally override the workload week bounds and use
// the "2006-01-02" format; when omitted the week containing scheduledAt is used.
type ValidateAssignmentRequest struct {
	WorkerID        string `json:"workerId"    validate:"required,uuid"`
	JobID           string `json:"jobId"       validate:"required,uuid"`
	LocationID      string `json:"locationId"  validate:"required,uuid"`
	ScheduledAt     string `json:"scheduledAt" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"gte=0"`
	WeekStart       string `json:"weekStart"`
	WeekEnd         string `json:"weekEnd"`
}

// GenerateInstancesRequest tunes a manual generation run. Zero daysAhead uses
// the default horizon.
type GenerateInstancesRequest struct {
	DaysAhead int `json:"daysAhead" validate:"gte=0"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// WarningResponse is one advisory finding from assignment validation.
type WarningResponse struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Details  any    `json:"details,omitempty"`
}

// ValidateAssignmentResponse reports the outcome of the pre-assignment check.
// CanAssign is always true: warnings advise, they never block.
type ValidateAssignmentResponse struct {
	Valid     bool              `json:"valid"`
	CanAssign bool              `json:"canAssign"`
	Warnings  []WarningResponse `json:"warnings"`
}

// WorkerResponse is the roster read model.
type WorkerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Skills         []string `json:"skills"`
	MaxWeeklyHours *float64 `json:"maxWeeklyHours,omitempty"`
}

// JobResponse is the schedule read model.
type JobResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	LocationID      string    `json:"locationId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
}

// TemplateResponse is the recurring template read model.
type TemplateResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Pattern string `json:"pattern"`
}

// InstanceResponse describes one generated recurring instance.
type InstanceResponse struct {
	ID             string    `json:"id"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	OccurrenceDate string    `json:"occurrenceDate"`
}

// GenerationFailureResponse describes one occurrence date that failed to generate.
type GenerationFailureResponse struct {
	OccurrenceDate string `json:"occurrenceDate"`
	Error          string `json:"error"`
}

// GenerateInstancesResponse reports the outcome of a generation run.
// Count covers newly created instances only, not pre-existing ones.
type GenerateInstancesResponse struct {
	CreatedCount int                         `json:"count"`
	Instances    []InstanceResponse          `json:"instances"`
	Failures     []GenerationFailureResponse `json:"failures"`
}

func warningsToResponse(warnings []services.Warning) []WarningResponse {
	response := make([]WarningResponse, 0, len(warnings))
	for _, warning := range warnings {
		response = append(response, WarningResponse{
			Type:     string(warning.Type),
			Severity: string(warning.Severity),
			Message:  warning.Message,
			Details:  warning.Details,
		})
	}
	return response
}

func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func parseWeekday(s string) (time.Weekday, error) {
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	day, ok := days[strings.ToLower(s)]
	if !ok {
		return time.Sunday, fmt.Errorf("%q is not a weekday name", s)
	}
	return day, nil
}
