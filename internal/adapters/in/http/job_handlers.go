package http

import (
	"net/http"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"

	"github.com/labstack/echo/v4"
)

// CreateLocation handles POST /api/v1/locations - registers a new location.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var request CreateLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	requirements := make([]location.SkillRequirement, 0, len(request.Requirements))
	for _, reqRequest := range request.Requirements {
		requirement, err := location.NewSkillRequirement(reqRequest.Skill, reqRequest.Required)
		if err != nil {
			return badRequest(ctx, "Invalid skill requirement: "+err.Error())
		}
		requirements = append(requirements, requirement)
	}

	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(locationID, request.Name, request.Address, requirements)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err = s.createLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: locationID.String()})
}

// CreateJob handles POST /api/v1/jobs - creates a regular job or a recurring template.
func (s *Server) CreateJob(ctx echo.Context) error {
	var request CreateJobRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	locationID, err := parseUUID(request.LocationID)
	if err != nil {
		return badRequest(ctx, "Invalid location ID")
	}

	var scheduledAt *time.Time
	if request.ScheduledAt != nil {
		parsed, parseErr := time.Parse(time.RFC3339, *request.ScheduledAt)
		if parseErr != nil {
			return badRequest(ctx, "Invalid scheduled time: "+parseErr.Error())
		}
		scheduledAt = &parsed
	}

	jobID := kernel.NewUUID()
	var cmd commands.CreateJobCommand
	if request.IsRecurring {
		pattern, patternErr := job.PatternFromString(request.Pattern)
		if patternErr != nil {
			return badRequest(ctx, "Invalid pattern: "+patternErr.Error())
		}
		cmd, err = commands.NewCreateTemplateCommand(jobID, request.Title, request.Description,
			locationID, scheduledAt, request.DurationMinutes, pattern, request.Checklist)
	} else {
		cmd, err = commands.NewCreateJobCommand(jobID, request.Title, request.Description,
			locationID, scheduledAt, request.DurationMinutes, request.Checklist)
	}
	if err != nil {
		return badRequest(ctx, "Invalid job data: "+err.Error())
	}

	if err = s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: jobID.String()})
}

// AssignWorker handles POST /api/v1/jobs/:id/assign - assigns a worker to a job.
func (s *Server) AssignWorker(ctx echo.Context) error {
	jobID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}

	var request AssignWorkerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	workerID, err := parseUUID(request.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	cmd, err := commands.NewAssignWorkerCommand(jobID, workerID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateAssignment handles POST /api/v1/assignments/validate - runs the
// advisory pre-assignment check. The response never blocks assignment.
func (s *Server) ValidateAssignment(ctx echo.Context) error {
	var request ValidateAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	workerID, err := parseUUID(request.WorkerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}
	jobID, err := parseUUID(request.JobID)
	if err != nil {
		return badRequest(ctx, "Invalid job ID")
	}
	locationID, err := parseUUID(request.LocationID)
	if err != nil {
		return badRequest(ctx, "Invalid location ID")
	}

	scheduledAt, err := time.Parse(time.RFC3339, request.ScheduledAt)
	if err != nil {
		return badRequest(ctx, "Invalid scheduled time: "+err.Error())
	}

	var weekStart, weekEnd *time.Time
	if request.WeekStart != "" {
		parsed, parseErr := parseDate(request.WeekStart)
		if parseErr != nil {
			return badRequest(ctx, "Invalid week start: "+parseErr.Error())
		}
		weekStart = &parsed
	}
	if request.WeekEnd != "" {
		parsed, parseErr := parseDate(request.WeekEnd)
		if parseErr != nil {
			return badRequest(ctx, "Invalid week end: "+parseErr.Error())
		}
		weekEnd = &parsed
	}

	query, err := queries.NewValidateAssignmentQuery(
		workerID, jobID, locationID, scheduledAt, request.DurationMinutes, weekStart, weekEnd)
	if err != nil {
		return badRequest(ctx, "Invalid validation request: "+err.Error())
	}

	result, err := s.validateAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ValidateAssignmentResponse{
		Valid:     result.Valid,
		CanAssign: result.CanAssign,
		Warnings:  warningsToResponse(result.Warnings),
	})
}

// GenerateInstances handles POST /api/v1/jobs/:id/instances - expands a
// recurring template into dated instances for the coming horizon.
func (s *Server) GenerateInstances(ctx echo.Context) error {
	templateID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid template ID")
	}

	var request GenerateInstancesRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewGenerateInstancesCommand(templateID, request.DaysAhead)
	if err != nil {
		return badRequest(ctx, "Invalid generation request: "+err.Error())
	}

	result, err := s.generateInstancesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handleError(ctx, err)
	}

	instances := make([]InstanceResponse, 0, len(result.Instances))
	for _, instance := range result.Instances {
		response := InstanceResponse{ID: instance.ID().String()}
		if scheduledAt := instance.ScheduledAt(); scheduledAt != nil {
			response.ScheduledAt = *scheduledAt
		}
		if occurrence := instance.OccurrenceDate(); occurrence != nil {
			response.OccurrenceDate = occurrence.Format(time.DateOnly)
		}
		instances = append(instances, response)
	}

	failures := make([]GenerationFailureResponse, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, GenerationFailureResponse{
			OccurrenceDate: failure.OccurrenceDate.Format(time.DateOnly),
			Error:          failure.Err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, GenerateInstancesResponse{
		CreatedCount: result.CreatedCount,
		Instances:    instances,
		Failures:     failures,
	})
}

// GetUpcomingJobs handles GET /api/v1/jobs/upcoming - retrieves the schedule
// starting at the optional "from" query parameter (defaults to now).
func (s *Server) GetUpcomingJobs(ctx echo.Context) error {
	from := time.Now()
	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "Invalid from time: "+err.Error())
		}
		from = parsed
	}

	query, err := queries.NewGetUpcomingJobsQuery(from)
	if err != nil {
		return badRequest(ctx, "Invalid schedule request: "+err.Error())
	}

	upcoming, err := s.getUpcomingJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err)
	}

	response := make([]JobResponse, 0, len(upcoming))
	for _, j := range upcoming {
		response = append(response, JobResponse{
			ID:              j.ID.String(),
			Title:           j.Title,
			LocationID:      j.LocationID.String(),
			ScheduledAt:     j.ScheduledAt,
			DurationMinutes: j.DurationMinutes,
			Status:          j.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTemplates handles GET /api/v1/jobs/templates - retrieves recurring templates.
func (s *Server) GetTemplates(ctx echo.Context) error {
	templates, err := s.getTemplatesHandler.Handle(ctx.Request().Context(),
		queries.NewGetRecurringTemplatesQuery())
	if err != nil {
		return handleError(ctx, err)
	}

	response := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		response = append(response, TemplateResponse{
			ID:      template.ID.String(),
			Title:   template.Title,
			Pattern: template.Pattern.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
