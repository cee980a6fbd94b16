// Package http exposes the scheduling use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the scheduling API.
type Server struct {
	// Command handlers
	createWorkerHandler      commands.CreateWorkerCommandHandler
	requestLeaveHandler      commands.RequestLeaveCommandHandler
	approveLeaveHandler      commands.ApproveLeaveCommandHandler
	createLocationHandler    commands.CreateLocationCommandHandler
	createJobHandler         commands.CreateJobCommandHandler
	assignWorkerHandler      commands.AssignWorkerCommandHandler
	generateInstancesHandler commands.GenerateInstancesCommandHandler

	// Query handlers
	validateAssignmentHandler queries.ValidateAssignmentQueryHandler
	getAllWorkersHandler      queries.GetAllWorkersQueryHandler
	getUpcomingJobsHandler    queries.GetUpcomingJobsQueryHandler
	getTemplatesHandler       queries.GetRecurringTemplatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWorkerHandler commands.CreateWorkerCommandHandler,
	requestLeaveHandler commands.RequestLeaveCommandHandler,
	approveLeaveHandler commands.ApproveLeaveCommandHandler,
	createLocationHandler commands.CreateLocationCommandHandler,
	createJobHandler commands.CreateJobCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	generateInstancesHandler commands.GenerateInstancesCommandHandler,
	validateAssignmentHandler queries.ValidateAssignmentQueryHandler,
	getAllWorkersHandler queries.GetAllWorkersQueryHandler,
	getUpcomingJobsHandler queries.GetUpcomingJobsQueryHandler,
	getTemplatesHandler queries.GetRecurringTemplatesQueryHandler,
) *Server {
	return &Server{
		createWorkerHandler:       createWorkerHandler,
		requestLeaveHandler:       requestLeaveHandler,
		approveLeaveHandler:       approveLeaveHandler,
		createLocationHandler:     createLocationHandler,
		createJobHandler:          createJobHandler,
		assignWorkerHandler:       assignWorkerHandler,
		generateInstancesHandler:  generateInstancesHandler,
		validateAssignmentHandler: validateAssignmentHandler,
		getAllWorkersHandler:      getAllWorkersHandler,
		getUpcomingJobsHandler:    getUpcomingJobsHandler,
		getTemplatesHandler:       getTemplatesHandler,
	}
}

// RegisterRoutes wires all API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	api := e.Group("/api/v1")

	api.POST("/workers", s.CreateWorker)
	api.GET("/workers", s.GetWorkers)
	api.POST("/workers/:id/leave", s.RequestLeave)
	api.POST("/leave/:id/approve", s.ApproveLeave)

	api.POST("/locations", s.CreateLocation)

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs/upcoming", s.GetUpcomingJobs)
	api.GET("/jobs/templates", s.GetTemplates)
	api.POST("/jobs/:id/assign", s.AssignWorker)
	api.POST("/jobs/:id/instances", s.GenerateInstances)

	api.POST("/assignments/validate", s.ValidateAssignment)
}

// badRequest renders a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handleError maps application errors onto HTTP status codes.
func handleError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
