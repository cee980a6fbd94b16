package http

import (
	"net/http"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"

	"github.com/labstack/echo/v4"
)

// CreateWorker handles POST /api/v1/workers - registers a new worker.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var request CreateWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	windows := make([]worker.AvailabilityWindow, 0, len(request.Windows))
	for _, windowRequest := range request.Windows {
		window, err := windowFromRequest(windowRequest)
		if err != nil {
			return badRequest(ctx, "Invalid availability window: "+err.Error())
		}
		windows = append(windows, window)
	}

	workerID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkerCommand(
		workerID, request.Name, request.Skills, windows, request.MaxWeeklyHours)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	if err = s.createWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: workerID.String()})
}

// GetWorkers handles GET /api/v1/workers - retrieves the worker roster.
func (s *Server) GetWorkers(ctx echo.Context) error {
	workers, err := s.getAllWorkersHandler.Handle(ctx.Request().Context(), queries.NewGetAllWorkersQuery())
	if err != nil {
		return handleError(ctx, err)
	}

	response := make([]WorkerResponse, 0, len(workers))
	for _, w := range workers {
		response = append(response, WorkerResponse{
			ID:             w.ID.String(),
			Name:           w.Name,
			Skills:         w.Skills,
			MaxWeeklyHours: w.MaxWeeklyHours,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestLeave handles POST /api/v1/workers/:id/leave - records a pending leave request.
func (s *Server) RequestLeave(ctx echo.Context) error {
	workerID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid worker ID")
	}

	var request RequestLeaveRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	startDate, err := parseDate(request.StartDate)
	if err != nil {
		return badRequest(ctx, "Invalid start date: "+err.Error())
	}
	endDate, err := parseDate(request.EndDate)
	if err != nil {
		return badRequest(ctx, "Invalid end date: "+err.Error())
	}

	leaveID := kernel.NewUUID()
	cmd, err := commands.NewRequestLeaveCommand(workerID, leaveID, startDate, endDate)
	if err != nil {
		return badRequest(ctx, "Invalid leave data: "+err.Error())
	}

	if err = s.requestLeaveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: leaveID.String()})
}

// ApproveLeave handles POST /api/v1/leave/:id/approve - reviews a pending leave request.
func (s *Server) ApproveLeave(ctx echo.Context) error {
	leaveID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid leave ID")
	}

	var request ApproveLeaveRequest
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

	cmd, err := commands.NewApproveLeaveCommand(workerID, leaveID, *request.Approve)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if err = s.approveLeaveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// windowFromRequest converts an availability window payload to its domain value object.
func windowFromRequest(request AvailabilityWindowRequest) (worker.AvailabilityWindow, error) {
	day, err := parseWeekday(request.Day)
	if err != nil {
		return worker.AvailabilityWindow{}, err
	}

	start, err := kernel.ParseTimeOfDay(request.Start)
	if err != nil {
		return worker.AvailabilityWindow{}, err
	}

	end, err := kernel.ParseTimeOfDay(request.End)
	if err != nil {
		return worker.AvailabilityWindow{}, err
	}

	return worker.NewAvailabilityWindow(day, start, end)
}
