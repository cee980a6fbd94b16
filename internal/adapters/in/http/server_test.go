package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpserver "fieldops/internal/adapters/in/http"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetActiveAssignedBetween(
	ctx context.Context, workerID kernel.UUID, from, to time.Time, excludeJobID kernel.UUID,
) ([]*job.Job, error) {
	args := m.Called(ctx, workerID, from, to, excludeJobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetRecurringTemplates(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetInstanceByTemplateAndDate(
	ctx context.Context, templateID kernel.UUID, occurrenceDate time.Time,
) (*job.Job, error) {
	args := m.Called(ctx, templateID, occurrenceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

// newTestEcho wires a server whose validation and generation paths are real;
// the remaining handlers are unused zero values.
func newTestEcho(
	validateHandler queries.ValidateAssignmentQueryHandler,
	generateHandler commands.GenerateInstancesCommandHandler,
) *echo.Echo {
	server := httpserver.NewServer(
		commands.CreateWorkerCommandHandler{},
		commands.RequestLeaveCommandHandler{},
		commands.ApproveLeaveCommandHandler{},
		commands.CreateLocationCommandHandler{},
		commands.CreateJobCommandHandler{},
		commands.AssignWorkerCommandHandler{},
		generateHandler,
		validateHandler,
		queries.GetAllWorkersQueryHandler{},
		queries.GetUpcomingJobsQueryHandler{},
		queries.GetRecurringTemplatesQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_ValidateAssignment_WeekOverridesReachWorkloadFetch(t *testing.T) {
	w, err := worker.NewWorker(kernel.NewUUID(), "Dana", []string{"deep-clean"})
	require.NoError(t, err)
	start, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	end, err := kernel.NewTimeOfDay(17, 0)
	require.NoError(t, err)
	window, err := worker.NewAvailabilityWindow(time.Monday, start, end)
	require.NoError(t, err)
	w.AddAvailabilityWindow(window)

	site, err := location.NewLocation(kernel.NewUUID(), "Office 12", "1 Main St", nil)
	require.NoError(t, err)

	scheduledAt := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	j, err := job.NewJob(kernel.NewUUID(), "Deep clean", "", site.ID(), &scheduledAt, 90)
	require.NoError(t, err)

	workerRepo := new(MockWorkerRepository)
	locationRepo := new(MockLocationRepository)
	jobRepo := new(MockJobRepository)

	workerRepo.On("Get", mock.Anything, w.ID()).Return(w, nil).Once()
	locationRepo.On("Get", mock.Anything, site.ID()).Return(site, nil).Once()
	jobRepo.On("Get", mock.Anything, j.ID()).Return(j, nil).Once()

	// The workload fetch must use exactly the week bounds from the payload,
	// not the computed week containing the proposed time.
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	jobRepo.On("GetActiveAssignedBetween", mock.Anything, w.ID(), weekStart, weekEnd, j.ID()).
		Return([]*job.Job{}, nil).Once()
	jobRepo.On("GetActiveAssignedBetween", mock.Anything, w.ID(),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), j.ID()).
		Return([]*job.Job{}, nil).Once()

	validateHandler := queries.NewValidateAssignmentQueryHandler(
		workerRepo, jobRepo, locationRepo, services.DefaultConfig())
	e := newTestEcho(validateHandler, commands.GenerateInstancesCommandHandler{})

	body := fmt.Sprintf(`{
		"workerId": %q,
		"jobId": %q,
		"locationId": %q,
		"scheduledAt": "2025-06-02T10:00:00Z",
		"weekStart": "2025-06-02",
		"weekEnd": "2025-06-09"
	}`, w.ID().String(), j.ID().String(), site.ID().String())

	rec := postJSON(e, "/api/v1/assignments/validate", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"canAssign":true`)

	workerRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestServer_ValidateAssignment_RejectsMalformedWeekStart(t *testing.T) {
	e := newTestEcho(queries.ValidateAssignmentQueryHandler{},
		commands.GenerateInstancesCommandHandler{})

	body := fmt.Sprintf(`{
		"workerId": %q,
		"jobId": %q,
		"locationId": %q,
		"scheduledAt": "2025-06-02T10:00:00Z",
		"weekStart": "June 2nd"
	}`, kernel.NewUUID().String(), kernel.NewUUID().String(), kernel.NewUUID().String())

	rec := postJSON(e, "/api/v1/assignments/validate", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid week start")
}

func TestServer_GenerateInstances_ReportsNewlyCreatedCount(t *testing.T) {
	scheduledAt := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)
	template, err := job.NewTemplate(kernel.NewUUID(), "Weekly maintenance", "",
		kernel.NewUUID(), &scheduledAt, 60, job.PatternWeekly)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)
	factory := new(MockJobUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("JobRepository").Return(jobRepo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	jobRepo.On("Get", mock.Anything, template.ID()).Return(template, nil).Once()
	jobRepo.On("GetInstanceByTemplateAndDate", mock.Anything, template.ID(),
		mock.AnythingOfType("time.Time")).Return(nil, errs.ErrObjectNotFound)
	jobRepo.On("Add", mock.Anything, mock.AnythingOfType("*job.Job")).Return(nil)

	generateHandler := commands.NewGenerateInstancesCommandHandler(factory)
	e := newTestEcho(queries.ValidateAssignmentQueryHandler{}, generateHandler)

	// A weekly pattern reaches exactly one occurrence within a 7-day horizon.
	rec := postJSON(e, "/api/v1/jobs/"+template.ID().String()+"/instances", `{"daysAhead": 7}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"count":1`)
	jobRepo.AssertNumberOfCalls(t, "Add", 1)
}
