package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/core/domain/model/worker"
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestAssignWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	scheduledAt := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	testJob, err := job.NewJob(kernel.NewUUID(), "Deep clean", "", kernel.NewUUID(), &scheduledAt, 90)
	require.NoError(t, err)
	testWorker, err := worker.NewWorker(kernel.NewUUID(), "Dana", []string{"deep-clean"})
	require.NoError(t, err)

	cmd, err := commands.NewAssignWorkerCommand(testJob.ID(), testWorker.ID())
	require.NoError(t, err)

	jobRepo := new(MockGenerationJobRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", ctx, testWorker.ID()).Return(testWorker, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignWorkerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.Assigned, testJob.Status())
	assert.True(t, testJob.IsAssignedTo(testWorker.ID()))

	jobRepo.AssertExpectations(t)
	workerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignWorkerCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()

	jobID := kernel.NewUUID()
	cmd, err := commands.NewAssignWorkerCommand(jobID, kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockGenerationJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, jobID).
			Return(nil, errs.NewObjectNotFoundError("jobID", jobID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignWorkerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignWorkerCommandHandler_Handle_DraftJobRejectsAssignment(t *testing.T) {
	ctx := t.Context()

	draft, err := job.NewJob(kernel.NewUUID(), "Unscheduled clean", "", kernel.NewUUID(), nil, 0)
	require.NoError(t, err)
	testWorker, err := worker.NewWorker(kernel.NewUUID(), "Dana", nil)
	require.NoError(t, err)

	cmd, err := commands.NewAssignWorkerCommand(draft.ID(), testWorker.ID())
	require.NoError(t, err)

	jobRepo := new(MockGenerationJobRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, draft.ID()).Return(draft, nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", ctx, testWorker.ID()).Return(testWorker, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignWorkerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignWorkerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)
	handler := commands.NewAssignWorkerCommandHandler(factory)

	err := handler.Handle(ctx, commands.AssignWorkerCommand{})

	require.ErrorIs(t, err, commands.ErrAssignWorkerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
