package cmd

import (
	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestLeaveCommandHandler() commands.RequestLeaveCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestLeaveCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveLeaveCommandHandler() commands.ApproveLeaveCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveLeaveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateInstancesCommandHandler() commands.GenerateInstancesCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInstancesCommandHandler(f)
}

func (c *CompositionRoot) CreateValidateAssignmentQueryHandler() queries.ValidateAssignmentQueryHandler {
	// Read-only path: repositories run on the main connection, no transaction.
	uow := c.uowFactory.Create()
	return queries.NewValidateAssignmentQueryHandler(
		uow.WorkerRepository(),
		uow.JobRepository(),
		uow.LocationRepository(),
		services.DefaultConfig(),
	)
}

func (c *CompositionRoot) CreateGetAllWorkersQueryHandler() queries.GetAllWorkersQueryHandler {
	return queries.NewGetAllWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUpcomingJobsQueryHandler() queries.GetUpcomingJobsQueryHandler {
	return queries.NewGetUpcomingJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecurringTemplatesQueryHandler() queries.GetRecurringTemplatesQueryHandler {
	return queries.NewGetRecurringTemplatesQueryHandler(c.gormDB)
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
