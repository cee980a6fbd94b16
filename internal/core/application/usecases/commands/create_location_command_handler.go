package commands

import (
	"context"

	"fieldops/internal/core/domain/model/location"
)

// CreateLocationCommandHandler handles the business logic for location registration.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location registration.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location registration command.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newLocation, err := location.NewLocation(cmd.LocationID(), cmd.Name(), cmd.Address(), cmd.Requirements())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, newLocation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
