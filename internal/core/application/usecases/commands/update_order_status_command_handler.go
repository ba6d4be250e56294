package commands

import (
	"context"

	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/core/events"
	"tableservice/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order to a new status. When the
// target status is delivered, the order's table is released in the same
// transaction. The broadcast carries identifiers and the status string, not
// the full order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update. Fails with a not-found error if the
// order id is unknown.
//
// Releasing the table ignores the matched count: the table is not required
// to still exist, and the release happens the moment this one order is
// delivered even if other active orders reference the same table (a known
// limitation of the status-flag occupancy model).
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered {
		if _, err = uow.TableRepository().UpdateStatusByNumber(ctx, aggregate.TableNumber(), table.Available); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.NewOrderStatusUpdated(aggregate))

	return nil
}
