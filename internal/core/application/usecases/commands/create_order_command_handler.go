package commands

import (
	"context"

	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/core/events"
	"tableservice/internal/core/ports"
)

// CreateOrderCommandHandler places a new order: it verifies the target table
// exists, persists the order with its frozen total, marks the table
// occupied, and announces the order to every connected viewer.
//
// The order insert and the table status flip share one transaction. The
// broadcast happens after commit and is fire-and-forget: a delivery failure
// never rolls anything back and never reaches the caller.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command and returns the created
// order. Fails with a not-found error if the table number does not resolve
// to an existing table.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The table lookup doubles as the InvalidTable check.
	if _, err := uow.TableRepository().GetByNumber(ctx, cmd.TableNumber()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TableNumber(), cmd.Items(), cmd.WaiterName(), cmd.Note())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if _, err = uow.TableRepository().UpdateStatusByNumber(ctx, cmd.TableNumber(), table.Occupied); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, events.NewOrderCreated(newOrder))

	return newOrder, nil
}
