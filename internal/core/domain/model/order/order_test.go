package order_test

import (
	"testing"
	"time"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, quantity, price, "")
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := order.NewItem(id, "Espresso", 2, 3.50, "no sugar")

		require.NoError(t, err)
		assert.True(t, item.MenuItemID().IsEqual(id))
		assert.Equal(t, "Espresso", item.MenuItemName())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 3.50, item.Price(), 1e-9)
		assert.Equal(t, "no sugar", item.Note())
		assert.InDelta(t, 7.00, item.Subtotal(), 1e-9)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Espresso", 0, 3.50, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Espresso", 1, -1, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, 3.50, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from item snapshots", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Espresso", 2, 3.50),
			mustItem(t, "Cheesecake", 1, 5.00),
		}

		o, err := order.NewOrder(kernel.NewUUID(), 5, items, "Carlos", "")

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 5, o.TableNumber())
		assert.Equal(t, "Carlos", o.WaiterName())
		assert.InDelta(t, 12.00, o.Total(), 1e-9)
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 5, nil, "Carlos", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing waiter", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive table number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 0, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
		require.Error(t, err)
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Espresso", 1, 3.50)}
		o, err := order.NewOrder(kernel.NewUUID(), 5, items, "Carlos", "")
		require.NoError(t, err)

		items[0] = order.Item{}
		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder_KeepsStoredTotal(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []order.Item{mustItem(t, "Espresso", 1, 3.50)}

	// The stored total deliberately disagrees with the item subtotals: it was
	// frozen at creation and must win on restore.
	o, err := order.RestoreOrder(kernel.NewUUID(), 3, items, order.Ready, 99.0, "Ana", "rush", created, created)

	require.NoError(t, err)
	assert.Equal(t, order.Ready, o.Status())
	assert.InDelta(t, 99.0, o.Total(), 1e-9)
	assert.Equal(t, "rush", o.Note())
	assert.Equal(t, created, o.CreatedAt())
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
		require.NoError(t, err)
		return o
	}

	t.Run("updates status and timestamp", func(t *testing.T) {
		o := newOrder(t)
		created := o.UpdatedAt()

		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Equal(t, order.Preparing, o.Status())
		assert.False(t, o.UpdatedAt().Before(created))
	})

	t.Run("total is not recomputed on status change", func(t *testing.T) {
		o := newOrder(t)
		total := o.Total()

		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.InDelta(t, total, o.Total(), 1e-9)
	})

	t.Run("cancelled target rejected", func(t *testing.T) {
		o := newOrder(t)
		require.ErrorIs(t, o.ChangeStatus(order.Cancelled), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
		require.NoError(t, err)
		return o
	}

	t.Run("cancels a pending order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancels a ready order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))
		require.ErrorIs(t, o.Cancel(), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		require.Error(t, o.Cancel())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
	require.NoError(t, err)
	b, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{mustItem(t, "Espresso", 1, 3.50)}, "Carlos", "")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
