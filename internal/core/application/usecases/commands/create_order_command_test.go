package commands_test

import (
	"testing"

	"tableservice/internal/core/application/usecases/commands"
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Success(t *testing.T) {
	items := []order.Item{mustOrderItem(t, "Cappuccino", 2, 5.00)}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 5, items, "Carlos Silva", "sem espuma")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, 5, cmd.TableNumber())
	require.Equal(t, "Carlos Silva", cmd.WaiterName())
	require.Equal(t, "sem espuma", cmd.Note())
	require.Len(t, cmd.Items(), 1)
}

func TestNewCreateOrderCommand_Errors(t *testing.T) {
	items := []order.Item{mustOrderItem(t, "Cappuccino", 1, 5.00)}

	tests := []struct {
		name   string
		make   func() (commands.CreateOrderCommand, error)
		target error
	}{
		{
			name: "empty order id",
			make: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(kernel.UUID{}, 5, items, "Carlos", "")
			},
		},
		{
			name: "zero table number",
			make: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(kernel.NewUUID(), 0, items, "Carlos", "")
			},
			target: commands.ErrTableNumberIsInvalid,
		},
		{
			name: "no items",
			make: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(kernel.NewUUID(), 5, nil, "Carlos", "")
			},
			target: commands.ErrItemsAreRequired,
		},
		{
			name: "empty waiter name",
			make: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(kernel.NewUUID(), 5, items, "", "")
			},
			target: commands.ErrWaiterNameIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.make()
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
