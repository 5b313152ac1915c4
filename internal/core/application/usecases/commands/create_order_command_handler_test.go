package commands_test

import (
	"context"
	"testing"

	"speedfast/internal/core/application/usecases/commands"
	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(order.Food, order.High, "San Martin 520", 1, 0)
	require.NoError(t, err)

	buffer := new(MockOrderBuffer)
	buffer.On("Insert", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID() == 2001 &&
			o.Kind() == order.Food &&
			o.Priority() == order.High &&
			o.Status() == order.Pending &&
			o.Address() == "San Martin 520"
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(2000))

	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(2001), id)
	buffer.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AllocatesIncreasingIDs(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(order.Express, order.Medium, "Av Ohiggins 940", 3, 0)
	require.NoError(t, err)

	buffer := new(MockOrderBuffer)
	buffer.On("Insert", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(3)

	h := commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(0))

	for want := int64(1); want <= 3; want++ {
		id, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	buffer.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsertErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "cancelled while full", err: context.Canceled},
		{name: "buffer closed", err: ports.ErrBufferClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewCreateOrderCommand(order.Food, order.High, "Los Carrera 1890", 4, 0)
			require.NoError(t, err)

			buffer := new(MockOrderBuffer)
			buffer.On("Insert", ctx, mock.Anything).Return(tt.err).Once()

			h := commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(10))

			id, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.err)
			assert.Zero(t, id)
			buffer.AssertExpectations(t)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	buffer := new(MockOrderBuffer)
	h := commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(0))

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	buffer.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ParcelWithoutWeight(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(order.Parcel, order.Low, "Av Paicavi 1250", 6, 0)
	require.NoError(t, err)

	buffer := new(MockOrderBuffer)
	h := commands.NewCreateOrderCommandHandler(buffer, kernel.NewSequence(0))

	_, err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
	buffer.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
