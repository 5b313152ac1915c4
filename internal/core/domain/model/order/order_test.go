package order_test

import (
	"testing"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(1004, order.Parcel, order.Low, "Av Paicavi 1250", 6, 3)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(1004), o.ID())
		assert.Equal(t, order.Parcel, o.Kind())
		assert.Equal(t, order.Low, o.Priority())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "Av Paicavi 1250", o.Address())
		assert.InDelta(t, 6.0, o.DistanceKm(), 1e-9)
		assert.InDelta(t, 3.0, o.WeightKg(), 1e-9)
		assert.Empty(t, o.Courier())
	})

	t.Run("priority is independent from kind", func(t *testing.T) {
		o, err := order.NewOrder(1, order.Parcel, order.High, "Los Carrera 1890", 4, 1)

		require.NoError(t, err)
		assert.Equal(t, order.High, o.Priority())
	})

	t.Run("should fail with non positive id", func(t *testing.T) {
		o, err := order.NewOrder(0, order.Food, order.High, "San Martin 520", 1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with blank address", func(t *testing.T) {
		o, err := order.NewOrder(1, order.Food, order.High, "   ", 1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with non positive distance", func(t *testing.T) {
		_, err := order.NewOrder(1, order.Express, order.Medium, "Av Ohiggins 940", 0, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "distance is invalid")
	})

	t.Run("parcels require a weight", func(t *testing.T) {
		_, err := order.NewOrder(1, order.Parcel, order.Low, "Av Paicavi 1250", 6, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight is invalid")
	})

	t.Run("should reject unknown kind and priority", func(t *testing.T) {
		_, err := order.NewOrder(1, order.Kind(9), order.Priority(0), "x", 1, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "kind")
		assert.Contains(t, err.Error(), "priority is invalid")
	})

	t.Run("should report every violation at once", func(t *testing.T) {
		_, err := order.NewOrder(-1, order.Parcel, order.Low, "", -2, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id is invalid")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "distance is invalid")
		assert.Contains(t, err.Error(), "weight is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newFood := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1001, order.Food, order.High, "Av. Las Rosas 1470", 2, 0)
		require.NoError(t, err)
		return o
	}

	t.Run("dispatch then deliver", func(t *testing.T) {
		o := newFood(t)

		require.NoError(t, o.Dispatch("Cecilia Matamala"))
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, "Cecilia Matamala", o.Courier())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("dispatch requires a courier name", func(t *testing.T) {
		o := newFood(t)

		require.ErrorIs(t, o.Dispatch(" "), order.ErrCourierNameIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot dispatch twice", func(t *testing.T) {
		o := newFood(t)
		require.NoError(t, o.Dispatch("Rafael Bravo"))

		err := o.Dispatch("Rogelio Hernandez")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Rafael Bravo", o.Courier())
	})

	t.Run("cannot deliver a pending order", func(t *testing.T) {
		o := newFood(t)

		require.Error(t, o.Deliver())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancel in transit keeps the courier", func(t *testing.T) {
		o := newFood(t)
		require.NoError(t, o.Dispatch("Rafael Bravo"))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "Rafael Bravo", o.Courier())
	})

	t.Run("delivered orders cannot be cancelled", func(t *testing.T) {
		o := newFood(t)
		require.NoError(t, o.Dispatch("Rafael Bravo"))
		require.NoError(t, o.Deliver())

		require.Error(t, o.Cancel())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Formatting(t *testing.T) {
	o, err := order.NewOrder(1002, order.Express, order.Medium, "Av. Manuel Rodriguez 780", 5, 0)
	require.NoError(t, err)
	require.NoError(t, o.Dispatch("Rogelio Hernandez"))

	assert.Equal(t, "Express #1002 - Courier: Rogelio Hernandez", o.ShortSummary())
	assert.Contains(t, o.String(), "id=1002")
	assert.Contains(t, o.String(), "priority=MEDIUM")
	assert.True(t, o.IsEqual(o))
	assert.False(t, o.IsEqual(nil))
}
