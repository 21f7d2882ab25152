package order_test

import (
	"fmt"
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(7, "221B Baker Street", "courier", checkoutTime)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid inputs", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, int64(7), o.UserID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "221B Baker Street", o.ShippingAddress())
		assert.Equal(t, "courier", o.DeliveryMethod())
		assert.True(t, o.TotalAmount().IsZero())
		assert.Empty(t, o.TrackingNumber())
		assert.Equal(t, order.InitialLocation, o.CurrentLocation())
	})

	t.Run("should estimate delivery five days out", func(t *testing.T) {
		o := newTestOrder(t)

		require.NotNil(t, o.EstimatedDelivery())
		assert.Equal(t, checkoutTime.AddDate(0, 0, 5), *o.EstimatedDelivery())
	})

	t.Run("should record the initial trail entry", func(t *testing.T) {
		o := newTestOrder(t)

		require.Len(t, o.DeliveryUpdates(), 1)
		du := o.DeliveryUpdates()[0]
		assert.Equal(t, "pending", du.Status())
		assert.Equal(t, order.InitialLocation, du.Location())
		assert.Equal(t, "Order received and pending processing", du.Description())
		assert.Equal(t, checkoutTime, du.Timestamp())
	})

	t.Run("should require owner, address and method", func(t *testing.T) {
		_, err := order.NewOrder(0, "addr", "courier", checkoutTime)
		require.Error(t, err)

		_, err = order.NewOrder(7, "", "courier", checkoutTime)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(7, "addr", "", checkoutTime)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append priced lines", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AddItem(1, 2, kernel.MustMoneyFromString("19.99")))
		require.NoError(t, o.AddItem(2, 1, kernel.MustMoneyFromString("5.00")))

		require.Len(t, o.Items(), 2)
		assert.Equal(t, "39.98", o.Items()[0].Subtotal().String())
		assert.Equal(t, "5.00", o.Items()[1].Subtotal().String())
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AddItem(0, 1, kernel.Zero()))
		require.Error(t, o.AddItem(1, 0, kernel.Zero()))
	})

	t.Run("should reject additions after leaving pending", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminSetStatus(order.Confirmed, "", "", checkoutTime))

		err := o.AddItem(1, 1, kernel.Zero())
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_AssignID(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.AssignID(42))
	assert.Equal(t, int64(42), o.ID())

	require.Error(t, o.AssignID(43))
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newTestOrder(t)
		cancelTime := checkoutTime.Add(time.Hour)

		require.NoError(t, o.Cancel(cancelTime))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, cancelTime, o.UpdatedAt())

		require.Len(t, o.DeliveryUpdates(), 2)
		du := o.DeliveryUpdates()[1]
		assert.Equal(t, "cancelled", du.Status())
		assert.Equal(t, order.InitialLocation, du.Location())
		assert.Equal(t, "Order cancelled by customer", du.Description())
	})

	t.Run("should cancel a confirmed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminSetStatus(order.Confirmed, "", "", checkoutTime))

		require.NoError(t, o.Cancel(checkoutTime.Add(time.Hour)))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject cancellation once shipped", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminSetStatus(order.Shipped, "", "", checkoutTime))

		err := o.Cancel(checkoutTime.Add(time.Hour))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should reject cancellation of terminal orders", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel(checkoutTime))

		require.Error(t, o.Cancel(checkoutTime.Add(time.Hour)))
	})
}

func TestOrder_AdminSetStatus(t *testing.T) {
	t.Run("should move into any valid status", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AdminSetStatus(order.Delivered, "Doorstep", "Left with neighbour", checkoutTime))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Doorstep", o.CurrentLocation())

		du := o.DeliveryUpdates()[len(o.DeliveryUpdates())-1]
		assert.Equal(t, "delivered", du.Status())
		assert.Equal(t, "Left with neighbour", du.Description())
	})

	t.Run("should apply location and description defaults", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AdminSetStatus(order.Confirmed, "", "", checkoutTime))

		du := o.DeliveryUpdates()[len(o.DeliveryUpdates())-1]
		assert.Equal(t, order.DefaultWarehouseLocation, du.Location())
		assert.Equal(t, "Order status updated to confirmed", du.Description())
	})

	t.Run("should generate tracking number on first shipped", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignID(42))

		shipTime := time.Date(2025, 3, 12, 9, 5, 0, 0, time.UTC)
		require.NoError(t, o.AdminSetStatus(order.Shipped, "", "", shipTime))

		want := fmt.Sprintf("TRK42%s", shipTime.Format("200601021504"))
		assert.Equal(t, want, o.TrackingNumber())
	})

	t.Run("should keep the existing tracking number on later transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignID(42))
		require.NoError(t, o.AdminSetStatus(order.Shipped, "", "", checkoutTime))

		tracking := o.TrackingNumber()
		require.NotEmpty(t, tracking)

		require.NoError(t, o.AdminSetStatus(order.Processing, "", "", checkoutTime))
		require.NoError(t, o.AdminSetStatus(order.Shipped, "", "", checkoutTime.Add(time.Hour)))

		assert.Equal(t, tracking, o.TrackingNumber())
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AdminSetStatus(order.Unknown, "", "", checkoutTime))
		require.Error(t, o.AdminSetStatus(order.Status(99), "", "", checkoutTime))
	})
}

func TestOrder_RecordTransitEvent(t *testing.T) {
	t.Run("should append checkpoints for shipped orders", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdminSetStatus(order.Shipped, "", "", checkoutTime))

		at := checkoutTime.Add(6 * time.Hour)
		require.NoError(t, o.RecordTransitEvent("Regional Hub", "Departed sorting facility", at))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "Regional Hub", o.CurrentLocation())

		du := o.DeliveryUpdates()[len(o.DeliveryUpdates())-1]
		assert.Equal(t, "in transit", du.Status())
		assert.Equal(t, at, du.Timestamp())
	})

	t.Run("should reject checkpoints outside shipped", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.RecordTransitEvent("Regional Hub", "", checkoutTime)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a full aggregate", func(t *testing.T) {
		item, err := order.RestoreItem(1, 10, 2, kernel.MustMoneyFromString("19.99"))
		require.NoError(t, err)
		du, err := order.RestoreDeliveryUpdate(1, "pending", order.InitialLocation, "x", checkoutTime)
		require.NoError(t, err)

		estimated := checkoutTime.AddDate(0, 0, 5)
		o, err := order.RestoreOrder(
			42, 7, order.Shipped,
			checkoutTime, checkoutTime,
			"221B Baker Street", "courier",
			kernel.MustMoneyFromString("49.98"),
			"TRK42202503101430", "Regional Hub",
			&estimated,
			[]*order.Item{item},
			[]*order.DeliveryUpdate{du},
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "TRK42202503101430", o.TrackingNumber())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(1), o.Items()[0].ID())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			42, 7, order.Unknown,
			checkoutTime, checkoutTime,
			"addr", "courier",
			kernel.Zero(), "", "", nil, nil, nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_Item(t *testing.T) {
	item, err := order.RestoreItem(5, 10, 1, kernel.Zero())
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		1, 7, order.Pending,
		checkoutTime, checkoutTime,
		"addr", "courier",
		kernel.Zero(), "", order.InitialLocation, nil,
		[]*order.Item{item}, nil,
	)
	require.NoError(t, err)

	got, err := o.Item(5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ProductID())

	_, err = o.Item(6)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
