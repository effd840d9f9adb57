package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, price, weight float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), price, weight)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	purchaserID := kernel.NewUUID()

	t.Run("should create pending order with derived totals", func(t *testing.T) {
		items := []order.Item{mustItem(t, 90, 500), mustItem(t, 15, 330)}

		o, err := order.NewOrder(validID, purchaserID, items, "1 Shop St", "2 Home Ave")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.PurchaserID().IsEqual(purchaserID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Courier())
		assert.InDelta(t, 105.0, o.Price(), 0.001)
		assert.InDelta(t, 830.0, o.TotalWeight(), 0.001)
		assert.Equal(t, "1 Shop St", o.PickupAddress())
		assert.Equal(t, "2 Home Ave", o.DeliveryAddress())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("empty selection produces a degenerate order", func(t *testing.T) {
		o, err := order.NewOrder(validID, purchaserID, nil, "", "")

		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.InDelta(t, 0.0, o.Price(), 0.001)
		assert.InDelta(t, 0.0, o.TotalWeight(), 0.001)
	})

	t.Run("should fail without purchaser", func(t *testing.T) {
		var noPurchaser kernel.UUID

		o, err := order.NewOrder(validID, noPurchaser, nil, "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "purchaserId")
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		item := mustItem(t, 10, 100)

		o, err := order.NewOrder(validID, purchaserID, []order.Item{item, item}, "", "")

		require.NoError(t, err)
		assert.Len(t, o.Items(), 2)
		assert.InDelta(t, 20.0, o.Price(), 0.001)
		assert.InDelta(t, 200.0, o.TotalWeight(), 0.001)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		return o
	}

	t.Run("pending to on-the-way to delivered", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.UpdateStatus(order.StatusOnTheWay))
		require.NoError(t, o.UpdateStatus(order.StatusDelivered))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("pending cannot jump to delivered", func(t *testing.T) {
		o := newOrder(t)

		err := o.UpdateStatus(order.StatusDelivered)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition from pending to delivered")
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("created may move to preparing or pending", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil,
			order.StatusCreated, time.Now().UTC(), "", "")
		require.NoError(t, err)

		require.NoError(t, o.UpdateStatus(order.StatusPreparing))
		require.NoError(t, o.UpdateStatus(order.StatusOnTheWay))
	})

	t.Run("terminal states accept no transitions", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.UpdateStatus(order.StatusOnTheWay))
		require.NoError(t, o.UpdateStatus(order.StatusDelivered))

		require.Error(t, o.UpdateStatus(order.StatusPending))
		require.Error(t, o.Cancel())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.UpdateStatus(order.StatusUnknown))
		require.Error(t, o.UpdateStatus(order.Status(42)))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellation is reachable from any non-terminal state", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusCreated,
			order.StatusPreparing,
			order.StatusPending,
			order.StatusOnTheWay,
		} {
			o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil,
				status, time.Now().UTC(), "", "")
			require.NoError(t, err)

			require.NoError(t, o.Cancel(), "from %s", status)
			assert.Equal(t, order.StatusCancelled, o.Status())
		}
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		require.Error(t, o.Cancel())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("first claim wins", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Claim(courierID))

		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("second claim by a different courier conflicts", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, o.Claim(first))

		err = o.Claim(second)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderAlreadyClaimed)
		assert.True(t, o.Courier().IsEqual(first))
	})

	t.Run("cannot claim a cancelled order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		require.Error(t, o.Claim(kernel.NewUUID()))
	})

	t.Run("invalid courier id is rejected", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		var invalid kernel.UUID

		require.Error(t, o.Claim(invalid))
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_Membership(t *testing.T) {
	t.Run("totals track additions and removals", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 90, 500)}, "", "")
		require.NoError(t, err)
		cheap := mustItem(t, 15, 330)

		require.NoError(t, o.AddProducts([]order.Item{cheap}))
		assert.InDelta(t, 105.0, o.Price(), 0.001)
		assert.InDelta(t, 830.0, o.TotalWeight(), 0.001)

		require.NoError(t, o.RemoveProduct(cheap.ProductID()))
		assert.InDelta(t, 90.0, o.Price(), 0.001)
		assert.InDelta(t, 500.0, o.TotalWeight(), 0.001)
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 90, 500)}, "", "")
		require.NoError(t, err)

		require.NoError(t, o.RemoveProduct(kernel.NewUUID()))

		assert.Len(t, o.Items(), 1)
		assert.InDelta(t, 90.0, o.Price(), 0.001)
	})

	t.Run("removing a duplicated product drops one occurrence", func(t *testing.T) {
		item := mustItem(t, 10, 100)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item, item}, "", "")
		require.NoError(t, err)

		require.NoError(t, o.RemoveProduct(item.ProductID()))

		assert.Len(t, o.Items(), 1)
		assert.InDelta(t, 10.0, o.Price(), 0.001)
	})

	t.Run("membership freezes after delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 90, 500)}, "", "")
		require.NoError(t, err)
		require.NoError(t, o.UpdateStatus(order.StatusOnTheWay))
		require.NoError(t, o.UpdateStatus(order.StatusDelivered))

		require.ErrorIs(t, o.AddProducts([]order.Item{mustItem(t, 15, 330)}), order.ErrOrderIsFinal)
		require.ErrorIs(t, o.RemoveProduct(o.Items()[0].ProductID()), order.ErrOrderIsFinal)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("membership freezes after cancellation", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.AddProducts([]order.Item{mustItem(t, 15, 330)}), order.ErrOrderIsFinal)
	})
}

func TestOrder_Addresses(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "1 Shop St", "2 Home Ave")
	require.NoError(t, err)

	o.ChangePickupAddress("3 Depot Rd")
	o.ChangeDeliveryAddress("4 Office Blvd")

	assert.Equal(t, "3 Depot Rd", o.PickupAddress())
	assert.Equal(t, "4 Office Blvd", o.DeliveryAddress())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("recomputes totals and keeps persisted state", func(t *testing.T) {
		courierID := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		items := []order.Item{mustItem(t, 90, 500), mustItem(t, 15, 330)}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &courierID, items,
			order.StatusOnTheWay, createdAt, "1 Shop St", "2 Home Ave")

		require.NoError(t, err)
		assert.Equal(t, order.StatusOnTheWay, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.InDelta(t, 105.0, o.Price(), 0.001)
		assert.InDelta(t, 830.0, o.TotalWeight(), 0.001)
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil,
			order.StatusUnknown, time.Now().UTC(), "", "")

		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("String returns wire names", func(t *testing.T) {
		assert.Equal(t, "created", order.StatusCreated.String())
		assert.Equal(t, "preparing", order.StatusPreparing.String())
		assert.Equal(t, "pending", order.StatusPending.String())
		assert.Equal(t, "on-the-way", order.StatusOnTheWay.String())
		assert.Equal(t, "delivered", order.StatusDelivered.String())
		assert.Equal(t, "cancelled", order.StatusCancelled.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusPending.IsTerminal())
		assert.False(t, order.StatusOnTheWay.IsTerminal())
	})

	t.Run("StatusFromString round trips", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusCreated,
			order.StatusPreparing,
			order.StatusPending,
			order.StatusOnTheWay,
			order.StatusDelivered,
			order.StatusCancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("StatusFromString rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("lost")
		require.Error(t, err)
	})
}
