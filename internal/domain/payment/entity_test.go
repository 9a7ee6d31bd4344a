package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

func newPendingOrder() *order.Order {
	lines := []order.OrderLine{
		{ProductID: 7, Name: "手冲咖啡壶", Price: 1000, Quantity: 3, LineTotal: 3000},
		{ProductID: 9, Name: "滤纸", Price: 500, Quantity: 2, LineTotal: 1000},
	}
	o := order.NewOrder("ORD1700000000000001", 1, lines, 4000, 400, 4400)
	o.ID = 34
	return o
}

func TestNewPayment(t *testing.T) {
	o := newPendingOrder()

	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	assert.Equal(t, o.ID, p.OrderID)
	assert.Equal(t, o.Total, p.Amount)
	assert.Equal(t, PaymentStatusPending, p.Status)
}

func TestNewPayment_OrderNotPayable(t *testing.T) {
	o := newPendingOrder()
	require.NoError(t, o.SetPaid())

	_, err := NewPayment(o, "card")
	assert.ErrorIs(t, err, ErrOrderNotPayable)
}

func TestNewPayment_NilOrder(t *testing.T) {
	_, err := NewPayment(nil, "card")
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestPayment_Process(t *testing.T) {
	o := newPendingOrder()
	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	deducted := map[uint]int{}
	deduct := func(productID uint, quantity int) error {
		deducted[productID] += quantity
		return nil
	}

	var got observer.Payload
	p.Events().Attach(observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		assert.Equal(t, observer.EventPaymentCompleted, eventType)
		got = payload
		return nil
	}))

	require.NoError(t, p.Process(deduct, "alice@example.com"))

	assert.Equal(t, PaymentStatusSuccess, p.Status)
	assert.False(t, p.PaymentDate.IsZero())
	assert.Equal(t, order.OrderStatusPaid, o.Status)
	assert.Equal(t, map[uint]int{7: 3, 9: 2}, deducted)

	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "34", got["order_id"])
	assert.Equal(t, "4400", got["amount"])
}

func TestPayment_ProcessTwice(t *testing.T) {
	o := newPendingOrder()
	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	noop := func(productID uint, quantity int) error { return nil }
	require.NoError(t, p.Process(noop, "alice@example.com"))

	err = p.Process(noop, "alice@example.com")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

// 逐行扣减在中途失败时不回滚已扣减的行,原子性由应用层事务兜底
func TestPayment_ProcessDeductFailureKeepsEarlierDeductions(t *testing.T) {
	o := newPendingOrder()
	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	deducted := map[uint]int{}
	deduct := func(productID uint, quantity int) error {
		if productID == 9 {
			return order.ErrInsufficientStock
		}
		deducted[productID] += quantity
		return nil
	}

	notified := false
	p.Events().Attach(observer.ListenerFunc(func(observer.EventType, observer.Payload) error {
		notified = true
		return nil
	}))

	err = p.Process(deduct, "alice@example.com")
	assert.ErrorIs(t, err, order.ErrInsufficientStock)

	// 第一行已扣减,第二行失败,事件未广播
	assert.Equal(t, map[uint]int{7: 3}, deducted)
	assert.False(t, notified)
}

func TestPayment_GenerateInvoice(t *testing.T) {
	o := newPendingOrder()
	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	noop := func(productID uint, quantity int) error { return nil }
	require.NoError(t, p.Process(noop, "alice@example.com"))
	p.ID = 12

	var events []observer.EventType
	p.Events().Attach(observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		events = append(events, eventType)
		return nil
	}))

	inv, err := p.GenerateInvoice("alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, p.ID, inv.PaymentID)
	assert.Equal(t, o.ID, inv.OrderID)
	assert.Equal(t, p.Amount, inv.Amount)
	assert.NotEmpty(t, inv.InvoiceNumber)

	// 发票事件通过支付的监听器集合转投
	assert.Equal(t, []observer.EventType{observer.EventInvoiceGenerated}, events)
}

func TestPayment_GenerateInvoiceWithoutID(t *testing.T) {
	o := newPendingOrder()
	p, err := NewPayment(o, "card")
	require.NoError(t, err)

	_, err = p.GenerateInvoice("alice@example.com")
	assert.ErrorIs(t, err, ErrPaymentNotPersisted)
}
