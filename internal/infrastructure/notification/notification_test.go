package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

func TestEmailLogNotifier_Notify(t *testing.T) {
	n := NewEmailLogNotifier()

	err := n.Notify(observer.EventPaymentCompleted, observer.Payload{
		"email":    "alice@example.com",
		"order_id": "34",
		"amount":   "4400",
	})
	assert.NoError(t, err)

	// 负载缺失字段也不报错,通知器自身不校验业务数据
	err = n.Notify(observer.EventShipmentDispatched, observer.Payload{})
	assert.NoError(t, err)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "payment_completed", toSnake("PaymentCompleted"))
	assert.Equal(t, "invoice_generated", toSnake("InvoiceGenerated"))
	assert.Equal(t, "shipment_dispatched", toSnake("ShipmentDispatched"))
}
