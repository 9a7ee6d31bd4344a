package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

func TestInvoice_Generate(t *testing.T) {
	inv := New(12, 34, 4400)

	var got observer.Payload
	inv.Events().Attach(observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		assert.Equal(t, observer.EventInvoiceGenerated, eventType)
		got = payload
		return nil
	}))

	err := inv.Generate("alice@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-34-"))
	assert.WithinDuration(t, time.Now(), inv.IssueDate, time.Second)

	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, inv.InvoiceNumber, got["invoice_no"])
	assert.Equal(t, "4400", got["amount"])
	assert.Equal(t, "34", got["order_id"])
}

func TestInvoice_GenerateWithoutPersistedPayment(t *testing.T) {
	inv := New(0, 34, 4400)

	err := inv.Generate("alice@example.com")
	assert.ErrorIs(t, err, ErrPaymentNotPersisted)
	assert.Empty(t, inv.InvoiceNumber)
}

func TestInvoice_AmountCopiedFromPayment(t *testing.T) {
	inv := New(12, 34, 9900)
	require.NoError(t, inv.Generate("bob@example.com"))
	assert.Equal(t, int64(9900), inv.Amount)
}
