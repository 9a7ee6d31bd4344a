package shipment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

func TestNewShipment(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")

	assert.Equal(t, uint(34), s.OrderID)
	assert.Equal(t, ShipmentStatusPending, s.Status)
	assert.Equal(t, "1 Collins St, Melbourne", s.Address)
	assert.Equal(t, "Alice Chen", s.ContactName)
	assert.Empty(t, s.Carrier)
	assert.True(t, strings.HasPrefix(s.TrackingNumber, "SHP"))
	assert.True(t, s.DeliveryDate.IsZero())
}

func TestShipment_UpdateStatusDispatchedEmitsEvent(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")
	s.Carrier = "AusPost"

	var got observer.Payload
	s.Events().Attach(observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		assert.Equal(t, observer.EventShipmentDispatched, eventType)
		got = payload
		return nil
	}))

	require.NoError(t, s.UpdateStatus(ShipmentStatusDispatched, "alice@example.com", time.Time{}))

	assert.Equal(t, ShipmentStatusDispatched, s.Status)
	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "34", got["order_id"])
	assert.Equal(t, s.TrackingNumber, got["tracking_no"])
	assert.Equal(t, "AusPost", got["carrier"])
}

// 物流状态如实记录承运方回传,不做顺序校验
func TestShipment_UpdateStatusAcceptsAnyOrder(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")

	require.NoError(t, s.UpdateStatus(ShipmentStatusDelivered, "", time.Time{}))
	require.NoError(t, s.UpdateStatus(ShipmentStatusInTransit, "", time.Time{}))
	require.NoError(t, s.UpdateStatus(ShipmentStatusInTransit, "", time.Time{}))

	assert.Equal(t, ShipmentStatusInTransit, s.Status)
}

func TestShipment_UpdateStatusDeliveredStampsDate(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")

	require.NoError(t, s.UpdateStatus(ShipmentStatusDelivered, "", time.Time{}))
	assert.WithinDuration(t, time.Now(), s.DeliveryDate, time.Second)

	reported := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	require.NoError(t, s.UpdateStatus(ShipmentStatusDelivered, "", reported))
	assert.Equal(t, reported, s.DeliveryDate)
}

func TestShipment_UpdateStatusRejectsUnknownValue(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")

	err := s.UpdateStatus(ShipmentStatus(9), "", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidShipmentStatus)
	assert.Equal(t, ShipmentStatusPending, s.Status)
}

func TestShipment_NonDispatchStatusesDoNotEmit(t *testing.T) {
	s := NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")

	notified := 0
	s.Events().Attach(observer.ListenerFunc(func(observer.EventType, observer.Payload) error {
		notified++
		return nil
	}))

	require.NoError(t, s.UpdateStatus(ShipmentStatusInTransit, "", time.Time{}))
	require.NoError(t, s.UpdateStatus(ShipmentStatusDelivered, "", time.Time{}))
	assert.Zero(t, notified)
}
