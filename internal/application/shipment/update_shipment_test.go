package shipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

type fakeShipmentRepo struct {
	shipment *shipment.Shipment
	updated  *shipment.Shipment
}

func (r *fakeShipmentRepo) Create(context.Context, *shipment.Shipment) error { return nil }
func (r *fakeShipmentRepo) FindByID(_ context.Context, id uint) (*shipment.Shipment, error) {
	if r.shipment == nil || r.shipment.ID != id {
		return nil, shipment.ErrShipmentNotFound
	}
	return r.shipment, nil
}
func (r *fakeShipmentRepo) FindByOrderID(context.Context, uint) (*shipment.Shipment, error) {
	if r.shipment == nil {
		return nil, shipment.ErrShipmentNotFound
	}
	return r.shipment, nil
}
func (r *fakeShipmentRepo) Update(_ context.Context, s *shipment.Shipment) error {
	r.updated = s
	return nil
}

func testCustomerLookup(accountID uint, email string) CustomerLookup {
	return func(context.Context, uint) (uint, string, error) {
		return accountID, email, nil
	}
}

func TestUpdateShipment_DispatchedNotifiesCustomerEmail(t *testing.T) {
	shp := shipment.NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")
	shp.ID = 9

	var got observer.Payload
	listener := observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		assert.Equal(t, observer.EventShipmentDispatched, eventType)
		got = payload
		return nil
	})

	repo := &fakeShipmentRepo{shipment: shp}
	uc := NewUpdateShipmentUseCase(repo, testCustomerLookup(7, "alice@example.com"), []observer.Listener{listener})

	view, err := uc.Execute(context.Background(), UpdateShipmentRequest{
		ShipmentID: 9,
		Status:     shipment.ShipmentStatusDispatched,
		Carrier:    "AusPost",
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "34", got["order_id"])
	assert.Equal(t, shp.TrackingNumber, got["tracking_no"])
	assert.Equal(t, "AusPost", got["carrier"])

	require.NotNil(t, repo.updated)
	assert.Equal(t, shipment.ShipmentStatusDispatched, repo.updated.Status)
	assert.Equal(t, "AusPost", view.Carrier)
	assert.Equal(t, "1 Collins St, Melbourne", view.Address)
	assert.Equal(t, "Alice Chen", view.ContactName)
}

func TestGetShipment_OwnershipEnforced(t *testing.T) {
	shp := shipment.NewShipment(34, "1 Collins St, Melbourne", "Alice Chen")
	shp.ID = 9
	repo := &fakeShipmentRepo{shipment: shp}
	uc := NewGetShipmentUseCase(repo, testCustomerLookup(7, "alice@example.com"))

	_, err := uc.Execute(context.Background(), 34, 8, false)
	assert.Error(t, err)

	view, err := uc.Execute(context.Background(), 34, 7, false)
	require.NoError(t, err)
	assert.Equal(t, uint(34), view.OrderID)
}
