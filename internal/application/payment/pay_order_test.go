package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/internal/domain/payment"
	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	"github.com/datpham0412/yourlocalshop/pkg/metrics"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// fakeTx 直接执行fn,不提供真实事务
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderRepo struct {
	order *order.Order
}

func (r *fakeOrderRepo) Create(context.Context, *order.Order) error { return nil }
func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	if r.order == nil || r.order.ID != id {
		return nil, order.ErrOrderNotFound
	}
	return r.order, nil
}
func (r *fakeOrderRepo) FindByOrderNo(context.Context, string) (*order.Order, error) {
	return nil, order.ErrOrderNotFound
}
func (r *fakeOrderRepo) Update(context.Context, *order.Order) error { return nil }
func (r *fakeOrderRepo) ListByCustomerID(context.Context, uint, int, int) ([]*order.Order, int64, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) SalesBetween(context.Context, time.Time, time.Time) (int64, int64, error) {
	return 0, 0, nil
}

type fakePaymentRepo struct {
	existing *payment.Payment
	created  *payment.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	p.ID = 77
	r.created = p
	return nil
}
func (r *fakePaymentRepo) FindByID(context.Context, uint) (*payment.Payment, error) {
	return nil, payment.ErrPaymentNotFound
}
func (r *fakePaymentRepo) FindByOrderID(context.Context, uint) (*payment.Payment, error) {
	if r.existing == nil {
		return nil, payment.ErrPaymentNotFound
	}
	return r.existing, nil
}
func (r *fakePaymentRepo) Update(context.Context, *payment.Payment) error { return nil }

type fakeStockRepo struct {
	deducted map[uint]int
}

func (r *fakeStockRepo) Create(context.Context, *inventory.Stock) error { return nil }
func (r *fakeStockRepo) FindByProductID(context.Context, uint) (*inventory.Stock, error) {
	return nil, inventory.ErrStockNotFound
}
func (r *fakeStockRepo) Update(context.Context, *inventory.Stock) error { return nil }
func (r *fakeStockRepo) DeductAtomic(_ context.Context, productID uint, quantity int) error {
	if r.deducted == nil {
		r.deducted = map[uint]int{}
	}
	r.deducted[productID] += quantity
	return nil
}
func (r *fakeStockRepo) ListByProductIDs(context.Context, []uint) (map[uint]*inventory.Stock, error) {
	return nil, nil
}

type fakeShipmentRepo struct {
	created *shipment.Shipment
}

func (r *fakeShipmentRepo) Create(_ context.Context, s *shipment.Shipment) error {
	s.ID = 9
	r.created = s
	return nil
}
func (r *fakeShipmentRepo) FindByID(context.Context, uint) (*shipment.Shipment, error) {
	if r.created == nil {
		return nil, shipment.ErrShipmentNotFound
	}
	return r.created, nil
}
func (r *fakeShipmentRepo) FindByOrderID(context.Context, uint) (*shipment.Shipment, error) {
	if r.created == nil {
		return nil, shipment.ErrShipmentNotFound
	}
	return r.created, nil
}
func (r *fakeShipmentRepo) Update(context.Context, *shipment.Shipment) error { return nil }

type fakeAccountRepo struct {
	acc *account.Account
}

func (r *fakeAccountRepo) Create(context.Context, *account.Account) error { return nil }
func (r *fakeAccountRepo) FindByID(context.Context, uint) (*account.Account, error) {
	return r.acc, nil
}
func (r *fakeAccountRepo) FindByEmail(context.Context, string) (*account.Account, error) {
	return r.acc, nil
}
func (r *fakeAccountRepo) Update(context.Context, *account.Account) error { return nil }

func pendingOrder() *order.Order {
	o := order.NewOrder("ORD20260830001", 7, []order.OrderLine{
		{ProductID: 3, Name: "手冲咖啡豆", Price: 8900, Quantity: 2, LineTotal: 17800},
	}, 17800, 1780, 19580)
	o.ID = 34
	o.ShipAddress = "1 Collins St, Melbourne"
	o.ContactName = "Alice Chen"
	o.ContactPhone = "0400000000"
	return o
}

func TestPayOrder_CreatesShipmentFromOrderSnapshot(t *testing.T) {
	metrics.InitMetrics()

	shipRepo := &fakeShipmentRepo{}
	stockRepo := &fakeStockRepo{}
	var completed observer.Payload
	listener := observer.ListenerFunc(func(eventType observer.EventType, payload observer.Payload) error {
		if eventType == observer.EventPaymentCompleted {
			completed = payload
		}
		return nil
	})

	uc := NewPayOrderUseCase(
		&fakeOrderRepo{order: pendingOrder()},
		&fakePaymentRepo{},
		stockRepo,
		shipRepo,
		&fakeAccountRepo{acc: &account.Account{ID: 7, Email: "alice@example.com"}},
		[]observer.Listener{listener},
		fakeTx{},
	)

	resp, err := uc.Execute(context.Background(), PayOrderRequest{OrderID: 34, CustomerID: 7, Method: "card"})
	require.NoError(t, err)

	// 物流单继承订单的收货快照
	require.NotNil(t, shipRepo.created)
	assert.Equal(t, uint(34), shipRepo.created.OrderID)
	assert.Equal(t, "1 Collins St, Melbourne", shipRepo.created.Address)
	assert.Equal(t, "Alice Chen", shipRepo.created.ContactName)
	assert.Equal(t, shipment.ShipmentStatusPending, shipRepo.created.Status)
	assert.Equal(t, shipRepo.created.TrackingNumber, resp.TrackingNo)

	assert.Equal(t, int64(19580), resp.Amount)
	assert.Equal(t, map[uint]int{3: 2}, stockRepo.deducted)

	require.NotNil(t, completed)
	assert.Equal(t, "alice@example.com", completed["email"])
	assert.Equal(t, "34", completed["order_id"])
	assert.Equal(t, "19580", completed["amount"])
}

func TestPayOrder_DuplicatePaymentRejected(t *testing.T) {
	metrics.InitMetrics()

	o := pendingOrder()
	existing := payment.Reconstitute(77, o.ID, "card", o.Total, payment.PaymentStatusSuccess, time.Now(), o)

	uc := NewPayOrderUseCase(
		&fakeOrderRepo{order: o},
		&fakePaymentRepo{existing: existing},
		&fakeStockRepo{},
		&fakeShipmentRepo{},
		&fakeAccountRepo{acc: &account.Account{ID: 7, Email: "alice@example.com"}},
		nil,
		fakeTx{},
	)

	_, err := uc.Execute(context.Background(), PayOrderRequest{OrderID: 34, CustomerID: 7, Method: "card"})
	assert.ErrorIs(t, err, payment.ErrDuplicatePayment)
}
