package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
)

// fakeOrderRepo 只实现报表用到的SalesBetween,其余方法空实现
type fakeOrderRepo struct {
	orders  int64
	revenue int64
}

func (r *fakeOrderRepo) Create(context.Context, *order.Order) error      { return nil }
func (r *fakeOrderRepo) FindByID(context.Context, uint) (*order.Order, error) {
	return nil, order.ErrOrderNotFound
}
func (r *fakeOrderRepo) FindByOrderNo(context.Context, string) (*order.Order, error) {
	return nil, order.ErrOrderNotFound
}
func (r *fakeOrderRepo) Update(context.Context, *order.Order) error { return nil }
func (r *fakeOrderRepo) ListByCustomerID(context.Context, uint, int, int) ([]*order.Order, int64, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) SalesBetween(context.Context, time.Time, time.Time) (int64, int64, error) {
	return r.orders, r.revenue, nil
}

func TestSalesReport(t *testing.T) {
	uc := NewSalesReportUseCase(&fakeOrderRepo{orders: 3, revenue: 13200})

	resp, err := uc.Execute(context.Background(), SalesReportRequest{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.Equal(t, int64(13200), resp.TotalRevenue)
	assert.Equal(t, "132.00", resp.RevenueYuan)

	generatedAt, err := time.ParseInLocation("2006-01-02 15:04:05", resp.GeneratedAt, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), generatedAt, time.Minute)
}

func TestSalesReport_InvalidRange(t *testing.T) {
	uc := NewSalesReportUseCase(&fakeOrderRepo{})

	_, err := uc.Execute(context.Background(), SalesReportRequest{
		From: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), SalesReportRequest{})
	assert.Error(t, err)
}
