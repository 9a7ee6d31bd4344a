package order

import (
	"context"
	"fmt"

	"github.com/datpham0412/yourlocalshop/internal/domain/cart"
	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/pkg/metrics"
)

// CheckoutUseCase 购物车结算下单用例
// 设计说明:
// 1. 下单基于购物车快照:订单明细冻结下单时的名称/价格,
//    与购物车后续变更解耦
// 2. 下单前按快照校验库存(不扣减,实际扣减发生在支付时)
// 3. 订单创建与购物车清空在同一事务内完成
type CheckoutUseCase struct {
	cartRepo  cart.Repository
	orderRepo order.Repository
	stockRepo inventory.Repository
	tx        Transactor
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	cartRepo cart.Repository,
	orderRepo order.Repository,
	stockRepo inventory.Repository,
	tx Transactor,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		tx:        tx,
	}
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CustomerID   uint
	ShipAddress  string
	ContactName  string
	ContactPhone string
}

// CheckoutResponse 结算响应
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Subtotal  int64  `json:"subtotal"`
	Tax       int64  `json:"tax"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行结算下单
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	var result *order.Order
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		c, err := uc.cartRepo.FindByCustomerID(txCtx, req.CustomerID)
		if err != nil {
			return err
		}

		newOrder, err := c.CreateOrderFromSnapshot(req.CustomerID)
		if err != nil {
			return err
		}
		newOrder.ShipAddress = req.ShipAddress
		newOrder.ContactName = req.ContactName
		newOrder.ContactPhone = req.ContactPhone

		// 下单前校验库存充足(只校验,支付时才扣减)
		if err := newOrder.ValidateStock(func(productID uint) (int, error) {
			stock, err := uc.stockRepo.FindByProductID(txCtx, productID)
			if err != nil {
				return 0, err
			}
			return stock.Quantity, nil
		}); err != nil {
			return err
		}

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 下单成功即清空购物车
		c.Clear()
		if err := uc.cartRepo.Save(txCtx, c); err != nil {
			return err
		}

		result = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()

	return &CheckoutResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		Subtotal:  result.Subtotal,
		Tax:       result.Tax,
		Total:     result.Total,
		TotalYuan: formatPrice(result.Total),
		Status:    result.Status.String(),
		CreatedAt: result.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}
