package payment

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/internal/domain/payment"
	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
	"github.com/datpham0412/yourlocalshop/pkg/metrics"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// Transactor 事务执行器(由mysql.TxManager实现)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PayOrderUseCase 订单支付用例
// 这是核心业务流程,一次事务内完成:
// 1. 支付查重(order_id唯一索引兜底)
// 2. 支付处理:订单流转到Paid,逐行原子扣减库存
// 3. 支付落库、订单落库
// 4. 创建物流单(Pending)
// 任一步失败整体回滚,库存不会出现部分扣减的落库状态。
// 支付完成事件经监听器同步投递,监听器失败同样回滚整个事务。
type PayOrderUseCase struct {
	orderRepo    order.Repository
	paymentRepo  payment.Repository
	stockRepo    inventory.Repository
	shipmentRepo shipment.Repository
	accountRepo  account.Repository
	listeners    []observer.Listener
	tx           Transactor
}

// NewPayOrderUseCase 创建支付用例
// listeners在支付实体广播PaymentCompleted时依次收到事件
func NewPayOrderUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	stockRepo inventory.Repository,
	shipmentRepo shipment.Repository,
	accountRepo account.Repository,
	listeners []observer.Listener,
	tx Transactor,
) *PayOrderUseCase {
	return &PayOrderUseCase{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		stockRepo:    stockRepo,
		shipmentRepo: shipmentRepo,
		accountRepo:  accountRepo,
		listeners:    listeners,
		tx:           tx,
	}
}

// PayOrderRequest 支付请求
type PayOrderRequest struct {
	OrderID    uint
	CustomerID uint
	Method     string // card | cash
}

// PayOrderResponse 支付响应
type PayOrderResponse struct {
	PaymentID   uint   `json:"payment_id"`
	OrderID     uint   `json:"order_id"`
	OrderNo     string `json:"order_no"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	PaymentDate string `json:"payment_date"`
	TrackingNo  string `json:"tracking_no"`
}

// Execute 执行支付
func (uc *PayOrderUseCase) Execute(ctx context.Context, req PayOrderRequest) (*PayOrderResponse, error) {
	var (
		p   *payment.Payment
		shp *shipment.Shipment
	)

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, req.OrderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(req.CustomerID) {
			return apperrors.ErrOrderNotFound
		}

		// 事务内查重;并发穿透由order_id唯一索引兜底
		if _, err := uc.paymentRepo.FindByOrderID(txCtx, req.OrderID); err == nil {
			return payment.ErrDuplicatePayment
		} else if err != payment.ErrPaymentNotFound {
			return err
		}

		acc, err := uc.accountRepo.FindByID(txCtx, req.CustomerID)
		if err != nil {
			return err
		}

		p, err = payment.NewPayment(o, req.Method)
		if err != nil {
			return err
		}
		for _, l := range uc.listeners {
			p.Events().Attach(l)
		}

		// 逐行原子扣减(条件UPDATE);失败时事务回滚
		deduct := func(productID uint, quantity int) error {
			return uc.stockRepo.DeductAtomic(txCtx, productID, quantity)
		}
		if err := p.Process(deduct, acc.Email); err != nil {
			return err
		}

		if err := uc.paymentRepo.Create(txCtx, p); err != nil {
			return err
		}
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		// 支付成功后按订单收货快照建立物流单,等待仓库发货
		shp = shipment.NewShipment(o.ID, o.ShipAddress, o.ContactName)
		return uc.shipmentRepo.Create(txCtx, shp)
	})
	if err != nil {
		metrics.PaymentsProcessedTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.PaymentsProcessedTotal.WithLabelValues("success").Inc()

	return &PayOrderResponse{
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		OrderNo:     p.Order().OrderNo,
		Amount:      p.Amount,
		Status:      p.Status.String(),
		PaymentDate: p.PaymentDate.Format("2006-01-02 15:04:05"),
		TrackingNo:  shp.TrackingNumber,
	}, nil
}
