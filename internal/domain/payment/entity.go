package payment

import (
	"strconv"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/invoice"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// PaymentStatus 支付状态
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 1 // 待支付
	PaymentStatusSuccess PaymentStatus = 2 // 支付成功
	PaymentStatusFailed  PaymentStatus = 3 // 支付失败
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "待支付"
	case PaymentStatusSuccess:
		return "支付成功"
	case PaymentStatusFailed:
		return "支付失败"
	default:
		return "未知状态"
	}
}

// Payment 支付实体(聚合根)
// 设计说明:
// 1. 每个订单至多一条支付记录(数据库order_id唯一索引+事务内查重,
//    双重保证,见应用层PayOrderUseCase)
// 2. 只能针对PendingPayment状态的订单构造
// 3. Pending→Success后不可逆
// 4. Amount恒等于订单总金额,不接受客户端传入
type Payment struct {
	ID          uint
	OrderID     uint
	Method      string // 支付方式(card/cash等)
	Amount      int64  // 支付金额(分),等于订单总金额
	Status      PaymentStatus
	PaymentDate time.Time

	ord    *order.Order     // 关联的订单聚合
	events *observer.Subject // 领域事件广播
}

// NewPayment 创建支付(工厂方法)
// 前置条件:订单状态必须为PendingPayment,否则返回状态冲突错误。
// 此时不要求订单已持久化,但生成发票前支付自身必须已持久化(有ID)。
func NewPayment(o *order.Order, method string) (*Payment, error) {
	if o == nil {
		return nil, ErrNoOrder
	}
	if o.Status != order.OrderStatusPendingPayment {
		return nil, ErrOrderNotPayable
	}
	return &Payment{
		OrderID: o.ID,
		Method:  method,
		Amount:  o.Total,
		Status:  PaymentStatusPending,
		ord:     o,
		events:  observer.NewSubject(),
	}, nil
}

// Reconstitute 从持久化数据重建支付实体(仓储层使用)
// 不做状态前置校验:历史数据以落库结果为准
func Reconstitute(id, orderID uint, method string, amount int64, status PaymentStatus, paymentDate time.Time, o *order.Order) *Payment {
	return &Payment{
		ID:          id,
		OrderID:     orderID,
		Method:      method,
		Amount:      amount,
		Status:      status,
		PaymentDate: paymentDate,
		ord:         o,
		events:      observer.NewSubject(),
	}
}

// Order 关联的订单
func (p *Payment) Order() *order.Order {
	return p.ord
}

// Events 事件广播者(供应用层注册监听器)
func (p *Payment) Events() *observer.Subject {
	return p.events
}

// Process 处理支付
// 执行顺序:
// 1. 支付状态置为Success,记录支付时间
// 2. 订单状态流转到Paid
// 3. 按订单明细逐行扣减库存(回调在某行库存不足时返回错误;
//    逐行扣减没有内建回滚,原子性由调用方的数据库事务提供)
// 4. 广播PaymentCompleted事件(email/order_id/amount)
func (p *Payment) Process(deduct order.StockDeductFn, customerEmail string) error {
	if p.Status == PaymentStatusSuccess {
		return ErrAlreadyPaid
	}

	p.Status = PaymentStatusSuccess
	p.PaymentDate = time.Now()

	if err := p.ord.SetPaid(); err != nil {
		return err
	}

	if err := p.ord.DeductStock(deduct); err != nil {
		return err
	}

	return p.events.Emit(observer.EventPaymentCompleted, observer.Payload{
		"email":    customerEmail,
		"order_id": strconv.FormatUint(uint64(p.ord.ID), 10),
		"amount":   strconv.FormatInt(p.Amount, 10),
	})
}

// GenerateInvoice 基于本支付生成发票(支付后的独立步骤)
// 前置条件:支付必须已持久化(ID非0),发票不能先于其支付存在
func (p *Payment) GenerateInvoice(customerEmail string) (*invoice.Invoice, error) {
	if p.ID == 0 {
		return nil, ErrPaymentNotPersisted
	}

	// 发票与支付共享同一组监听器
	inv := invoice.New(p.ID, p.ord.ID, p.Amount)
	inv.Events().Attach(forwarder{p.events})
	if err := inv.Generate(customerEmail); err != nil {
		return nil, err
	}
	return inv, nil
}

// forwarder 将发票事件转投到支付的监听器集合
type forwarder struct {
	subject *observer.Subject
}

func (f forwarder) Notify(eventType observer.EventType, payload observer.Payload) error {
	return f.subject.Emit(eventType, payload)
}
