package order

import (
	"time"
)

// OrderStatus 订单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 主链1-6递增(便于理解流转方向),侧出口7/8
type OrderStatus int

const (
	OrderStatusPendingPayment OrderStatus = 1 // 待支付(初始状态)
	OrderStatusPaid           OrderStatus = 2 // 已支付
	OrderStatusProcessing     OrderStatus = 3 // 处理中
	OrderStatusPacked         OrderStatus = 4 // 已打包
	OrderStatusShipped        OrderStatus = 5 // 已发货
	OrderStatusDelivered      OrderStatus = 6 // 已送达(终态)
	OrderStatusFailed         OrderStatus = 7 // 已失败
	OrderStatusCancelled      OrderStatus = 8 // 已取消
)

// String 实现Stringer接口(方便日志输出)
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPendingPayment:
		return "待支付"
	case OrderStatusPaid:
		return "已支付"
	case OrderStatusProcessing:
		return "处理中"
	case OrderStatusPacked:
		return "已打包"
	case OrderStatusShipped:
		return "已发货"
	case OrderStatusDelivered:
		return "已送达"
	case OrderStatusFailed:
		return "已失败"
	case OrderStatusCancelled:
		return "已取消"
	default:
		return "未知状态"
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderLine是聚合内的子实体
// 2. 金额字段由服务端计算后冗余存储,客户端不可修改
// 3. 状态只能通过本实体的转换方法变更,沿固定路径单向推进
//    (Failed/Cancelled为侧出口),已支付订单永不删除
type Order struct {
	ID           uint
	OrderNo      string      // 订单号(业务主键,全局唯一)
	CustomerID   uint        // 买家账户ID
	OrderDate    time.Time   // 下单时间
	Status       OrderStatus // 订单状态
	Subtotal     int64       // 商品小计(分)
	Tax          int64       // 税额(分)
	Total        int64       // 订单总金额(分)
	Lines        []OrderLine // 订单明细(下单时的商品快照)
	ShipAddress  string      // 收货地址
	ContactName  string      // 收货人
	ContactPhone string      // 联系电话
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderLine 订单明细项
// 下单时刻商品的不可变快照:价格、名称与在售商品解耦,
// 商家后续改价/改名不影响历史订单
type OrderLine struct {
	ID        uint
	OrderID   uint   // 所属订单ID
	ProductID uint   // 商品ID
	Name      string // 下单时的商品名称
	Price     int64  // 下单时的单价(分)
	Quantity  int    // 购买数量
	LineTotal int64  // 行小计 = Price × Quantity
}

// NewOrder 创建新订单(工厂方法)
// 初始状态为PendingPayment,金额由调用方(购物车快照)计算后传入
func NewOrder(orderNo string, customerID uint, lines []OrderLine, subtotal, tax, total int64) *Order {
	now := time.Now()
	return &Order{
		OrderNo:    orderNo,
		CustomerID: customerID,
		OrderDate:  now,
		Status:     OrderStatusPendingPayment,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      total,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// transitions 合法的状态转换表
// 主链: PendingPayment→Paid→Processing→Packed→Shipped→Delivered
// 侧出口: Failed可从除Delivered外的任意状态进入;
//
//	Cancelled可从除Delivered/Shipped/Packed外的任意状态进入
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusProcessing, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusPacked, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusPacked:         {OrderStatusShipped, OrderStatusFailed},
	OrderStatusShipped:        {OrderStatusDelivered, OrderStatusFailed},
	OrderStatusDelivered:      {},
	OrderStatusFailed:         {OrderStatusFailed, OrderStatusCancelled},
	OrderStatusCancelled:      {OrderStatusFailed, OrderStatusCancelled},
}

// CanTransitionTo 检查是否可以转换到目标状态
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	allowed, exists := transitions[o.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// transitionTo 状态转换
// 前置条件不满足时返回错误且不修改状态
func (o *Order) transitionTo(target OrderStatus) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// SetPaid 标记为已支付
// 只允许从PendingPayment进入
func (o *Order) SetPaid() error {
	return o.transitionTo(OrderStatusPaid)
}

// AdvanceToProcessing 进入处理中
// 只允许从Paid进入
func (o *Order) AdvanceToProcessing() error {
	return o.transitionTo(OrderStatusProcessing)
}

// MarkPacked 标记为已打包
// 只允许从Processing进入
func (o *Order) MarkPacked() error {
	return o.transitionTo(OrderStatusPacked)
}

// MarkShipped 标记为已发货
// 只允许从Packed进入
func (o *Order) MarkShipped() error {
	return o.transitionTo(OrderStatusShipped)
}

// MarkDelivered 标记为已送达(终态)
// 只允许从Shipped进入
func (o *Order) MarkDelivered() error {
	return o.transitionTo(OrderStatusDelivered)
}

// MarkFailed 标记为已失败
// 除Delivered外的任意状态均可进入
func (o *Order) MarkFailed() error {
	return o.transitionTo(OrderStatusFailed)
}

// MarkCancelled 取消订单
// Delivered/Shipped/Packed状态不可取消(货已打包或在途)
func (o *Order) MarkCancelled() error {
	return o.transitionTo(OrderStatusCancelled)
}

// StockLookupFn 库存查询函数: productID → 可用数量
type StockLookupFn func(productID uint) (int, error)

// StockDeductFn 库存扣减函数: 对productID扣减quantity
// 当请求数量超过可用库存时应返回库存不足错误
type StockDeductFn func(productID uint, quantity int) error

// ValidateStock 校验每一行的数量不超过可用库存(支付前使用)
// 基于订单的明细快照而非实时商品数据
func (o *Order) ValidateStock(lookup StockLookupFn) error {
	for _, line := range o.Lines {
		available, err := lookup(line.ProductID)
		if err != nil {
			return err
		}
		if line.Quantity > available {
			return ErrInsufficientStock
		}
	}
	return nil
}

// DeductStock 按明细逐行扣减库存(支付时使用)
// 前置条件:订单状态必须为Paid
// 注意:逐行调用扣减回调,某一行失败时立即返回,之前已扣减的行不回滚;
// 调用方如需原子性,应在数据库事务内执行(见应用层PayOrderUseCase)
func (o *Order) DeductStock(deduct StockDeductFn) error {
	if o.Status != OrderStatusPaid {
		return ErrOrderNotPaid
	}
	for _, line := range o.Lines {
		if err := deduct(line.ProductID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// CalculateSubtotal 根据明细实时计算商品小计
// 用于校验冗余存储的金额字段
func (o *Order) CalculateSubtotal() int64 {
	var subtotal int64
	for _, line := range o.Lines {
		subtotal += line.Price * int64(line.Quantity)
	}
	return subtotal
}

// IsOwnedBy 检查订单是否属于指定账户
func (o *Order) IsOwnedBy(accountID uint) bool {
	return o.CustomerID == accountID
}
