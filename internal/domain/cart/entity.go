package cart

import (
	"math"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
)

// ProductSnapshot 加购时刻的商品快照(名称/价格)
// 由应用层从商品仓储读取后传入,购物车不直接依赖商品聚合
type ProductSnapshot struct {
	ProductID uint
	Name      string
	Price     int64 // 单价(分)
}

// CartItem 购物车明细项
// 归属于唯一一个ShoppingCart;Price/Name是加购或更新时刻的缓存值
type CartItem struct {
	ID        uint
	CartID    uint
	ProductID uint
	Name      string
	Price     int64 // 单价(分)
	Quantity  int
}

// LineTotal 行小计(分)
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// ShoppingCart 购物车实体(聚合根)
// 设计说明:
// 1. 每个账户至多一个购物车,首次加购时惰性创建
// 2. 每项数量在加购/更新时夹紧到当时的可用库存(clamping)
// 3. 金额字段不随明细变更自动刷新,每次变更后必须显式调用
//    RecalculateTotals(无隐式重算)
type ShoppingCart struct {
	ID         uint
	CustomerID uint
	Items      []CartItem
	Subtotal   int64 // 商品小计(分)
	Tax        int64 // 税额(分)
	Total      int64 // 合计(分)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewShoppingCart 创建空购物车
func NewShoppingCart(customerID uint) *ShoppingCart {
	now := time.Now()
	return &ShoppingCart{
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem 加购商品
// 业务规则:
// 1. 可用库存为0时直接失败
// 2. 请求数量夹紧到可用库存
// 3. 同一商品合并到已有行(已有数量+请求数量,合并后仍夹紧)
func (c *ShoppingCart) AddItem(snapshot ProductSnapshot, quantity, availableQty int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if availableQty <= 0 {
		return ErrProductOutOfStock
	}

	// 已有同商品的行:合并数量
	for i := range c.Items {
		if c.Items[i].ProductID == snapshot.ProductID {
			c.Items[i].Quantity = clamp(c.Items[i].Quantity+quantity, availableQty)
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		CartID:    c.ID,
		ProductID: snapshot.ProductID,
		Name:      snapshot.Name,
		Price:     snapshot.Price,
		Quantity:  clamp(quantity, availableQty),
	})
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateItem 更新购物车明细
// 业务规则:
// 1. 明细不存在时失败
// 2. 数量夹紧到可用库存
// 3. 从当前商品刷新缓存的价格/名称
func (c *ShoppingCart) UpdateItem(itemID uint, quantity int, snapshot ProductSnapshot, availableQty int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = clamp(quantity, availableQty)
			c.Items[i].Name = snapshot.Name
			c.Items[i].Price = snapshot.Price
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveItem 移除购物车明细
// 明细不存在时失败
func (c *ShoppingCart) RemoveItem(itemID uint) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

// RecalculateTotals 重新计算金额
// subtotal = Σ 行小计; tax = round(subtotal × taxRate); total = subtotal + tax
// 每次明细变更后必须显式调用,没有隐式重算
func (c *ShoppingCart) RecalculateTotals(taxRate float64) {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.LineTotal()
	}
	c.Subtotal = subtotal
	c.Tax = int64(math.Round(float64(subtotal) * taxRate))
	c.Total = c.Subtotal + c.Tax
	c.UpdatedAt = time.Now()
}

// CreateOrderFromSnapshot 从当前明细/金额创建订单快照
// 生成的订单为PendingPayment状态,与购物车后续变更完全解耦
func (c *ShoppingCart) CreateOrderFromSnapshot(customerID uint) (*order.Order, error) {
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]order.OrderLine, len(c.Items))
	for i, item := range c.Items {
		lines[i] = order.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
	}

	return order.NewOrder(order.GenerateOrderNo(), customerID, lines, c.Subtotal, c.Tax, c.Total), nil
}

// Clear 清空购物车(下单成功后调用)
// 移除全部明细并将金额归零
func (c *ShoppingCart) Clear() {
	c.Items = nil
	c.Subtotal = 0
	c.Tax = 0
	c.Total = 0
	c.UpdatedAt = time.Now()
}

// clamp 数量夹紧:取请求数量与可用库存的较小值
func clamp(quantity, availableQty int) int {
	if quantity > availableQty {
		return availableQty
	}
	return quantity
}
