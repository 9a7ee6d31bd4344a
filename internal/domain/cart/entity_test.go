package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
)

var kettle = ProductSnapshot{ProductID: 7, Name: "手冲咖啡壶", Price: 1000}

// TestCart_TotalsScenario 单品价格10.00元×3件,税率10% → 小计30.00 税3.00 合计33.00
func TestCart_TotalsScenario(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 3, 5))
	c.RecalculateTotals(0.10)

	assert.Equal(t, int64(3000), c.Subtotal)
	assert.Equal(t, int64(300), c.Tax)
	assert.Equal(t, int64(3300), c.Total)
}

// TestCart_AddItemClamped 请求10件但可用4件 → 夹紧到4件
func TestCart_AddItemClamped(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 10, 4))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

// TestCart_AddItemMergeStillClamped 合并已有行后仍不超过可用库存
func TestCart_AddItemMergeStillClamped(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 3, 5))
	require.NoError(t, c.AddItem(kettle, 4, 5))

	require.Len(t, c.Items, 1, "同一商品应合并到已有行")
	assert.Equal(t, 5, c.Items[0].Quantity, "3+4=7超过可用5,夹紧到5")
}

// TestCart_AddItemOutOfStock 可用库存为0时加购失败
func TestCart_AddItemOutOfStock(t *testing.T) {
	c := NewShoppingCart(1)
	err := c.AddItem(kettle, 1, 0)
	assert.ErrorIs(t, err, ErrProductOutOfStock)
	assert.Empty(t, c.Items)
}

// TestCart_UpdateItem 更新数量并刷新缓存的价格/名称
func TestCart_UpdateItem(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 2, 10))
	c.Items[0].ID = 11 // 模拟持久化后回填的明细ID

	// 商品已改价改名
	updated := ProductSnapshot{ProductID: 7, Name: "手冲咖啡壶(新款)", Price: 1200}
	require.NoError(t, c.UpdateItem(11, 20, updated, 6))

	assert.Equal(t, 6, c.Items[0].Quantity, "请求20件夹紧到可用6件")
	assert.Equal(t, int64(1200), c.Items[0].Price, "价格应从当前商品刷新")
	assert.Equal(t, "手冲咖啡壶(新款)", c.Items[0].Name)
}

// TestCart_UpdateItemAbsent 更新不存在的明细失败
func TestCart_UpdateItemAbsent(t *testing.T) {
	c := NewShoppingCart(1)
	err := c.UpdateItem(99, 1, kettle, 10)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

// TestCart_RemoveItem 移除明细;不存在时失败
func TestCart_RemoveItem(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 2, 10))
	c.Items[0].ID = 11

	require.NoError(t, c.RemoveItem(11))
	assert.Empty(t, c.Items)

	assert.ErrorIs(t, c.RemoveItem(11), ErrItemNotFound)
}

// TestCart_NoImplicitRecalculation 金额只在显式重算时刷新
func TestCart_NoImplicitRecalculation(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 3, 5))

	assert.Zero(t, c.Total, "加购后未重算,金额应保持原值")

	c.RecalculateTotals(0.10)
	assert.Equal(t, int64(3300), c.Total)

	require.NoError(t, c.AddItem(kettle, 1, 5))
	assert.Equal(t, int64(3300), c.Total, "再次变更后金额应保持到下次重算")

	c.RecalculateTotals(0.10)
	assert.Equal(t, int64(4400), c.Total)
}

// TestCart_CreateOrderFromSnapshot 订单快照与购物车后续变更解耦
func TestCart_CreateOrderFromSnapshot(t *testing.T) {
	c := NewShoppingCart(42)
	require.NoError(t, c.AddItem(kettle, 3, 5))
	c.RecalculateTotals(0.10)

	o, err := c.CreateOrderFromSnapshot(42)
	require.NoError(t, err)

	assert.Equal(t, order.OrderStatusPendingPayment, o.Status)
	assert.Equal(t, uint(42), o.CustomerID)
	assert.Equal(t, int64(3000), o.Subtotal)
	assert.Equal(t, int64(300), o.Tax)
	assert.Equal(t, int64(3300), o.Total)
	require.Len(t, o.Lines, 1)
	assert.Equal(t, int64(3000), o.Lines[0].LineTotal)

	// 清空购物车不影响已生成的订单
	c.Clear()
	assert.Len(t, o.Lines, 1)
	assert.Equal(t, int64(3300), o.Total)
}

// TestCart_CreateOrderFromEmptyCart 空购物车不能下单
func TestCart_CreateOrderFromEmptyCart(t *testing.T) {
	c := NewShoppingCart(1)
	_, err := c.CreateOrderFromSnapshot(1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

// TestCart_Clear 清空明细并金额归零
func TestCart_Clear(t *testing.T) {
	c := NewShoppingCart(1)
	require.NoError(t, c.AddItem(kettle, 2, 5))
	c.RecalculateTotals(0.10)
	require.NotZero(t, c.Total)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Subtotal)
	assert.Zero(t, c.Tax)
	assert.Zero(t, c.Total)
}
