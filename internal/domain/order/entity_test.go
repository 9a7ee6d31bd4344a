package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	return NewOrder("ORD17565000001", 1, []OrderLine{
		{ProductID: 7, Name: "手冲咖啡壶", Price: 1000, Quantity: 3, LineTotal: 3000},
		{ProductID: 9, Name: "咖啡滤纸", Price: 500, Quantity: 2, LineTotal: 1000},
	}, 4000, 400, 4400)
}

// TestOrder_HappyPath 完整主链每一步恰好成功一次
func TestOrder_HappyPath(t *testing.T) {
	o := newTestOrder()
	require.Equal(t, OrderStatusPendingPayment, o.Status)

	require.NoError(t, o.SetPaid())
	assert.Equal(t, OrderStatusPaid, o.Status)

	require.NoError(t, o.AdvanceToProcessing())
	assert.Equal(t, OrderStatusProcessing, o.Status)

	require.NoError(t, o.MarkPacked())
	assert.Equal(t, OrderStatusPacked, o.Status)

	require.NoError(t, o.MarkShipped())
	assert.Equal(t, OrderStatusShipped, o.Status)

	require.NoError(t, o.MarkDelivered())
	assert.Equal(t, OrderStatusDelivered, o.Status)
}

// TestOrder_SetPaidOnlyFromPendingPayment SetPaid仅在待支付状态下成功
func TestOrder_SetPaidOnlyFromPendingPayment(t *testing.T) {
	o := newTestOrder()
	require.NoError(t, o.SetPaid())

	// 重复支付失败且状态不变
	err := o.SetPaid()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, OrderStatusPaid, o.Status, "失败的转换不应修改状态")
}

// TestOrder_RepeatedStepFails 主链任意步骤重复执行失败
func TestOrder_RepeatedStepFails(t *testing.T) {
	o := newTestOrder()
	require.NoError(t, o.SetPaid())
	require.NoError(t, o.AdvanceToProcessing())

	err := o.AdvanceToProcessing()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, OrderStatusProcessing, o.Status)
}

// TestOrder_SkippedStepFails 跳步执行失败
func TestOrder_SkippedStepFails(t *testing.T) {
	tests := []struct {
		name string
		op   func(o *Order) error
	}{
		{"待支付直接处理中", func(o *Order) error { return o.AdvanceToProcessing() }},
		{"待支付直接打包", func(o *Order) error { return o.MarkPacked() }},
		{"待支付直接发货", func(o *Order) error { return o.MarkShipped() }},
		{"待支付直接送达", func(o *Order) error { return o.MarkDelivered() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder()
			err := tt.op(o)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			assert.Equal(t, OrderStatusPendingPayment, o.Status, "失败的转换不应修改状态")
		})
	}
}

// TestOrder_MarkCancelled 取消规则:Packed/Shipped/Delivered不可取消
func TestOrder_MarkCancelled(t *testing.T) {
	advance := map[OrderStatus]func(o *Order){
		OrderStatusPendingPayment: func(o *Order) {},
		OrderStatusPaid:           func(o *Order) { _ = o.SetPaid() },
		OrderStatusProcessing:     func(o *Order) { _ = o.SetPaid(); _ = o.AdvanceToProcessing() },
		OrderStatusPacked: func(o *Order) {
			_ = o.SetPaid()
			_ = o.AdvanceToProcessing()
			_ = o.MarkPacked()
		},
		OrderStatusShipped: func(o *Order) {
			_ = o.SetPaid()
			_ = o.AdvanceToProcessing()
			_ = o.MarkPacked()
			_ = o.MarkShipped()
		},
		OrderStatusDelivered: func(o *Order) {
			_ = o.SetPaid()
			_ = o.AdvanceToProcessing()
			_ = o.MarkPacked()
			_ = o.MarkShipped()
			_ = o.MarkDelivered()
		},
	}

	cancellable := map[OrderStatus]bool{
		OrderStatusPendingPayment: true,
		OrderStatusPaid:           true,
		OrderStatusProcessing:     true,
		OrderStatusPacked:         false,
		OrderStatusShipped:        false,
		OrderStatusDelivered:      false,
	}

	for status, setup := range advance {
		t.Run(status.String(), func(t *testing.T) {
			o := newTestOrder()
			setup(o)
			require.Equal(t, status, o.Status)

			err := o.MarkCancelled()
			if cancellable[status] {
				assert.NoError(t, err)
				assert.Equal(t, OrderStatusCancelled, o.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				assert.Equal(t, status, o.Status)
			}
		})
	}
}

// TestOrder_MarkFailed 除Delivered外任意状态均可标记失败
func TestOrder_MarkFailed(t *testing.T) {
	o := newTestOrder()
	require.NoError(t, o.SetPaid())
	require.NoError(t, o.AdvanceToProcessing())
	require.NoError(t, o.MarkPacked())
	require.NoError(t, o.MarkShipped())
	require.NoError(t, o.MarkFailed())
	assert.Equal(t, OrderStatusFailed, o.Status)

	// 终态Delivered不可标记失败
	o2 := newTestOrder()
	require.NoError(t, o2.SetPaid())
	require.NoError(t, o2.AdvanceToProcessing())
	require.NoError(t, o2.MarkPacked())
	require.NoError(t, o2.MarkShipped())
	require.NoError(t, o2.MarkDelivered())
	assert.ErrorIs(t, o2.MarkFailed(), ErrInvalidStatusTransition)
	assert.Equal(t, OrderStatusDelivered, o2.Status)
}

// TestOrder_ValidateStock 基于明细快照校验库存
func TestOrder_ValidateStock(t *testing.T) {
	o := newTestOrder()
	stock := map[uint]int{7: 5, 9: 2}

	lookup := func(productID uint) (int, error) {
		return stock[productID], nil
	}

	assert.NoError(t, o.ValidateStock(lookup))

	// 第二行库存不足
	stock[9] = 1
	assert.ErrorIs(t, o.ValidateStock(lookup), ErrInsufficientStock)
}

// TestOrder_DeductStock_RequiresPaid 仅Paid状态可扣减库存
func TestOrder_DeductStock_RequiresPaid(t *testing.T) {
	o := newTestOrder()
	called := 0
	deduct := func(productID uint, quantity int) error {
		called++
		return nil
	}

	assert.ErrorIs(t, o.DeductStock(deduct), ErrOrderNotPaid)
	assert.Zero(t, called, "未支付订单不应触发扣减")

	require.NoError(t, o.SetPaid())
	require.NoError(t, o.DeductStock(deduct))
	assert.Equal(t, 2, called, "每行明细各扣减一次")
}

// TestOrder_DeductStock_StopsOnFirstFailure 逐行扣减,失败行之前的不回滚
func TestOrder_DeductStock_StopsOnFirstFailure(t *testing.T) {
	o := newTestOrder()
	require.NoError(t, o.SetPaid())

	var deducted []uint
	deduct := func(productID uint, quantity int) error {
		if productID == 9 {
			return ErrInsufficientStock
		}
		deducted = append(deducted, productID)
		return nil
	}

	err := o.DeductStock(deduct)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, []uint{7}, deducted, "失败前已扣减的行保持已扣减")
}

// TestOrder_CalculateSubtotal 明细小计计算
func TestOrder_CalculateSubtotal(t *testing.T) {
	o := newTestOrder()
	assert.Equal(t, int64(4000), o.CalculateSubtotal())
}
