package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorefrontFlow 测试完整购物流程
// 商品上架 → 加购 → 结算下单 → 支付 → 开票 → 查询物流
func TestStorefrontFlow(t *testing.T) {
	RequireServer(t)
	adminToken := AdminToken(t)

	productID := CreateTestProduct(t, adminToken, "集成测试咖啡壶", 8900, 10)
	_, customerToken := RegisterTestCustomer(t, "shopper")

	var orderID uint
	var paymentID uint

	t.Run("加入购物车", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"product_id": productID,
			"quantity":   2,
		}, customerToken)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		var cart CartData
		err := json.Unmarshal(resp.Data, &cart)
		require.NoError(t, err, "解析购物车响应失败")

		require.Len(t, cart.Items, 1, "购物车应该有1条明细")
		assert.Equal(t, 2, cart.Items[0].Quantity, "数量应该一致")
		assert.Equal(t, int64(17800), cart.Subtotal, "小计 = 8900 * 2")
		assert.Equal(t, int64(1780), cart.Tax, "税额 = 小计 * 10%")
		assert.Equal(t, int64(19580), cart.Total, "总计 = 小计 + 税额")
	})

	t.Run("加购数量超出库存按库存截断", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"product_id": productID,
			"quantity":   100,
		}, customerToken)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		var cart CartData
		err := json.Unmarshal(resp.Data, &cart)
		require.NoError(t, err, "解析购物车响应失败")

		require.Len(t, cart.Items, 1, "同一商品应该合并为1条明细")
		assert.Equal(t, 10, cart.Items[0].Quantity, "数量应该被截断到库存上限")
	})

	t.Run("结算下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"ship_address":  "1 Swanston St, Melbourne VIC 3000",
			"contact_name":  "集成测试",
			"contact_phone": "0400000001",
		}, customerToken)
		require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

		var order OrderData
		err := json.Unmarshal(resp.Data, &order)
		require.NoError(t, err, "解析下单响应失败")

		require.NotZero(t, order.OrderID, "订单ID应该大于0")
		assert.NotEmpty(t, order.OrderNo, "订单号不应为空")
		assert.Equal(t, int64(97900), order.Total, "总计 = 8900*10*1.1")
		orderID = order.OrderID

		// 下单后购物车应该被清空
		cartResp := GetJSON(t, BaseURL+"/cart", customerToken)
		require.Equal(t, 0, cartResp.Code)

		var cart CartData
		err = json.Unmarshal(cartResp.Data, &cart)
		require.NoError(t, err)
		assert.Empty(t, cart.Items, "下单后购物车应该清空")
	})

	t.Run("空购物车不能下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"ship_address":  "1 Swanston St, Melbourne VIC 3000",
			"contact_name":  "集成测试",
			"contact_phone": "0400000001",
		}, customerToken)
		assert.NotEqual(t, 0, resp.Code, "空购物车应该不能下单")
	})

	t.Run("支付订单", func(t *testing.T) {
		require.NotZero(t, orderID, "依赖上一步的订单")

		resp := PostJSON(t, fmt.Sprintf("%s/orders/%d/payment", BaseURL, orderID),
			map[string]string{"method": "card"}, customerToken)
		require.Equal(t, 0, resp.Code, "支付失败: %s", resp.Message)

		var pay PaymentData
		err := json.Unmarshal(resp.Data, &pay)
		require.NoError(t, err, "解析支付响应失败")

		require.NotZero(t, pay.PaymentID, "支付ID应该大于0")
		assert.Equal(t, int64(97900), pay.Amount, "支付金额应该等于订单总额")
		assert.NotEmpty(t, pay.TrackingNo, "支付后应该创建物流单")
		paymentID = pay.PaymentID

		// 支付后库存应该被扣减到0
		stockResp := GetJSON(t, fmt.Sprintf("%s/inventory/%d", BaseURL, productID), adminToken)
		require.Equal(t, 0, stockResp.Code)

		var stock struct {
			Quantity int `json:"quantity"`
		}
		err = json.Unmarshal(stockResp.Data, &stock)
		require.NoError(t, err)
		assert.Equal(t, 0, stock.Quantity, "支付后库存应该被扣减")
	})

	t.Run("重复支付应失败", func(t *testing.T) {
		require.NotZero(t, orderID, "依赖上一步的订单")

		resp := PostJSON(t, fmt.Sprintf("%s/orders/%d/payment", BaseURL, orderID),
			map[string]string{"method": "card"}, customerToken)
		assert.NotEqual(t, 0, resp.Code, "重复支付应该被拒绝")
	})

	t.Run("开具发票", func(t *testing.T) {
		require.NotZero(t, paymentID, "依赖上一步的支付")

		resp := PostJSON(t, fmt.Sprintf("%s/payments/%d/invoice", BaseURL, paymentID), nil, customerToken)
		require.Equal(t, 0, resp.Code, "开票失败: %s", resp.Message)

		var inv InvoiceData
		err := json.Unmarshal(resp.Data, &inv)
		require.NoError(t, err, "解析发票响应失败")

		assert.NotEmpty(t, inv.InvoiceNumber, "发票号不应为空")
		assert.Equal(t, int64(97900), inv.Amount, "发票金额应该等于支付金额")

		// 重复开票应该失败
		again := PostJSON(t, fmt.Sprintf("%s/payments/%d/invoice", BaseURL, paymentID), nil, customerToken)
		assert.NotEqual(t, 0, again.Code, "重复开票应该被拒绝")
	})

	t.Run("物流回传与查询", func(t *testing.T) {
		require.NotZero(t, orderID, "依赖上一步的订单")

		// 先查出物流单ID
		firstResp := GetJSON(t, fmt.Sprintf("%s/orders/%d/shipment", BaseURL, orderID), customerToken)
		require.Equal(t, 0, firstResp.Code, "物流查询失败: %s", firstResp.Message)

		var created struct {
			ID uint `json:"id"`
		}
		err := json.Unmarshal(firstResp.Data, &created)
		require.NoError(t, err)
		require.NotZero(t, created.ID, "支付后应该已有物流单")

		// 员工回传"已发出"
		resp := PutJSON(t, fmt.Sprintf("%s/shipments/%d/status", BaseURL, created.ID),
			map[string]interface{}{"status": 2, "carrier": "AusPost"}, adminToken)
		require.Equal(t, 0, resp.Code, "物流回传失败: %s", resp.Message)

		// 顾客查询物流
		getResp := GetJSON(t, fmt.Sprintf("%s/orders/%d/shipment", BaseURL, orderID), customerToken)
		require.Equal(t, 0, getResp.Code, "物流查询失败: %s", getResp.Message)

		var shp struct {
			TrackingNumber string `json:"tracking_number"`
			StatusCode     int    `json:"status_code"`
			Carrier        string `json:"carrier"`
			Address        string `json:"address"`
			ContactName    string `json:"contact_name"`
		}
		err = json.Unmarshal(getResp.Data, &shp)
		require.NoError(t, err)
		assert.Equal(t, 2, shp.StatusCode, "状态应该为已发出")
		assert.Equal(t, "AusPost", shp.Carrier, "承运方应该一致")
		assert.Equal(t, "1 Swanston St, Melbourne VIC 3000", shp.Address, "物流单应该继承订单收货地址")
		assert.Equal(t, "集成测试", shp.ContactName, "物流单应该继承订单收货人")
	})

	t.Run("顾客不能查看他人订单", func(t *testing.T) {
		require.NotZero(t, orderID, "依赖上一步的订单")

		_, otherToken := RegisterTestCustomer(t, "stranger")
		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, orderID), otherToken)
		assert.NotEqual(t, 0, resp.Code, "他人订单应该不可见")
	})
}

// TestProductBrowsing 测试商品浏览(公开接口)
func TestProductBrowsing(t *testing.T) {
	RequireServer(t)

	t.Run("商品列表公开可访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/products?page=1&page_size=5", "")
		assert.Equal(t, 0, resp.Code, "商品列表应该公开可访问")
	})

	t.Run("不存在的商品返回错误", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/products/99999999", "")
		assert.NotEqual(t, 0, resp.Code, "不存在的商品应该返回错误")
	})
}
