package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 需要本地已启动服务（默认 http://localhost:8080），否则测试会被跳过。
// 管理员相关用例需要通过环境变量 SHOP_TEST_ADMIN_TOKEN 提供管理员Token。

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID    uint   `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// CartData 购物车响应数据
type CartData struct {
	Items []struct {
		ItemID    uint  `json:"item_id"`
		ProductID uint  `json:"product_id"`
		Quantity  int   `json:"quantity"`
		LineTotal int64 `json:"line_total"`
	} `json:"items"`
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// OrderData 下单响应数据
type OrderData struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
}

// PaymentData 支付响应数据
type PaymentData struct {
	PaymentID  uint   `json:"payment_id"`
	OrderID    uint   `json:"order_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	TrackingNo string `json:"tracking_no"`
}

// InvoiceData 发票响应数据
type InvoiceData struct {
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	OrderID       uint   `json:"order_id"`
	Amount        int64  `json:"amount"`
}

// RequireServer 检查服务是否可达，不可达则跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动，跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// AdminToken 获取管理员Token，未配置则跳过测试
func AdminToken(t *testing.T) string {
	t.Helper()
	token := os.Getenv("SHOP_TEST_ADMIN_TOKEN")
	if token == "" {
		t.Skip("未配置SHOP_TEST_ADMIN_TOKEN，跳过需要管理员权限的测试")
	}
	return token
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestSKU 生成唯一的测试SKU
func GenerateTestSKU() string {
	return fmt.Sprintf("TST-%010d", time.Now().UnixNano()%10000000000)
}

// RegisterTestCustomer 注册测试顾客并返回Token
func RegisterTestCustomer(t *testing.T, name string) (email string, token string) {
	email = GenerateTestEmail(name)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"name":     name,
	}

	registerResp := PostJSON(t, BaseURL+"/accounts/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/accounts/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// CreateTestProduct 上架测试商品并返回商品ID（需要管理员Token）
func CreateTestProduct(t *testing.T, adminToken string, name string, price int64, stock int) uint {
	productReq := map[string]interface{}{
		"sku":           GenerateTestSKU(),
		"name":          name,
		"category":      "集成测试",
		"price":         price,
		"initial_stock": stock,
		"description":   "集成测试用商品",
	}

	productResp := PostJSON(t, BaseURL+"/products", productReq, adminToken)
	require.Equal(t, 0, productResp.Code, "商品上架失败: %s", productResp.Message)

	var productData ProductData
	err := json.Unmarshal(productResp.Data, &productData)
	require.NoError(t, err, "解析商品响应失败")

	return productData.ID
}
