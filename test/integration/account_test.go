package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccountRegister 测试账户注册
func TestAccountRegister(t *testing.T) {
	RequireServer(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("register")
		resp := PostJSON(t, BaseURL+"/accounts/register", map[string]string{
			"email":    email,
			"password": "Test1234",
			"name":     "集成测试用户",
		}, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "账户ID应该大于0")
		assert.Equal(t, email, data.Email, "邮箱应该一致")
		assert.Equal(t, "customer", data.Role, "注册账户默认为顾客角色")
	})

	t.Run("重复邮箱应失败", func(t *testing.T) {
		email := GenerateTestEmail("dup")
		req := map[string]string{
			"email":    email,
			"password": "Test1234",
			"name":     "重复邮箱",
		}

		first := PostJSON(t, BaseURL+"/accounts/register", req, "")
		require.Equal(t, 0, first.Code, "第一次注册应该成功")

		second := PostJSON(t, BaseURL+"/accounts/register", req, "")
		assert.NotEqual(t, 0, second.Code, "重复邮箱应该被拒绝")
	})

	t.Run("弱密码应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/accounts/register", map[string]string{
			"email":    GenerateTestEmail("weak"),
			"password": "12345678", // 纯数字
			"name":     "弱密码用户",
		}, "")

		assert.NotEqual(t, 0, resp.Code, "弱密码应该被拒绝")
	})
}

// TestAccountLogin 测试账户登录
func TestAccountLogin(t *testing.T) {
	RequireServer(t)

	email, _ := RegisterTestCustomer(t, "login_user")

	t.Run("错误密码应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/accounts/login", map[string]string{
			"email":    email,
			"password": "Wrong9999",
		}, "")

		assert.NotEqual(t, 0, resp.Code, "错误密码应该登录失败")
	})

	t.Run("登录后可访问受保护接口", func(t *testing.T) {
		_, token := RegisterTestCustomer(t, "cart_viewer")

		resp := GetJSON(t, BaseURL+"/cart", token)
		assert.Equal(t, 0, resp.Code, "登录用户查看购物车应该成功")
	})

	t.Run("无Token访问受保护接口应失败", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/cart", "")
		assert.NotEqual(t, 0, resp.Code, "未登录应该被拒绝")
	})
}
