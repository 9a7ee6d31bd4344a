package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/redis"
	"github.com/datpham0412/yourlocalshop/pkg/jwt"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明:
// 1. 从Header提取Token并校验签名/有效期
// 2. 检查Token黑名单(已登出的Token拒绝访问)
// 3. 将账户信息(ID/邮箱/角色)注入Context供Handler使用
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		// 格式:Authorization: Bearer <token>
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, 40101, "Token格式错误")
			c.Abort()
			return
		}
		tokenString := parts[1]

		isBlacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.ErrorWithCode(c, 50000, "验证Token失败")
			c.Abort()
			return
		}
		if isBlacklisted {
			response.ErrorWithCode(c, 40102, "Token已失效,请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("access_token", tokenString)

		c.Next()
	}
}

// RequireRole 要求指定角色之一(需在RequireAuth之后使用)
// 使用方式:
//
//	admin := r.Group("/api/v1/admin")
//	admin.Use(auth.RequireAuth(), auth.RequireRole(account.RoleAdmin))
func (m *AuthMiddleware) RequireRole(roles ...account.Role) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[GetRole(c)]; !ok {
			response.ErrorWithCode(c, 40104, "无权限访问")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetAccountID 从Context获取当前登录账户ID(未登录返回0)
func GetAccountID(c *gin.Context) uint {
	if accountID, exists := c.Get("account_id"); exists {
		if id, ok := accountID.(uint); ok {
			return id
		}
	}
	return 0
}

// GetEmail 从Context获取当前登录账户邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

// GetRole 从Context获取当前登录账户角色
func GetRole(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}

// GetAccessToken 从Context获取当前请求的Access Token
func GetAccessToken(c *gin.Context) string {
	if token, exists := c.Get("access_token"); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}

// IsStaff 当前账户是否为员工或管理员
func IsStaff(c *gin.Context) bool {
	role := GetRole(c)
	return role == string(account.RoleAdmin) || role == string(account.RoleStaff)
}

// MustGetAccountID 从Context获取账户ID(不存在则panic)
// 仅用于已通过RequireAuth中间件的Handler
func MustGetAccountID(c *gin.Context) uint {
	accountID := GetAccountID(c)
	if accountID == 0 {
		panic("account_id not found in context")
	}
	return accountID
}
