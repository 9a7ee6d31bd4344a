package account

import (
	"context"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/redis"
	"github.com/datpham0412/yourlocalshop/pkg/jwt"
)

// LoginUseCase 账户登录用例
// 设计说明:
// 1. 验证邮箱密码(领域服务)
// 2. 生成JWT Token对(Claims携带角色,供中间件做权限校验)
// 3. 保存会话到Redis
type LoginUseCase struct {
	accountService account.Service
	jwtManager     *jwt.Manager
	sessionStore   *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	accountService account.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		accountService: accountService,
		jwtManager:     jwtManager,
		sessionStore:   sessionStore,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	acc, err := uc.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(acc.ID, acc.Email, string(acc.Role))
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"account_id": acc.ID,
		"email":      acc.Email,
		"role":       string(acc.Role),
		"login_at":   time.Now().Unix(),
	}

	// 会话有效期 = Refresh Token有效期;保存失败不影响登录
	_ = uc.sessionStore.SaveSession(ctx, acc.ID, sessionData, 7*24*time.Hour)

	return &LoginResponse{
		Account: AccountInfo{
			ID:    acc.ID,
			Email: acc.Email,
			Name:  acc.Name,
			Role:  string(acc.Role),
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 账户登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// 删除会话并将Access Token加入黑名单,防止过期前继续使用
func (uc *LogoutUseCase) Execute(ctx context.Context, accountID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, accountID); err != nil {
		return err
	}

	return uc.sessionStore.AddToBlacklist(ctx, accessToken, 2*time.Hour)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	Account      AccountInfo `json:"account"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"` // Access Token过期时间(秒)
}

// AccountInfo 账户信息
type AccountInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
