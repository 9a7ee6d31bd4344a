package account

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
)

// RegisterUseCase 账户注册用例
// Application层负责用例编排;注册当前只调用账户领域服务,
// 后续可扩展欢迎邮件、审计日志等
type RegisterUseCase struct {
	accountService account.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(accountService account.Service) *RegisterUseCase {
	return &RegisterUseCase{
		accountService: accountService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	acc, err := uc.accountService.Register(ctx, req.Email, req.Password, req.Name, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	// 领域实体 → 应用层DTO,领域模型变更不影响API契约
	return &RegisterResponse{
		ID:    acc.ID,
		Email: acc.Email,
		Name:  acc.Name,
		Role:  string(acc.Role),
	}, nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Address  string
}

// RegisterResponse 注册响应(不含密码字段)
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
