package account

import (
	"context"
)

// Repository 账户仓储接口
// 接口定义在domain层,具体实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建账户
	// 邮箱已存在时返回errors.ErrEmailDuplicate
	Create(ctx context.Context, acc *Account) error

	// FindByID 根据ID查找账户
	// 不存在时返回errors.ErrAccountNotFound
	FindByID(ctx context.Context, id uint) (*Account, error)

	// FindByEmail 根据邮箱查找账户
	// 不存在时返回errors.ErrAccountNotFound
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Update 更新账户信息
	Update(ctx context.Context, acc *Account) error
}
