package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// accountRepository 账户仓储实现(MySQL)
// 实现domain/account/repository.go定义的接口,
// 负责领域实体与GORM模型之间的转换
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账户仓储
// 返回domain层的接口类型(依赖倒置)
func NewAccountRepository(db *gorm.DB) account.Repository {
	return &accountRepository{db: db}
}

// Create 创建账户
// 邮箱唯一性由数据库UNIQUE索引保证,冲突转换为ErrEmailDuplicate
func (r *accountRepository) Create(ctx context.Context, acc *account.Account) error {
	model := &AccountModel{
		Email:    acc.Email,
		Password: acc.Password,
		Name:     acc.Name,
		Phone:    acc.Phone,
		Address:  acc.Address,
		Role:     string(acc.Role),
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建账户失败")
	}

	acc.ID = model.ID
	acc.CreatedAt = model.CreatedAt
	acc.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找账户
func (r *accountRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	var model AccountModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "查询账户失败")
	}
	return toAccountEntity(&model), nil
}

// FindByEmail 根据邮箱查找账户
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model AccountModel
	err := dbFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "查询账户失败")
	}
	return toAccountEntity(&model), nil
}

// Update 更新账户信息
func (r *accountRepository) Update(ctx context.Context, acc *account.Account) error {
	model := &AccountModel{
		ID:       acc.ID,
		Email:    acc.Email,
		Password: acc.Password,
		Name:     acc.Name,
		Phone:    acc.Phone,
		Address:  acc.Address,
		Role:     string(acc.Role),
	}

	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新账户失败")
	}

	acc.UpdatedAt = model.UpdatedAt
	return nil
}

// toAccountEntity GORM模型 → 领域实体
func toAccountEntity(m *AccountModel) *account.Account {
	return &account.Account{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		Role:      account.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
