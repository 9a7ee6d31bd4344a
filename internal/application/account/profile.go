package account

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
)

// ProfileUseCase 个人信息用例
type ProfileUseCase struct {
	accountRepo account.Repository
}

// NewProfileUseCase 创建个人信息用例
func NewProfileUseCase(accountRepo account.Repository) *ProfileUseCase {
	return &ProfileUseCase{accountRepo: accountRepo}
}

// ProfileView 个人信息DTO
type ProfileView struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// Get 查询当前账户信息
func (uc *ProfileUseCase) Get(ctx context.Context, accountID uint) (*ProfileView, error) {
	acc, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return newProfileView(acc), nil
}

// UpdateProfileRequest 更新个人信息请求
// 空字段表示不修改
type UpdateProfileRequest struct {
	AccountID uint
	Name      string
	Phone     string
	Address   string
}

// Update 更新当前账户信息
func (uc *ProfileUseCase) Update(ctx context.Context, req UpdateProfileRequest) (*ProfileView, error) {
	acc, err := uc.accountRepo.FindByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	acc.UpdateProfile(req.Name, req.Phone, req.Address)

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		return nil, err
	}
	return newProfileView(acc), nil
}

func newProfileView(acc *account.Account) *ProfileView {
	return &ProfileView{
		ID:      acc.ID,
		Email:   acc.Email,
		Name:    acc.Name,
		Phone:   acc.Phone,
		Address: acc.Address,
		Role:    string(acc.Role),
	}
}
