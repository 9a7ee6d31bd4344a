package account

import (
	"time"
)

// Role 账户角色
type Role string

const (
	RoleCustomer Role = "customer" // 顾客
	RoleStaff    Role = "staff"    // 门店员工(仓库/发货)
	RoleAdmin    Role = "admin"    // 管理员
)

// Valid 是否为已定义的角色
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Account 账户实体(聚合根)
// 设计说明:
// 1. 密码以bcrypt哈希存储,实体不暴露明文
// 2. 领域实体不带GORM tag,由infrastructure层做映射
type Account struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Name      string
	Phone     string
	Address   string // 默认收货地址
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount 创建新账户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewAccount(email, hashedPassword, name, phone, address string, role Role) *Account {
	now := time.Now()
	return &Account{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Phone:     phone,
		Address:   address,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfile 更新联系信息(领域行为)
func (a *Account) UpdateProfile(name, phone, address string) {
	if name != "" {
		a.Name = name
	}
	if phone != "" {
		a.Phone = phone
	}
	if address != "" {
		a.Address = address
	}
	a.UpdatedAt = time.Now()
}

// IsAdmin 是否为管理员
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManageFulfillment 是否可操作订单履约(打包/发货等)
func (a *Account) CanManageFulfillment() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}
