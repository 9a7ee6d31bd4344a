package dto

// RegisterRequest HTTP注册请求
// HTTP层DTO带binding校验tag;应用层DTO是纯数据结构
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd1"`
	Name     string `json:"name" binding:"required,min=2,max=50" example:"Alice Chen"`
	Phone    string `json:"phone" binding:"omitempty,max=20" example:"0400000001"`
	Address  string `json:"address" binding:"omitempty,max=255" example:"1 Swanston St, Melbourne"`
}

// AccountResponse 账户响应(不含密码)
type AccountResponse struct {
	ID    uint   `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice Chen"`
	Role  string `json:"role" example:"customer"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"passw0rd1"`
}

// LoginResponse HTTP登录响应
type LoginResponse struct {
	Account      AccountResponse `json:"account"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in" example:"7200"`
}

// ProfileResponse 个人信息响应
type ProfileResponse struct {
	ID      uint   `json:"id" example:"1"`
	Email   string `json:"email" example:"alice@example.com"`
	Name    string `json:"name" example:"Alice Chen"`
	Phone   string `json:"phone" example:"0400000001"`
	Address string `json:"address" example:"1 Swanston St, Melbourne"`
	Role    string `json:"role" example:"customer"`
}

// UpdateProfileRequest 更新个人信息请求,空字段表示不修改
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

// RefreshTokenRequest Token刷新请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse Token刷新响应
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}
