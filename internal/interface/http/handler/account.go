package handler

import (
	"github.com/gin-gonic/gin"

	appaccount "github.com/datpham0412/yourlocalshop/internal/application/account"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/jwt"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// AccountHandler 账户HTTP处理器
// Handler只做HTTP的事:解析请求、调用应用层、返回响应
type AccountHandler struct {
	registerUseCase *appaccount.RegisterUseCase
	loginUseCase    *appaccount.LoginUseCase
	logoutUseCase   *appaccount.LogoutUseCase
	profileUseCase  *appaccount.ProfileUseCase
	jwtManager      *jwt.Manager
}

// NewAccountHandler 创建账户处理器
func NewAccountHandler(
	registerUseCase *appaccount.RegisterUseCase,
	loginUseCase *appaccount.LoginUseCase,
	logoutUseCase *appaccount.LogoutUseCase,
	profileUseCase *appaccount.ProfileUseCase,
	jwtManager *jwt.Manager,
) *AccountHandler {
	return &AccountHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		profileUseCase:  profileUseCase,
		jwtManager:      jwtManager,
	}
}

// Register 账户注册
// @Summary      账户注册
// @Description  创建新的顾客账户
// @Tags         账户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response{data=dto.AccountResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/accounts/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appaccount.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.AccountResponse{
		ID:    result.ID,
		Email: result.Email,
		Name:  result.Name,
		Role:  result.Role,
	})
}

// Login 账户登录
// @Summary      账户登录
// @Description  验证邮箱密码,返回JWT Token对
// @Tags         账户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/accounts/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appaccount.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		Account: dto.AccountResponse{
			ID:    result.Account.ID,
			Email: result.Account.Email,
			Name:  result.Account.Name,
			Role:  result.Account.Role,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout 账户登出
// @Summary      账户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         账户
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response "登出成功"
// @Router       /api/v1/accounts/logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	accountID := middleware.MustGetAccountID(c)
	token := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), accountID, token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Profile 查询个人信息
// @Summary      查询个人信息
// @Tags         账户
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ProfileResponse} "查询成功"
// @Router       /api/v1/profile [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	view, err := h.profileUseCase.Get(c.Request.Context(), middleware.MustGetAccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newProfileResponse(view))
}

// UpdateProfile 更新个人信息
// @Summary      更新个人信息
// @Description  修改姓名、电话、地址;空字段不修改
// @Tags         账户
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "个人信息"
// @Success      200 {object} response.Response{data=dto.ProfileResponse} "更新成功"
// @Router       /api/v1/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view, err := h.profileUseCase.Update(c.Request.Context(), appaccount.UpdateProfileRequest{
		AccountID: middleware.MustGetAccountID(c),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newProfileResponse(view))
}

// newProfileResponse 应用层视图 → HTTP响应
func newProfileResponse(view *appaccount.ProfileView) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:      view.ID,
		Email:   view.Email,
		Name:    view.Name,
		Phone:   view.Phone,
		Address: view.Address,
		Role:    view.Role,
	}
}

// RefreshToken 刷新Access Token
// @Summary      刷新Token
// @Description  使用Refresh Token换取新的Access Token
// @Tags         账户
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh Token"
// @Success      200 {object} response.Response{data=dto.RefreshTokenResponse} "刷新成功"
// @Failure      401 {object} response.Response "Token无效或已过期"
// @Router       /api/v1/accounts/refresh [post]
func (h *AccountHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	accessToken, err := h.jwtManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.RefreshTokenResponse{AccessToken: accessToken})
}
