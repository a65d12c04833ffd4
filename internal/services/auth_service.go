package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/lunjingjie/midway-base-framework/internal/auth"
	"github.com/lunjingjie/midway-base-framework/internal/models"
)

var (
	// ErrInvalidCredentials 表示用户名或密码错误。
	// 两种失败对外用同一条消息，不泄露用户名是否存在。
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrUserDisabled 表示用户已被禁用
	ErrUserDisabled = errors.New("用户已被禁用")
)

// UserInfo 是登录与当前用户查询返回的用户信息（不含密码）
type UserInfo struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	RealName *string `json:"realName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	RoleIds  []int64 `json:"roleIds"`
}

// LoginResult 是登录成功的返回结构
type LoginResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// AuthService 提供登录与当前用户查询
type AuthService struct {
	users     *UserService
	userRoles *UserRoleService
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(users *UserService, userRoles *UserRoleService) *AuthService {
	return &AuthService{users: users, userRoles: userRoles}
}

// buildUserInfo 组装用户信息及其角色ID列表
func (s *AuthService) buildUserInfo(user *models.User) (UserInfo, error) {
	roleIDs, err := s.userRoles.GetRoleIdsByUserId(user.ID)
	if err != nil {
		return UserInfo{}, err
	}
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		RealName: user.RealName,
		Email:    user.Email,
		Phone:    user.Phone,
		RoleIds:  roleIDs,
	}, nil
}

// Login 校验用户名密码并签发JWT。
// 用户不存在与密码错误返回同一个 ErrInvalidCredentials；禁用用户拒绝登录。
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status != models.UserStatusEnabled {
		return nil, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	info, err := s.buildUserInfo(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: info}, nil
}

// GetCurrentUser 根据认证身份中的用户ID返回当前用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*UserInfo, error) {
	user, err := s.users.FindByID(userID, false)
	if err != nil {
		return nil, err
	}
	info, err := s.buildUserInfo(user)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
