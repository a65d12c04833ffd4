package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// ErrUsernameExists 表示用户名已被占用
var ErrUsernameExists = errors.New("用户名已存在")

// UserService 提供用户管理的业务逻辑。
// 组合通用生命周期服务，并叠加用户特有的逻辑：
// 创建/更新前的密码加密、用户名唯一性校验、角色分配与删除级联。
type UserService struct {
	*BaseService[models.User]
	userRoles *UserRoleService
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(db *gorm.DB, userRoles *UserRoleService) *UserService {
	return &UserService{
		BaseService: NewBaseService[models.User](db),
		userRoles:   userRoles,
	}
}

// validateProfile 校验可选的邮箱与手机号格式
func (s *UserService) validateProfile(user *models.User) error {
	if user.Email != nil && !utils.ValidateEmailFormat(*user.Email) {
		return utils.ErrInvalidEmailFormat
	}
	if user.Phone != nil && *user.Phone != "" {
		if err := utils.ValidatePhoneNumber(*user.Phone); err != nil {
			return err
		}
	}
	return nil
}

// Create 创建用户：校验用户名唯一性，加密明文密码，
// 并在同一事务内写入用户与角色关联（roleIDs 为 nil 或空时不建立关联）。
func (s *UserService) Create(user *models.User, roleIDs []int64) (*models.User, error) {
	if err := s.validateProfile(user); err != nil {
		return nil, err
	}

	// 预先检查用户名是否已存在（含软删除记录，唯一索引覆盖全部行）
	var existing models.User
	err := s.DB().Unscoped().Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, classifyStorageError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	err = s.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if len(roleIDs) > 0 {
			return replaceUserRoles(tx, user.ID, roleIDs)
		}
		return nil
	})
	if err != nil {
		err = classifyStorageError(err)
		if errors.Is(err, ErrRecordConflict) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}

// Update 更新用户：合并非零值字段。partial 带有明文密码时先加密；
// roleIDs 不为 nil 时在同一事务内整体替换用户的角色关联。
func (s *UserService) Update(id int64, partial *models.User, roleIDs []int64) (*models.User, error) {
	if err := s.validateProfile(partial); err != nil {
		return nil, err
	}
	if partial.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(partial.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		partial.Password = string(hashed)
	}

	var updated *models.User
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Updates(partial).Error; err != nil {
			return err
		}
		if roleIDs != nil {
			if err := replaceUserRoles(tx, id, roleIDs); err != nil {
				return err
			}
		}
		updated = &existing
		return nil
	})
	if err != nil {
		err = classifyStorageError(err)
		if errors.Is(err, ErrRecordConflict) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete 软删除用户，并在同一事务内级联软删除其角色关联
func (s *UserService) Delete(id int64) error {
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error
	})
	return classifyStorageError(err)
}

// DeleteMany 批量软删除用户，逐个应用与 Delete 相同的级联；
// 未命中存活记录的ID被忽略，全部未命中时返回 ErrRecordNotFound。
func (s *UserService) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return ErrRecordNotFound
	}
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var liveIDs []int64
		if err := tx.Model(&models.User{}).Where("id IN ?", ids).Pluck("id", &liveIDs).Error; err != nil {
			return err
		}
		if len(liveIDs) == 0 {
			return ErrRecordNotFound
		}
		if err := tx.Where("id IN ?", liveIDs).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id IN ?", liveIDs).Delete(&models.UserRole{}).Error
	})
	return classifyStorageError(err)
}

// FindByUsername 根据用户名查找存活用户
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	return s.FindOne(Filter{"username": username}, false)
}

// ChangeStatus 修改用户状态（启用/禁用）。
// 状态 0 是有效值，走单列更新而不是零值合并。
func (s *UserService) ChangeStatus(id int64, status int) (*models.User, error) {
	var updated *models.User
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Update("status", status).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return updated, nil
}

// GetUserRoleIds 获取用户的角色ID列表
func (s *UserService) GetUserRoleIds(userID int64) ([]int64, error) {
	return s.userRoles.GetRoleIdsByUserId(userID)
}

// AssignRoles 为用户分配角色（整体替换）
func (s *UserService) AssignRoles(userID int64, roleIDs []int64) error {
	if _, err := s.FindByID(userID, false); err != nil {
		return err
	}
	return s.userRoles.AssignRolesToUser(userID, roleIDs)
}
