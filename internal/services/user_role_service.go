package services

import (
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

// UserRoleService 维护用户与角色的多对多关联 (sys_user_role)
type UserRoleService struct {
	*BaseService[models.UserRole]
}

// NewUserRoleService 创建一个新的 UserRoleService 实例
func NewUserRoleService(db *gorm.DB) *UserRoleService {
	return &UserRoleService{BaseService: NewBaseService[models.UserRole](db)}
}

// AssignRolesToUser 为用户分配角色，整体替换语义：
// 先清空该用户现有的全部关联，再写入新集合。删除与插入在同一事务内，
// 并发读者不会看到"部分替换"的中间状态。
func (s *UserRoleService) AssignRolesToUser(userID int64, roleIDs []int64) error {
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		return replaceUserRoles(tx, userID, roleIDs)
	})
	return classifyStorageError(err)
}

// replaceUserRoles 在给定事务内执行用户角色的整体替换，
// 供 AssignRolesToUser 与用户服务的级联操作复用。
func replaceUserRoles(tx *gorm.DB, userID int64, roleIDs []int64) error {
	// 物理删除旧关联，避免历史软删除行遮蔽新分配
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}
	userRoles := make([]models.UserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		userRoles = append(userRoles, models.UserRole{UserID: userID, RoleID: roleID})
	}
	return tx.Create(&userRoles).Error
}

// GetRoleIdsByUserId 获取用户的所有角色ID，无关联时返回空切片
func (s *UserRoleService) GetRoleIdsByUserId(userID int64) ([]int64, error) {
	roleIDs := make([]int64, 0)
	err := s.DB().Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return roleIDs, nil
}

// GetUserIdsByRoleId 获取角色的所有用户ID，无关联时返回空切片
func (s *UserRoleService) GetUserIdsByRoleId(roleID int64) ([]int64, error) {
	userIDs := make([]int64, 0)
	err := s.DB().Model(&models.UserRole{}).
		Where("role_id = ?", roleID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return userIDs, nil
}
