package services

import (
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// RoleMenuService 维护角色与菜单的多对多关联 (sys_role_menu)
type RoleMenuService struct {
	*BaseService[models.RoleMenu]
}

// NewRoleMenuService 创建一个新的 RoleMenuService 实例
func NewRoleMenuService(db *gorm.DB) *RoleMenuService {
	return &RoleMenuService{BaseService: NewBaseService[models.RoleMenu](db)}
}

// AssignMenusToRole 为角色分配菜单，整体替换语义，删除与插入在同一事务内
func (s *RoleMenuService) AssignMenusToRole(roleID int64, menuIDs []int64) error {
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		return replaceRoleMenus(tx, roleID, menuIDs)
	})
	return classifyStorageError(err)
}

// replaceRoleMenus 在给定事务内执行角色菜单的整体替换
func replaceRoleMenus(tx *gorm.DB, roleID int64, menuIDs []int64) error {
	if err := tx.Unscoped().Where("role_id = ?", roleID).Delete(&models.RoleMenu{}).Error; err != nil {
		return err
	}
	if len(menuIDs) == 0 {
		return nil
	}
	roleMenus := make([]models.RoleMenu, 0, len(menuIDs))
	for _, menuID := range menuIDs {
		roleMenus = append(roleMenus, models.RoleMenu{RoleID: roleID, MenuID: menuID})
	}
	return tx.Create(&roleMenus).Error
}

// GetMenuIdsByRoleId 获取角色的所有菜单ID，无关联时返回空切片
func (s *RoleMenuService) GetMenuIdsByRoleId(roleID int64) ([]int64, error) {
	menuIDs := make([]int64, 0)
	err := s.DB().Model(&models.RoleMenu{}).
		Where("role_id = ?", roleID).
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return menuIDs, nil
}

// GetRoleIdsByMenuId 获取菜单关联的所有角色ID，无关联时返回空切片
func (s *RoleMenuService) GetRoleIdsByMenuId(menuID int64) ([]int64, error) {
	roleIDs := make([]int64, 0)
	err := s.DB().Model(&models.RoleMenu{}).
		Where("menu_id = ?", menuID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return roleIDs, nil
}

// GetMenuIdsByRoleIds 获取一组角色可见菜单ID的并集（去重）。
// 空输入直接返回空切片，不访问数据库。
func (s *RoleMenuService) GetMenuIdsByRoleIds(roleIDs []int64) ([]int64, error) {
	if len(roleIDs) == 0 {
		return []int64{}, nil
	}
	menuIDs := make([]int64, 0)
	err := s.DB().Model(&models.RoleMenu{}).
		Where("role_id IN ?", roleIDs).
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return utils.UniqueInt64(menuIDs), nil
}
