package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

// ErrRoleCodeExists 表示角色编码已被占用
var ErrRoleCodeExists = errors.New("角色编码已存在")

// RoleService 提供角色管理的业务逻辑：
// 角色编码唯一性校验、菜单分配与删除级联。
type RoleService struct {
	*BaseService[models.Role]
	roleMenus *RoleMenuService
	userRoles *UserRoleService
}

// NewRoleService 创建一个新的 RoleService 实例
func NewRoleService(db *gorm.DB, roleMenus *RoleMenuService, userRoles *UserRoleService) *RoleService {
	return &RoleService{
		BaseService: NewBaseService[models.Role](db),
		roleMenus:   roleMenus,
		userRoles:   userRoles,
	}
}

// Create 创建角色：校验编码唯一性，并在同一事务内写入菜单关联
func (s *RoleService) Create(role *models.Role, menuIDs []int64) (*models.Role, error) {
	// 预先检查角色编码是否已存在（含软删除记录，唯一索引覆盖全部行）
	var existing models.Role
	err := s.DB().Unscoped().Where("code = ?", role.Code).First(&existing).Error
	if err == nil {
		return nil, ErrRoleCodeExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, classifyStorageError(err)
	}

	err = s.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}
		if len(menuIDs) > 0 {
			return replaceRoleMenus(tx, role.ID, menuIDs)
		}
		return nil
	})
	if err != nil {
		err = classifyStorageError(err)
		if errors.Is(err, ErrRecordConflict) {
			return nil, ErrRoleCodeExists
		}
		return nil, err
	}
	return role, nil
}

// Update 更新角色：合并非零值字段；
// menuIDs 不为 nil 时在同一事务内整体替换角色的菜单关联。
func (s *RoleService) Update(id int64, partial *models.Role, menuIDs []int64) (*models.Role, error) {
	var updated *models.Role
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.Role
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Updates(partial).Error; err != nil {
			return err
		}
		if menuIDs != nil {
			if err := replaceRoleMenus(tx, id, menuIDs); err != nil {
				return err
			}
		}
		updated = &existing
		return nil
	})
	if err != nil {
		err = classifyStorageError(err)
		if errors.Is(err, ErrRecordConflict) {
			return nil, ErrRoleCodeExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete 软删除角色，并在同一事务内级联软删除其菜单关联与用户关联
func (s *RoleService) Delete(id int64) error {
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.Role
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&models.RoleMenu{}).Error; err != nil {
			return err
		}
		return tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error
	})
	return classifyStorageError(err)
}

// DeleteMany 批量软删除角色，逐批应用与 Delete 相同的级联
func (s *RoleService) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return ErrRecordNotFound
	}
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var liveIDs []int64
		if err := tx.Model(&models.Role{}).Where("id IN ?", ids).Pluck("id", &liveIDs).Error; err != nil {
			return err
		}
		if len(liveIDs) == 0 {
			return ErrRecordNotFound
		}
		if err := tx.Where("id IN ?", liveIDs).Delete(&models.Role{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id IN ?", liveIDs).Delete(&models.RoleMenu{}).Error; err != nil {
			return err
		}
		return tx.Where("role_id IN ?", liveIDs).Delete(&models.UserRole{}).Error
	})
	return classifyStorageError(err)
}

// FindByCode 根据编码查找存活角色
func (s *RoleService) FindByCode(code string) (*models.Role, error) {
	return s.FindOne(Filter{"code": code}, false)
}

// GetRoleMenuIds 获取角色的菜单ID列表
func (s *RoleService) GetRoleMenuIds(roleID int64) ([]int64, error) {
	return s.roleMenus.GetMenuIdsByRoleId(roleID)
}

// GetRoleUserIds 获取角色下的用户ID列表
func (s *RoleService) GetRoleUserIds(roleID int64) ([]int64, error) {
	return s.userRoles.GetUserIdsByRoleId(roleID)
}

// AssignMenus 为角色分配菜单（整体替换）
func (s *RoleService) AssignMenus(roleID int64, menuIDs []int64) error {
	if _, err := s.FindByID(roleID, false); err != nil {
		return err
	}
	return s.roleMenus.AssignMenusToRole(roleID, menuIDs)
}

// ChangeStatus 修改角色状态（启用/禁用）
func (s *RoleService) ChangeStatus(id int64, status int) (*models.Role, error) {
	var updated *models.Role
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.Role
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
