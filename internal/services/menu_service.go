package services

import (
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

// MenuService 提供菜单管理与菜单树组装的业务逻辑
type MenuService struct {
	*BaseService[models.Menu]
	roleMenus *RoleMenuService
}

// NewMenuService 创建一个新的 MenuService 实例
func NewMenuService(db *gorm.DB, roleMenus *RoleMenuService) *MenuService {
	return &MenuService{
		BaseService: NewBaseService[models.Menu](db),
		roleMenus:   roleMenus,
	}
}

// BuildMenuTree 将平铺的菜单列表组装为森林。
// parentId 为 0 的节点是根；每个节点的 Children 为其直接子节点，
// 没有子节点时 Children 为 nil（JSON 中省略）。同级顺序保持输入顺序，
// 调用方负责预先按 sort 排序。仅对无环的父子关系保证终止。
func BuildMenuTree(menus []models.Menu) []*models.MenuTreeNode {
	return buildMenuSubtree(menus, 0)
}

func buildMenuSubtree(menus []models.Menu, parentID int64) []*models.MenuTreeNode {
	var nodes []*models.MenuTreeNode
	for _, menu := range menus {
		if menu.ParentID != parentID {
			continue
		}
		node := &models.MenuTreeNode{Menu: menu}
		node.Children = buildMenuSubtree(menus, menu.ID)
		nodes = append(nodes, node)
	}
	return nodes
}

// GetMenuTree 获取全部存活菜单组装的菜单树，同级按 sort 升序
func (s *MenuService) GetMenuTree() ([]*models.MenuTreeNode, error) {
	var menus []models.Menu
	if err := s.DB().Order("sort ASC").Find(&menus).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return BuildMenuTree(menus), nil
}

// GetMenusByRoleIds 获取一组角色可见的菜单列表，按 sort 升序。
// 空角色集合直接返回空列表。
func (s *MenuService) GetMenusByRoleIds(roleIDs []int64) ([]models.Menu, error) {
	if len(roleIDs) == 0 {
		return []models.Menu{}, nil
	}
	menuIDs, err := s.roleMenus.GetMenuIdsByRoleIds(roleIDs)
	if err != nil {
		return nil, err
	}
	if len(menuIDs) == 0 {
		return []models.Menu{}, nil
	}
	var menus []models.Menu
	if err := s.DB().Where("id IN ?", menuIDs).Order("sort ASC").Find(&menus).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return menus, nil
}

// GetMenuTreeByRoleIds 获取一组角色可见菜单组装的菜单树
func (s *MenuService) GetMenuTreeByRoleIds(roleIDs []int64) ([]*models.MenuTreeNode, error) {
	menus, err := s.GetMenusByRoleIds(roleIDs)
	if err != nil {
		return nil, err
	}
	return BuildMenuTree(menus), nil
}

// GetMenuRoleIds 获取菜单关联的角色ID列表
func (s *MenuService) GetMenuRoleIds(menuID int64) ([]int64, error) {
	return s.roleMenus.GetRoleIdsByMenuId(menuID)
}

// Delete 软删除菜单，并在同一事务内级联软删除其角色关联
func (s *MenuService) Delete(id int64) error {
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.Menu
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return tx.Where("menu_id = ?", id).Delete(&models.RoleMenu{}).Error
	})
	return classifyStorageError(err)
}

// DeleteMany 批量软删除菜单，逐批应用与 Delete 相同的级联；
// 未命中存活记录的ID被忽略，全部未命中时返回 ErrRecordNotFound。
func (s *MenuService) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return ErrRecordNotFound
	}
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var liveIDs []int64
		if err := tx.Model(&models.Menu{}).Where("id IN ?", ids).Pluck("id", &liveIDs).Error; err != nil {
			return err
		}
		if len(liveIDs) == 0 {
			return ErrRecordNotFound
		}
		if err := tx.Where("id IN ?", liveIDs).Delete(&models.Menu{}).Error; err != nil {
			return err
		}
		return tx.Where("menu_id IN ?", liveIDs).Delete(&models.RoleMenu{}).Error
	})
	return classifyStorageError(err)
}

// ChangeStatus 修改菜单状态（启用/禁用）
func (s *MenuService) ChangeStatus(id int64, status int) (*models.Menu, error) {
	var updated *models.Menu
	err := s.DB().Transaction(func(tx *gorm.DB) error {
		var existing models.Menu
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
