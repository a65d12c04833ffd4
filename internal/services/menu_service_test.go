package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(db, NewRoleMenuService(db))
}

func menuWithID(id, parentID int64, name string) models.Menu {
	menu := models.Menu{ParentID: parentID, Name: name}
	menu.ID = id
	return menu
}

func TestBuildMenuTree(t *testing.T) {
	menus := []models.Menu{
		menuWithID(1, 0, "系统管理"),
		menuWithID(2, 1, "用户管理"),
		menuWithID(3, 0, "个人中心"),
	}

	tree := BuildMenuTree(menus)
	require.Len(t, tree, 2)

	assert.Equal(t, int64(1), tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, int64(2), tree[0].Children[0].ID)
	// 叶子节点的 Children 为 nil，JSON 序列化时省略
	assert.Nil(t, tree[0].Children[0].Children)

	assert.Equal(t, int64(3), tree[1].ID)
	assert.Nil(t, tree[1].Children)
}

func TestBuildMenuTreePreservesSiblingOrder(t *testing.T) {
	menus := []models.Menu{
		menuWithID(5, 0, "乙"),
		menuWithID(3, 0, "甲"),
		menuWithID(8, 5, "乙二"),
		menuWithID(7, 5, "乙一"),
	}

	tree := BuildMenuTree(menus)
	require.Len(t, tree, 2)
	// 同级顺序保持输入顺序，不按ID排序
	assert.Equal(t, int64(5), tree[0].ID)
	assert.Equal(t, int64(3), tree[1].ID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, int64(8), tree[0].Children[0].ID)
	assert.Equal(t, int64(7), tree[0].Children[1].ID)
}

func TestBuildMenuTreeEmpty(t *testing.T) {
	assert.Nil(t, BuildMenuTree(nil))
	assert.Nil(t, BuildMenuTree([]models.Menu{}))
}

func TestBuildMenuTreeOrphanParent(t *testing.T) {
	// 父节点不在输入中的节点既不是根也挂不上树，直接丢弃
	menus := []models.Menu{
		menuWithID(1, 0, "根"),
		menuWithID(2, 99, "孤儿"),
	}
	tree := BuildMenuTree(menus)
	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].ID)
}

func TestMenuServiceGetMenuTreeSortsBySort(t *testing.T) {
	svc := newMenuService(newTestDB(t))

	second, err := svc.Create(&models.Menu{ParentID: 0, Name: "乙目录", Sort: 2, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	first, err := svc.Create(&models.Menu{ParentID: 0, Name: "甲目录", Sort: 1, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	child, err := svc.Create(&models.Menu{ParentID: first.ID, Name: "甲子项", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)

	tree, err := svc.GetMenuTree()
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, first.ID, tree[0].ID)
	assert.Equal(t, second.ID, tree[1].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child.ID, tree[0].Children[0].ID)
}

func TestMenuServiceGetMenuTreeExcludesDeleted(t *testing.T) {
	svc := newMenuService(newTestDB(t))

	root, err := svc.Create(&models.Menu{ParentID: 0, Name: "目录", Sort: 1, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	gone, err := svc.Create(&models.Menu{ParentID: root.ID, Name: "将删", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(gone.ID))

	tree, err := svc.GetMenuTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Nil(t, tree[0].Children)
}

func TestMenuServiceGetMenusByRoleIds(t *testing.T) {
	database := newTestDB(t)
	svc := newMenuService(database)
	roleMenus := NewRoleMenuService(database)

	root, err := svc.Create(&models.Menu{ParentID: 0, Name: "系统管理", Sort: 1, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	visible, err := svc.Create(&models.Menu{ParentID: root.ID, Name: "用户管理", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	hidden, err := svc.Create(&models.Menu{ParentID: root.ID, Name: "角色管理", Sort: 2, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)

	require.NoError(t, roleMenus.AssignMenusToRole(1, []int64{root.ID, visible.ID}))

	menus, err := svc.GetMenusByRoleIds([]int64{1})
	require.NoError(t, err)
	require.Len(t, menus, 2)
	for _, menu := range menus {
		assert.NotEqual(t, hidden.ID, menu.ID)
	}

	// 空角色集合直接返回空列表
	empty, err := svc.GetMenusByRoleIds(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestMenuServiceGetMenuTreeByRoleIds(t *testing.T) {
	database := newTestDB(t)
	svc := newMenuService(database)
	roleMenus := NewRoleMenuService(database)

	root, err := svc.Create(&models.Menu{ParentID: 0, Name: "系统管理", Sort: 1, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	child, err := svc.Create(&models.Menu{ParentID: root.ID, Name: "用户管理", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)

	require.NoError(t, roleMenus.AssignMenusToRole(1, []int64{root.ID, child.ID}))

	tree, err := svc.GetMenuTreeByRoleIds([]int64{1})
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child.ID, tree[0].Children[0].ID)

	// 无角色时得到空树
	empty, err := svc.GetMenuTreeByRoleIds(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMenuServiceDeleteManyCascadesRoleMenus(t *testing.T) {
	database := newTestDB(t)
	svc := newMenuService(database)
	roleMenus := NewRoleMenuService(database)

	first, err := svc.Create(&models.Menu{ParentID: 0, Name: "菜单甲", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	second, err := svc.Create(&models.Menu{ParentID: 0, Name: "菜单乙", Sort: 2, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	require.NoError(t, roleMenus.AssignMenusToRole(1, []int64{first.ID, second.ID}))

	require.NoError(t, svc.DeleteMany([]int64{first.ID, second.ID, 9999}))

	// 关联行不得比被删除的菜单活得久
	for _, id := range []int64{first.ID, second.ID} {
		_, err = svc.FindByID(id, false)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		roleIDs, err := svc.GetMenuRoleIds(id)
		require.NoError(t, err)
		assert.Empty(t, roleIDs)
	}

	assert.ErrorIs(t, svc.DeleteMany([]int64{first.ID}), ErrRecordNotFound)
}

func TestMenuServiceDeleteCascadesRoleMenus(t *testing.T) {
	database := newTestDB(t)
	svc := newMenuService(database)
	roleMenus := NewRoleMenuService(database)

	created, err := svc.Create(&models.Menu{ParentID: 0, Name: "将删菜单", Sort: 1, Type: models.MenuTypeItem, Status: models.MenuStatusEnabled})
	require.NoError(t, err)
	require.NoError(t, roleMenus.AssignMenusToRole(1, []int64{created.ID}))

	require.NoError(t, svc.Delete(created.ID))

	roleIDs, err := svc.GetMenuRoleIds(created.ID)
	require.NoError(t, err)
	assert.Empty(t, roleIDs)
}
