package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

func newRoleService(db *gorm.DB) *RoleService {
	return NewRoleService(db, NewRoleMenuService(db), NewUserRoleService(db))
}

func TestRoleServiceCreateWithMenus(t *testing.T) {
	svc := newRoleService(newTestDB(t))

	created, err := svc.Create(&models.Role{
		Name:   "管理员",
		Code:   "admin",
		Status: models.RoleStatusEnabled,
	}, []int64{1, 2, 3})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	menuIDs, err := svc.GetRoleMenuIds(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, menuIDs)
}

func TestRoleServiceCreateDuplicateCode(t *testing.T) {
	svc := newRoleService(newTestDB(t))

	_, err := svc.Create(&models.Role{Name: "管理员", Code: "admin", Status: models.RoleStatusEnabled}, nil)
	require.NoError(t, err)

	_, err = svc.Create(&models.Role{Name: "另一个管理员", Code: "admin", Status: models.RoleStatusEnabled}, nil)
	assert.ErrorIs(t, err, ErrRoleCodeExists)
}

func TestRoleServiceCreateDuplicateOfDeletedCode(t *testing.T) {
	svc := newRoleService(newTestDB(t))

	created, err := svc.Create(&models.Role{Name: "临时角色", Code: "temp", Status: models.RoleStatusEnabled}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	// 软删除的角色仍占用编码
	_, err = svc.Create(&models.Role{Name: "新角色", Code: "temp", Status: models.RoleStatusEnabled}, nil)
	assert.ErrorIs(t, err, ErrRoleCodeExists)
}

func TestRoleServiceUpdateReplacesMenus(t *testing.T) {
	svc := newRoleService(newTestDB(t))
	created, err := svc.Create(&models.Role{Name: "运营", Code: "ops", Status: models.RoleStatusEnabled}, []int64{1, 2})
	require.NoError(t, err)

	// menuIDs 为 nil 时不触碰关联
	_, err = svc.Update(created.ID, &models.Role{Name: "运营部"}, nil)
	require.NoError(t, err)
	menuIDs, err := svc.GetRoleMenuIds(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, menuIDs)

	// 非 nil 时整体替换
	_, err = svc.Update(created.ID, &models.Role{}, []int64{3})
	require.NoError(t, err)
	menuIDs, err = svc.GetRoleMenuIds(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, menuIDs)

	found, err := svc.FindByID(created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "运营部", found.Name)
	assert.Equal(t, "ops", found.Code)
}

func TestRoleServiceDeleteCascades(t *testing.T) {
	database := newTestDB(t)
	svc := newRoleService(database)
	userRoles := NewUserRoleService(database)

	created, err := svc.Create(&models.Role{Name: "审计", Code: "audit", Status: models.RoleStatusEnabled}, []int64{1, 2})
	require.NoError(t, err)
	require.NoError(t, userRoles.AssignRolesToUser(7, []int64{created.ID}))

	require.NoError(t, svc.Delete(created.ID))

	// 角色、菜单关联、用户关联同批消失
	_, err = svc.FindByID(created.ID, false)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	menuIDs, err := svc.GetRoleMenuIds(created.ID)
	require.NoError(t, err)
	assert.Empty(t, menuIDs)
	userIDs, err := svc.GetRoleUserIds(created.ID)
	require.NoError(t, err)
	assert.Empty(t, userIDs)
}

func TestRoleServiceDeleteManyCascades(t *testing.T) {
	svc := newRoleService(newTestDB(t))
	first, err := svc.Create(&models.Role{Name: "角色一", Code: "r1", Status: models.RoleStatusEnabled}, []int64{1})
	require.NoError(t, err)
	second, err := svc.Create(&models.Role{Name: "角色二", Code: "r2", Status: models.RoleStatusEnabled}, []int64{2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMany([]int64{first.ID, second.ID, 9999}))

	for _, id := range []int64{first.ID, second.ID} {
		_, err = svc.FindByID(id, false)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		menuIDs, err := svc.GetRoleMenuIds(id)
		require.NoError(t, err)
		assert.Empty(t, menuIDs)
	}

	assert.ErrorIs(t, svc.DeleteMany([]int64{first.ID}), ErrRecordNotFound)
}

func TestRoleServiceAssignMenusRequiresRole(t *testing.T) {
	svc := newRoleService(newTestDB(t))
	assert.ErrorIs(t, svc.AssignMenus(9999, []int64{1}), ErrRecordNotFound)

	created, err := svc.Create(&models.Role{Name: "分配", Code: "grant", Status: models.RoleStatusEnabled}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.AssignMenus(created.ID, []int64{4, 5}))

	menuIDs, err := svc.GetRoleMenuIds(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{4, 5}, menuIDs)
}

func TestRoleServiceFindByCodeAndChangeStatus(t *testing.T) {
	svc := newRoleService(newTestDB(t))
	created, err := svc.Create(&models.Role{Name: "访客", Code: "guest", Status: models.RoleStatusEnabled}, nil)
	require.NoError(t, err)

	found, err := svc.FindByCode("guest")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.ChangeStatus(created.ID, models.RoleStatusDisabled)
	require.NoError(t, err)
	found, err = svc.FindByID(created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStatusDisabled, found.Status)
}
