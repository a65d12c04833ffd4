package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRolesToUserReplacesAll(t *testing.T) {
	svc := NewUserRoleService(newTestDB(t))

	require.NoError(t, svc.AssignRolesToUser(1, []int64{1, 2}))
	require.NoError(t, svc.AssignRolesToUser(1, []int64{3}))

	roleIDs, err := svc.GetRoleIdsByUserId(1)
	require.NoError(t, err)
	// 旧集合被整体替换，只剩新集合
	assert.Equal(t, []int64{3}, roleIDs)
}

func TestAssignRolesToUserEmptyClearsAll(t *testing.T) {
	svc := NewUserRoleService(newTestDB(t))

	require.NoError(t, svc.AssignRolesToUser(1, []int64{1, 2}))
	require.NoError(t, svc.AssignRolesToUser(1, nil))

	roleIDs, err := svc.GetRoleIdsByUserId(1)
	require.NoError(t, err)
	assert.Empty(t, roleIDs)
	assert.NotNil(t, roleIDs)
}

func TestAssignRolesToUserDoesNotTouchOtherUsers(t *testing.T) {
	svc := NewUserRoleService(newTestDB(t))

	require.NoError(t, svc.AssignRolesToUser(1, []int64{1}))
	require.NoError(t, svc.AssignRolesToUser(2, []int64{1, 2}))
	require.NoError(t, svc.AssignRolesToUser(1, []int64{2}))

	others, err := svc.GetRoleIdsByUserId(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, others)
}

func TestGetUserIdsByRoleId(t *testing.T) {
	svc := NewUserRoleService(newTestDB(t))

	require.NoError(t, svc.AssignRolesToUser(1, []int64{10}))
	require.NoError(t, svc.AssignRolesToUser(2, []int64{10, 20}))

	userIDs, err := svc.GetUserIdsByRoleId(10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, userIDs)

	// 无关联的角色返回空切片而非 nil
	none, err := svc.GetUserIdsByRoleId(999)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestAssignMenusToRoleReplacesAll(t *testing.T) {
	svc := NewRoleMenuService(newTestDB(t))

	require.NoError(t, svc.AssignMenusToRole(1, []int64{1, 2, 3}))
	require.NoError(t, svc.AssignMenusToRole(1, []int64{2}))

	menuIDs, err := svc.GetMenuIdsByRoleId(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, menuIDs)
}

func TestGetMenuIdsByRoleIdsEmptyInput(t *testing.T) {
	svc := NewRoleMenuService(newTestDB(t))

	// 空输入不访问数据库，直接返回空切片
	menuIDs, err := svc.GetMenuIdsByRoleIds(nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, menuIDs)

	menuIDs, err = svc.GetMenuIdsByRoleIds([]int64{})
	require.NoError(t, err)
	assert.Equal(t, []int64{}, menuIDs)
}

func TestGetMenuIdsByRoleIdsUnionDeduplicates(t *testing.T) {
	svc := NewRoleMenuService(newTestDB(t))

	require.NoError(t, svc.AssignMenusToRole(1, []int64{1, 2}))
	require.NoError(t, svc.AssignMenusToRole(2, []int64{2, 3}))

	menuIDs, err := svc.GetMenuIdsByRoleIds([]int64{1, 2})
	require.NoError(t, err)
	// 两个角色的可见菜单取并集且去重
	assert.ElementsMatch(t, []int64{1, 2, 3}, menuIDs)
	assert.Len(t, menuIDs, 3)
}

func TestGetRoleIdsByMenuId(t *testing.T) {
	svc := NewRoleMenuService(newTestDB(t))

	require.NoError(t, svc.AssignMenusToRole(1, []int64{5}))
	require.NoError(t, svc.AssignMenusToRole(2, []int64{5, 6}))

	roleIDs, err := svc.GetRoleIdsByMenuId(5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, roleIDs)
}
