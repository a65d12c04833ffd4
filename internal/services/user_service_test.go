package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(db, NewUserRoleService(db))
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	svc := newUserService(newTestDB(t))

	created, err := svc.Create(&models.User{
		Username: "zhangsan",
		Password: "secret123",
		Status:   models.UserStatusEnabled,
	}, nil)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// 入库的是bcrypt哈希，不是明文
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}

func TestUserServiceCreateWithRoles(t *testing.T) {
	svc := newUserService(newTestDB(t))

	created, err := svc.Create(&models.User{
		Username: "lisi",
		Password: "secret123",
		Status:   models.UserStatusEnabled,
	}, []int64{1, 2})
	require.NoError(t, err)

	roleIDs, err := svc.GetUserRoleIds(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, roleIDs)
}

func TestUserServiceCreateDuplicateUsername(t *testing.T) {
	svc := newUserService(newTestDB(t))

	_, err := svc.Create(&models.User{Username: "wangwu", Password: "x", Status: models.UserStatusEnabled}, nil)
	require.NoError(t, err)

	_, err = svc.Create(&models.User{Username: "wangwu", Password: "y", Status: models.UserStatusEnabled}, nil)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserServiceCreateDuplicateOfDeletedUsername(t *testing.T) {
	svc := newUserService(newTestDB(t))

	created, err := svc.Create(&models.User{Username: "zhaoliu", Password: "x", Status: models.UserStatusEnabled}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(created.ID))

	// 软删除的用户仍占用用户名
	_, err = svc.Create(&models.User{Username: "zhaoliu", Password: "y", Status: models.UserStatusEnabled}, nil)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserServiceCreateInvalidProfile(t *testing.T) {
	svc := newUserService(newTestDB(t))

	_, err := svc.Create(&models.User{
		Username: "bademail",
		Password: "x",
		Email:    strp("not-an-email"),
		Status:   models.UserStatusEnabled,
	}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidEmailFormat)

	_, err = svc.Create(&models.User{
		Username: "badphone",
		Password: "x",
		Phone:    strp("23800138000"),
		Status:   models.UserStatusEnabled,
	}, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidPhoneNumberPrefix)
}

func TestUserServiceUpdateMergeAndRehash(t *testing.T) {
	svc := newUserService(newTestDB(t))
	created, err := svc.Create(&models.User{
		Username: "merge",
		Password: "oldpass",
		RealName: strp("旧名字"),
		Status:   models.UserStatusEnabled,
	}, nil)
	require.NoError(t, err)

	_, err = svc.Update(created.ID, &models.User{Password: "newpass", Email: strp("a@b.com")}, nil)
	require.NoError(t, err)

	found, err := svc.FindByID(created.ID, false)
	require.NoError(t, err)
	// 新密码生效且已加密；未携带字段保持不变
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.Password), []byte("newpass")))
	assert.Equal(t, "旧名字", *found.RealName)
	assert.Equal(t, "a@b.com", *found.Email)
}

func TestUserServiceUpdateReplacesRoles(t *testing.T) {
	svc := newUserService(newTestDB(t))
	created, err := svc.Create(&models.User{Username: "roles", Password: "x", Status: models.UserStatusEnabled}, []int64{1, 2})
	require.NoError(t, err)

	// roleIDs 为 nil 时不触碰关联
	_, err = svc.Update(created.ID, &models.User{RealName: strp("改名")}, nil)
	require.NoError(t, err)
	roleIDs, err := svc.GetUserRoleIds(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, roleIDs)

	// 非 nil 时整体替换
	_, err = svc.Update(created.ID, &models.User{}, []int64{3})
	require.NoError(t, err)
	roleIDs, err = svc.GetUserRoleIds(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, roleIDs)
}

func TestUserServiceDeleteCascadesRoles(t *testing.T) {
	svc := newUserService(newTestDB(t))
	created, err := svc.Create(&models.User{Username: "cascade", Password: "x", Status: models.UserStatusEnabled}, []int64{1, 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	// 用户与其角色关联同批消失
	_, err = svc.FindByID(created.ID, false)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	roleIDs, err := svc.GetUserRoleIds(created.ID)
	require.NoError(t, err)
	assert.Empty(t, roleIDs)
}

func TestUserServiceDeleteManyCascades(t *testing.T) {
	svc := newUserService(newTestDB(t))
	first, err := svc.Create(&models.User{Username: "batch1", Password: "x", Status: models.UserStatusEnabled}, []int64{1})
	require.NoError(t, err)
	second, err := svc.Create(&models.User{Username: "batch2", Password: "x", Status: models.UserStatusEnabled}, []int64{2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMany([]int64{first.ID, second.ID, 9999}))

	for _, id := range []int64{first.ID, second.ID} {
		_, err = svc.FindByID(id, false)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		roleIDs, err := svc.GetUserRoleIds(id)
		require.NoError(t, err)
		assert.Empty(t, roleIDs)
	}
}

func TestUserServiceChangeStatus(t *testing.T) {
	svc := newUserService(newTestDB(t))
	created, err := svc.Create(&models.User{Username: "toggle", Password: "x", Status: models.UserStatusEnabled}, nil)
	require.NoError(t, err)

	// 状态 0 通过单列更新落库
	_, err = svc.ChangeStatus(created.ID, models.UserStatusDisabled)
	require.NoError(t, err)
	found, err := svc.FindByID(created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDisabled, found.Status)

	_, err = svc.ChangeStatus(9999, models.UserStatusEnabled)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserServiceAssignRolesRequiresUser(t *testing.T) {
	svc := newUserService(newTestDB(t))
	assert.ErrorIs(t, svc.AssignRoles(9999, []int64{1}), ErrRecordNotFound)

	created, err := svc.Create(&models.User{Username: "assign", Password: "x", Status: models.UserStatusEnabled}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.AssignRoles(created.ID, []int64{5}))

	roleIDs, err := svc.GetUserRoleIds(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, roleIDs)
}

func TestUserServiceFindByUsername(t *testing.T) {
	svc := newUserService(newTestDB(t))
	_, err := svc.Create(&models.User{Username: "findme", Password: "x", Status: models.UserStatusEnabled}, nil)
	require.NoError(t, err)

	found, err := svc.FindByUsername("findme")
	require.NoError(t, err)
	assert.Equal(t, "findme", found.Username)

	_, err = svc.FindByUsername("nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
