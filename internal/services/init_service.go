package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

// InitService 负责系统启动时的初始数据：
// 默认角色、系统菜单、角色菜单授权以及默认管理员账号。
// 所有写入均先查后插，重复启动不会产生重复数据。
type InitService struct {
	db        *gorm.DB
	users     *UserService
	roles     *RoleService
	roleMenus *RoleMenuService
	userRoles *UserRoleService
}

// NewInitService 创建一个新的 InitService 实例
func NewInitService(db *gorm.DB, users *UserService, roles *RoleService, roleMenus *RoleMenuService, userRoles *UserRoleService) *InitService {
	return &InitService{
		db:        db,
		users:     users,
		roles:     roles,
		roleMenus: roleMenus,
		userRoles: userRoles,
	}
}

// Init 执行全部初始化步骤
func (s *InitService) Init() error {
	if err := s.initRoles(); err != nil {
		return err
	}
	if err := s.initMenus(); err != nil {
		return err
	}
	if err := s.initRoleMenus(); err != nil {
		return err
	}
	return s.initAdminUser()
}

func strPtr(v string) *string {
	return &v
}

// initRoles 初始化默认角色
func (s *InitService) initRoles() error {
	roles := []models.Role{
		{Name: "超级管理员", Code: "admin", Description: strPtr("系统超级管理员，拥有所有权限"), Status: models.RoleStatusEnabled},
		{Name: "普通用户", Code: "user", Description: strPtr("普通用户，拥有基本权限"), Status: models.RoleStatusEnabled},
	}

	for i := range roles {
		var existing models.Role
		err := s.db.Where("code = ?", roles[i].Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return classifyStorageError(err)
		}
		if err := s.db.Create(&roles[i]).Error; err != nil {
			return classifyStorageError(err)
		}
		log.Printf("初始化角色: %s (%s)", roles[i].Name, roles[i].Code)
	}
	return nil
}

// initMenus 初始化系统菜单（系统管理目录 + 个人中心目录及其子菜单）
func (s *InitService) initMenus() error {
	type seedMenu struct {
		menu     models.Menu
		children []models.Menu
	}

	seeds := []seedMenu{
		{
			menu: models.Menu{
				ParentID: 0, Name: "系统管理", Path: strPtr("/system"), Component: strPtr("Layout"),
				Icon: strPtr("setting"), Sort: 1, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled,
			},
			children: []models.Menu{
				{Name: "用户管理", Path: strPtr("/system/user"), Component: strPtr("system/user/index"),
					Icon: strPtr("user"), Sort: 1, Type: models.MenuTypeItem,
					Permission: strPtr("system:user:list"), Status: models.MenuStatusEnabled},
				{Name: "角色管理", Path: strPtr("/system/role"), Component: strPtr("system/role/index"),
					Icon: strPtr("peoples"), Sort: 2, Type: models.MenuTypeItem,
					Permission: strPtr("system:role:list"), Status: models.MenuStatusEnabled},
				{Name: "菜单管理", Path: strPtr("/system/menu"), Component: strPtr("system/menu/index"),
					Icon: strPtr("tree-table"), Sort: 3, Type: models.MenuTypeItem,
					Permission: strPtr("system:menu:list"), Status: models.MenuStatusEnabled},
			},
		},
		{
			menu: models.Menu{
				ParentID: 0, Name: "个人中心", Path: strPtr("/profile"), Component: strPtr("Layout"),
				Icon: strPtr("user"), Sort: 10, Type: models.MenuTypeDirectory, Status: models.MenuStatusEnabled,
			},
			children: []models.Menu{
				{Name: "个人信息", Path: strPtr("/profile/index"), Component: strPtr("profile/index"),
					Icon: strPtr("user"), Sort: 1, Type: models.MenuTypeItem,
					Permission: strPtr("system:profile:view"), Status: models.MenuStatusEnabled},
			},
		},
	}

	for i := range seeds {
		parentID, err := s.ensureMenu(&seeds[i].menu)
		if err != nil {
			return err
		}
		for j := range seeds[i].children {
			seeds[i].children[j].ParentID = parentID
			if _, err := s.ensureMenu(&seeds[i].children[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureMenu 按 (parentId, name) 查找菜单，不存在则创建，返回菜单ID
func (s *InitService) ensureMenu(menu *models.Menu) (int64, error) {
	var existing models.Menu
	err := s.db.Where("parent_id = ? AND name = ?", menu.ParentID, menu.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, classifyStorageError(err)
	}
	if err := s.db.Create(menu).Error; err != nil {
		return 0, classifyStorageError(err)
	}
	log.Printf("初始化菜单: %s", menu.Name)
	return menu.ID, nil
}

// initRoleMenus 初始化角色菜单授权：
// 管理员拥有全部菜单，普通用户只拥有个人中心。
func (s *InitService) initRoleMenus() error {
	adminRole, err := s.roles.FindByCode("admin")
	if err != nil {
		return err
	}
	userRole, err := s.roles.FindByCode("user")
	if err != nil {
		return err
	}

	var allMenus []models.Menu
	if err := s.db.Find(&allMenus).Error; err != nil {
		return classifyStorageError(err)
	}
	allMenuIDs := make([]int64, 0, len(allMenus))
	for _, menu := range allMenus {
		allMenuIDs = append(allMenuIDs, menu.ID)
	}

	var profileDir models.Menu
	if err := s.db.Where("parent_id = 0 AND name = ?", "个人中心").First(&profileDir).Error; err != nil {
		return classifyStorageError(err)
	}
	var profileChildren []models.Menu
	if err := s.db.Where("parent_id = ?", profileDir.ID).Find(&profileChildren).Error; err != nil {
		return classifyStorageError(err)
	}
	userMenuIDs := []int64{profileDir.ID}
	for _, menu := range profileChildren {
		userMenuIDs = append(userMenuIDs, menu.ID)
	}

	if err := s.roleMenus.AssignMenusToRole(adminRole.ID, allMenuIDs); err != nil {
		return err
	}
	return s.roleMenus.AssignMenusToRole(userRole.ID, userMenuIDs)
}

// 默认管理员账号。密码仅用于首次初始化，登录后应立即修改。
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// initAdminUser 初始化默认管理员账号并绑定管理员角色
func (s *InitService) initAdminUser() error {
	_, err := s.users.FindByUsername(defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return err
	}

	adminRole, err := s.roles.FindByCode("admin")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: defaultAdminUsername,
		Password: defaultAdminPassword,
		RealName: strPtr("系统管理员"),
		Status:   models.UserStatusEnabled,
	}
	if _, err := s.users.Create(admin, []int64{adminRole.ID}); err != nil {
		return err
	}
	log.Printf("初始化管理员账号: %s（请尽快修改默认密码）", defaultAdminUsername)
	return nil
}
