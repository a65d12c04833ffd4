package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/handlers"
)

// SetupSystemRoutes 设置系统管理路由（用户、角色、菜单），全部需要认证
func SetupSystemRoutes(rg *gin.RouterGroup, user *handlers.UserHandler, role *handlers.RoleHandler, menu *handlers.MenuHandler) {
	userGroup := rg.Group("/user")
	{
		user.RegisterCrudRoutes(userGroup)
		userGroup.POST("/create", user.Create)
		userGroup.PUT("/update/:id", user.Update)
		userGroup.POST("/change-status/:id", user.ChangeStatus)
		userGroup.POST("/assign-roles/:id", user.AssignRoles)
		userGroup.GET("/role-ids/:id", user.RoleIds)
		userGroup.GET("/find-by-username", user.FindByUsername)
	}

	roleGroup := rg.Group("/role")
	{
		role.RegisterCrudRoutes(roleGroup)
		roleGroup.POST("/create", role.Create)
		roleGroup.PUT("/update/:id", role.Update)
		roleGroup.POST("/change-status/:id", role.ChangeStatus)
		roleGroup.POST("/assign-menus/:id", role.AssignMenus)
		roleGroup.GET("/menu-ids/:id", role.MenuIds)
		roleGroup.GET("/user-ids/:id", role.UserIds)
	}

	menuGroup := rg.Group("/menu")
	{
		menu.RegisterCrudRoutes(menuGroup)
		menuGroup.POST("/create", menu.Create)
		menuGroup.POST("/create-many", menu.CreateMany)
		menuGroup.PUT("/update/:id", menu.Update)
		menuGroup.POST("/change-status/:id", menu.ChangeStatus)
		menuGroup.GET("/tree", menu.Tree)
		menuGroup.GET("/user-tree", menu.UserTree)
		menuGroup.GET("/role-ids/:id", menu.RoleIds)
	}
}
