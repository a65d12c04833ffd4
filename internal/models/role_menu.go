package models

// RoleMenu 对应于数据库中的 sys_role_menu 关联表，
// 记录角色与菜单的多对多关系。
type RoleMenu struct {
	Model
	RoleID int64 `json:"roleId" gorm:"column:role_id;not null;index"`
	MenuID int64 `json:"menuId" gorm:"column:menu_id;not null;index"`
}

// TableName 指定 RoleMenu 结构体对应的数据库表名
func (RoleMenu) TableName() string {
	return "sys_role_menu"
}
