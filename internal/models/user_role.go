package models

// UserRole 对应于数据库中的 sys_user_role 关联表，
// 记录用户与角色的多对多关系。
type UserRole struct {
	Model
	UserID int64 `json:"userId" gorm:"column:user_id;not null;index"`
	RoleID int64 `json:"roleId" gorm:"column:role_id;not null;index"`
}

// TableName 指定 UserRole 结构体对应的数据库表名
func (UserRole) TableName() string {
	return "sys_user_role"
}
