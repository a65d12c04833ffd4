package models

// 角色状态
const (
	RoleStatusDisabled = 0
	RoleStatusEnabled  = 1
)

// Role 对应于数据库中的 sys_role 表
type Role struct {
	Model
	Name        string  `json:"name" gorm:"column:name;not null;size:50"`
	Code        string  `json:"code" gorm:"column:code;unique;not null;size:50"` // 角色编码，如 "admin"
	Description *string `json:"description,omitempty" gorm:"column:description;size:200"`
	Status      int     `json:"status" gorm:"column:status;not null;default:1"`
}

// TableName 指定 Role 结构体对应的数据库表名
func (Role) TableName() string {
	return "sys_role"
}
