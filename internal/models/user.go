package models

// 用户状态
const (
	UserStatusDisabled = 0 // 禁用
	UserStatusEnabled  = 1 // 启用
)

// User 对应于数据库中的 sys_user 表
type User struct {
	Model
	Username string  `json:"username" gorm:"column:username;unique;not null;size:50"`
	Password string  `json:"-" gorm:"column:password;not null;size:255"` // 密码哈希不通过JSON暴露
	RealName *string `json:"realName,omitempty" gorm:"column:real_name;size:50"`
	Email    *string `json:"email,omitempty" gorm:"column:email;size:100"`
	Phone    *string `json:"phone,omitempty" gorm:"column:phone;size:20"`
	Status   int     `json:"status" gorm:"column:status;not null;default:1"`
}

// TableName 指定 User 结构体对应的数据库表名
func (User) TableName() string {
	return "sys_user"
}
