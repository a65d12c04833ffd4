package models

// 菜单类型
const (
	MenuTypeDirectory = 0 // 目录
	MenuTypeItem      = 1 // 菜单
	MenuTypeButton    = 2 // 按钮
)

// 菜单状态
const (
	MenuStatusDisabled = 0
	MenuStatusEnabled  = 1
)

// Menu 对应于数据库中的 sys_menu 表。
// ParentID 为 0 表示顶级节点。
type Menu struct {
	Model
	ParentID   int64   `json:"parentId" gorm:"column:parent_id;not null;default:0;index"`
	Name       string  `json:"name" gorm:"column:name;not null;size:50"`
	Path       *string `json:"path,omitempty" gorm:"column:path;size:200"`           // 前端路由
	Component  *string `json:"component,omitempty" gorm:"column:component;size:200"` // 前端组件
	Icon       *string `json:"icon,omitempty" gorm:"column:icon;size:50"`
	Sort       int     `json:"sort" gorm:"column:sort;not null;default:0"`
	Type       int     `json:"type" gorm:"column:type;not null;default:1"`
	Permission *string `json:"permission,omitempty" gorm:"column:permission;size:100"` // 权限标识，如 system:user:list
	Status     int     `json:"status" gorm:"column:status;not null;default:1"`
}

// TableName 指定 Menu 结构体对应的数据库表名
func (Menu) TableName() string {
	return "sys_menu"
}

// MenuTreeNode 是菜单树的节点，Children 为空时在 JSON 中省略
type MenuTreeNode struct {
	Menu
	Children []*MenuTreeNode `json:"children,omitempty"`
}
