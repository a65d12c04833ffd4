package models

import (
	"time"

	"gorm.io/gorm"
)

// Model 是所有实体共用的基础字段（主键、创建/更新时间、软删除标记）。
// DeletedAt 为 NULL 表示记录存活；被软删除后默认查询不可见，需 Unscoped 查询。
type Model struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time      `json:"createTime" gorm:"column:create_time;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"updateTime" gorm:"column:update_time;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleteTime,omitempty" gorm:"column:delete_time;index" swaggertype:"string" format:"date-time"`
}

// GetID 返回实体主键
func (m Model) GetID() int64 {
	return m.ID
}

// IsDeleted 判断实体是否已被软删除
func (m Model) IsDeleted() bool {
	return m.DeletedAt.Valid
}

// Entity 是通用生命周期服务对实体类型的约束，
// 由内嵌 Model 的实体自动满足。
type Entity interface {
	GetID() int64
	IsDeleted() bool
}
