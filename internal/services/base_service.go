package services

import (
	"gorm.io/gorm"

	"github.com/lunjingjie/midway-base-framework/internal/models"
)

// Filter 是按列值过滤的查询条件，直接交给 GORM 的 Where 使用
type Filter map[string]interface{}

// PageResult 是分页查询的统一返回结构
type PageResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// BaseService 提供对单一实体类型的通用生命周期操作：
// 创建、查询、分页、字段合并更新、软删除与恢复。
// 具体实体服务通过组合 BaseService 复用这些操作，并在自己的方法中
// 叠加实体特有的逻辑（如创建用户前加密密码）。
type BaseService[T models.Entity] struct {
	db *gorm.DB
}

// NewBaseService 创建一个绑定到指定实体类型的 BaseService
func NewBaseService[T models.Entity](db *gorm.DB) *BaseService[T] {
	return &BaseService[T]{db: db}
}

// DB 返回底层数据库句柄，供组合方编排跨服务事务
func (s *BaseService[T]) DB() *gorm.DB {
	return s.db
}

// scope 根据 withDeleted 决定是否包含已软删除的记录
func (s *BaseService[T]) scope(tx *gorm.DB, withDeleted bool) *gorm.DB {
	if withDeleted {
		return tx.Unscoped()
	}
	return tx
}

// Create 创建实体，唯一约束冲突返回 ErrRecordConflict
func (s *BaseService[T]) Create(entity *T) (*T, error) {
	if err := s.db.Create(entity).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return entity, nil
}

// CreateMany 批量创建实体。整批在一个事务中执行，任一条失败则全部回滚。
func (s *BaseService[T]) CreateMany(entities []*T) ([]*T, error) {
	if len(entities) == 0 {
		return entities, nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, entity := range entities {
			if err := tx.Create(entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return entities, nil
}

// FindByID 根据主键查找实体，withDeleted 为 true 时包含已软删除的记录
func (s *BaseService[T]) FindByID(id int64, withDeleted bool) (*T, error) {
	var entity T
	if err := s.scope(s.db, withDeleted).First(&entity, id).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return &entity, nil
}

// FindOne 根据条件查找单个实体
func (s *BaseService[T]) FindOne(filter Filter, withDeleted bool) (*T, error) {
	var entity T
	query := s.scope(s.db, withDeleted)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.First(&entity).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return &entity, nil
}

// FindAll 根据条件查找全部实体
func (s *BaseService[T]) FindAll(filter Filter, withDeleted bool) ([]T, error) {
	var entities []T
	query := s.scope(s.db, withDeleted)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, classifyStorageError(err)
	}
	return entities, nil
}

// Count 统计满足条件的实体数量
func (s *BaseService[T]) Count(filter Filter, withDeleted bool) (int64, error) {
	var total int64
	query := s.scope(s.db.Model(new(T)), withDeleted)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, classifyStorageError(err)
	}
	return total, nil
}

// FindByPage 分页查询。page 和 pageSize 最小为 1，total 为满足过滤条件的总数。
func (s *BaseService[T]) FindByPage(page, pageSize int, filter Filter, withDeleted bool) (*PageResult[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total, err := s.Count(filter, withDeleted)
	if err != nil {
		return nil, err
	}

	var items []T
	query := s.scope(s.db, withDeleted)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, classifyStorageError(err)
	}

	return &PageResult[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update 按字段合并更新实体：先加载存活记录（不存在或已删除返回
// ErrRecordNotFound），再将 partial 中的非零值字段合并到已有记录上。
// 读取与写入在同一事务内完成，避免并发合并丢失更新。
func (s *BaseService[T]) Update(id int64, partial *T) (*T, error) {
	var updated *T
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Updates(partial).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return updated, nil
}

// UpdateFields 按列名集合更新实体。与 Update 的结构体合并不同，
// 集合中显式携带的零值（如 parent_id=0、sort=0）也会写入，
// 供"缺省与零需要区分"的更新端点使用。读取与写入在同一事务内完成。
func (s *BaseService[T]) UpdateFields(id int64, fields map[string]interface{}) (*T, error) {
	var updated *T
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&existing).Updates(fields).Error; err != nil {
				return err
			}
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return updated, nil
}

// Delete 软删除实体。记录不存在或已被删除时返回 ErrRecordNotFound。
func (s *BaseService[T]) Delete(id int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	return classifyStorageError(err)
}

// DeleteMany 批量软删除。不存在或已删除的ID被忽略，
// 仅当没有任何ID命中存活记录时返回 ErrRecordNotFound。
func (s *BaseService[T]) DeleteMany(ids []int64) error {
	if len(ids) == 0 {
		return ErrRecordNotFound
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var liveIDs []int64
		if err := tx.Model(new(T)).Where("id IN ?", ids).Pluck("id", &liveIDs).Error; err != nil {
			return err
		}
		if len(liveIDs) == 0 {
			return ErrRecordNotFound
		}
		return tx.Where("id IN ?", liveIDs).Delete(new(T)).Error
	})
	return classifyStorageError(err)
}

// Restore 恢复已软删除的实体：记录完全不存在返回 ErrRecordNotFound，
// 记录存活（未被删除）返回 ErrRecordNotDeleted。
func (s *BaseService[T]) Restore(id int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Unscoped().First(&existing, id).Error; err != nil {
			return err
		}
		if !existing.IsDeleted() {
			return ErrRecordNotDeleted
		}
		return tx.Unscoped().Model(&existing).Update("delete_time", nil).Error
	})
	return classifyStorageError(err)
}

// RestoreMany 批量恢复。与 DeleteMany 相同的容错策略：
// 只作用于既存在又已被删除的子集，子集为空时返回 ErrRecordNotFound。
func (s *BaseService[T]) RestoreMany(ids []int64) error {
	if len(ids) == 0 {
		return ErrRecordNotFound
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var deletedIDs []int64
		if err := tx.Unscoped().Model(new(T)).
			Where("id IN ? AND delete_time IS NOT NULL", ids).
			Pluck("id", &deletedIDs).Error; err != nil {
			return err
		}
		if len(deletedIDs) == 0 {
			return ErrRecordNotFound
		}
		return tx.Unscoped().Model(new(T)).
			Where("id IN ?", deletedIDs).
			Update("delete_time", nil).Error
	})
	return classifyStorageError(err)
}
