package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// 服务层通用错误。各实体服务可在此基础上定义更具体的错误，
// 处理器层通过 errors.Is 判断错误种类后映射为响应码。
var (
	// ErrRecordNotFound 表示按条件未找到存活记录
	ErrRecordNotFound = errors.New("未找到指定记录")
	// ErrRecordConflict 表示唯一性约束冲突
	ErrRecordConflict = errors.New("记录已存在")
	// ErrRecordNotDeleted 表示对未删除的记录执行恢复操作
	ErrRecordNotDeleted = errors.New("该记录未被删除，无需恢复")
	// ErrStorage 表示未被进一步分类的底层存储错误
	ErrStorage = errors.New("存储操作失败")
)

// classifyStorageError 将底层 GORM 错误归类为服务层错误。
// 已经是服务层错误的（如内部调用抛出的 ErrRecordNotFound）原样透传，不再包装。
func classifyStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrRecordConflict) ||
		errors.Is(err, ErrRecordNotDeleted) || errors.Is(err, ErrStorage) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	// GORM 会把数据库的唯一约束违例错误包装起来，
	// 对于 SQLite 错误信息包含 "UNIQUE constraint failed"
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return fmt.Errorf("%w: %v", ErrRecordConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
