package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueInt64(t *testing.T) {
	// 保留首次出现的顺序
	assert.Equal(t, []int64{3, 1, 2}, UniqueInt64([]int64{3, 1, 3, 2, 1}))
	assert.Equal(t, []int64{5}, UniqueInt64([]int64{5, 5, 5}))

	// nil 输入返回空切片而非 nil
	result := UniqueInt64(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
