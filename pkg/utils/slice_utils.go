package utils

// UniqueInt64 返回去重后的切片，保留首次出现的顺序。
// nil 输入返回空切片而非 nil，方便直接序列化为 JSON 数组。
func UniqueInt64(values []int64) []int64 {
	result := make([]int64, 0, len(values))
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
