package auth

import (
	"strings"
	"sync"
)

// skipList 是启动时构建的免认证路由表。
// 路由注册代码在注册路由的同时声明免认证的路由或整个路由组，
// 中间件按"路由优先、组兜底"的顺序直接查表，不做任何运行时反射。
type skipList struct {
	mu     sync.RWMutex
	routes map[string]struct{} // key: "METHOD 路由模板"，如 "POST /api/v1/auth/login"
	groups []string            // 免认证路由组的路径前缀
}

var skips = &skipList{routes: make(map[string]struct{})}

// SkipRoute 声明单个路由免认证
func SkipRoute(method, path string) {
	skips.mu.Lock()
	defer skips.mu.Unlock()
	skips.routes[method+" "+path] = struct{}{}
}

// SkipGroup 声明整个路由组免认证，prefix 为组的路径前缀
func SkipGroup(prefix string) {
	skips.mu.Lock()
	defer skips.mu.Unlock()
	skips.groups = append(skips.groups, prefix)
}

// IsSkipped 判断路由是否免认证：先查路由级标记，再按组前缀兜底
func IsSkipped(method, fullPath string) bool {
	if fullPath == "" {
		return false
	}
	skips.mu.RLock()
	defer skips.mu.RUnlock()
	if _, ok := skips.routes[method+" "+fullPath]; ok {
		return true
	}
	for _, prefix := range skips.groups {
		if strings.HasPrefix(fullPath, prefix) {
			return true
		}
	}
	return false
}

// ResetSkipList 清空免认证路由表，仅供测试使用
func ResetSkipList() {
	skips.mu.Lock()
	defer skips.mu.Unlock()
	skips.routes = make(map[string]struct{})
	skips.groups = nil
}
