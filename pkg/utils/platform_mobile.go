//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true，场景据此显示触摸操作提示
func IsMobile() bool {
	return true
}
