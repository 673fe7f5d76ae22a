//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前准备 Android 存储目录
//
// gdata 在 Android 上写入 /data/data/{package}/saves，但不会创建该目录。
//
// 返回：
//   - error: 无法识别包名、创建目录失败或目录不可写时返回错误
func EnsureStorageDir() error {
	dir, err := androidSavesDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回 gdata 的存储目录（无法识别包名时返回空字符串）
func GetStoragePath() string {
	dir, err := androidSavesDir()
	if err != nil {
		return ""
	}
	return dir
}

// androidSavesDir 根据 /proc/self/cmdline 中的包名计算存储目录
func androidSavesDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}

	// cmdline 以 NUL 分隔参数，第一个参数就是包名
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	pkg := string(bytes.TrimSpace(cmdline))
	if pkg == "" {
		return "", fmt.Errorf("failed to detect Android package: empty /proc/self/cmdline")
	}

	return filepath.Join("/data/data", pkg, "saves"), nil
}
