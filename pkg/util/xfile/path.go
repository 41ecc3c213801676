package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// containsNullByte 检测路径是否包含空字节。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 检测路径中是否包含 ".." 作为独立路径段。
// 逐字符扫描，零内存分配。同时将 '/' 和 '\' 视为分隔符，
// 以便在 Linux 上也能识别 Windows 风格的穿越写法。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// SanitizePath 校验并规范化日志目标路径。
//
// 拒绝：空路径、包含空字节的路径、以分隔符结尾的目录路径、
// 相对路径穿越（".." 路径段）。
// 接受绝对路径；绝对路径中的 ".." 会被 filepath.Clean 解析为合法
// 绝对路径（如 "/var/log/../tmp/a.log" -> "/tmp/a.log"），不视为穿越。
//
// 返回规范化后的路径。本函数只检查格式，不访问文件系统。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}

	// 尾部分隔符的检查必须在 Clean 之前，Clean 会移除尾部斜杠。
	// 反斜杠在 Linux 上是合法文件名字符，但以 "\" 结尾几乎总是
	// 跨平台拼接错误，统一拒绝。
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)

	// 规范化之后仍残留 ".." 段的只有相对路径穿越。
	// 不能用 strings.Contains(cleaned, "..")，会误伤 "app..2024.log" 这类文件名。
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}

	return cleaned, nil
}

// ParentDir 返回路径的父目录。
//
// 解析规则与底层 rename/创建操作的元数据归属一致：
//
//	"app.log"        -> "."    （无分隔符：当前目录）
//	"/app.log"       -> "/"    （根目录下的文件）
//	"/var/log/a.log" -> "/var/log"
//	"logs/a.log"     -> "logs"
//
// 只做字符串推导，不访问文件系统。
func ParentDir(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required: %w", ErrEmptyPath)
	}
	if containsNullByte(path) {
		return "", fmt.Errorf("path contains null byte: %w", ErrNullByte)
	}
	return filepath.Dir(path), nil
}
