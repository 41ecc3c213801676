// Package xfile 提供面向日志目标文件的路径工具。
//
// 本包只做路径字符串层面的校验与推导，不触碰文件系统（EnsureDir 除外）：
//
//   - SanitizePath: 校验并规范化日志目标路径（空路径、空字节、目录路径、相对路径穿越）
//   - ParentDir: 推导路径的父目录（无分隔符时为 "."，根下文件为 "/"）
//   - EnsureDir: 确保文件的父目录存在
//
// # 空字节防护
//
// SanitizePath 和 ParentDir 均拒绝包含空字节（\x00）的路径。Linux 内核在 VFS 层
// 会在空字节处截断路径，导致 Go 代码与操作系统实际操作的路径不一致。
//
// # 路径穿越
//
// 穿越检测按路径段精确匹配：只有 ".." 作为独立路径段时才被拒绝，
// 以 ".." 开头的合法文件名（如 "..config"、"app..2024.log"）不受影响。
// 绝对路径中的 ".." 由 filepath.Clean 正常解析，不视为穿越。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/passwd")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
