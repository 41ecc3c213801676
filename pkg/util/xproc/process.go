// Package xproc 提供当前进程的标识信息。
//
// ProcessID 用于日志条目的 PID 字段，ProcessName 用于命令行工具的诊断输出。
package xproc

import (
	"os"
	"path/filepath"
	"sync"
)

// osExecutable 是 os.Executable 的包级变量，供测试注入。
//
// 设计决策: 对于只有两个导出函数的小包，包级变量注入比依赖注入更简洁，
// 这也是 Go 生态中广泛使用的测试模式。
var osExecutable = os.Executable

var (
	nameOnce  sync.Once
	nameValue string
)

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// baseName 提取路径的基础文件名。
// [filepath.Base] 的特殊返回值（"."、".."、路径分隔符）归一化为空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// resolveName 解析进程名称：优先 os.Executable（不受 os.Args 修改影响），
// 失败时回退 os.Args[0]，两者都不可用时返回空字符串。
func resolveName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// ProcessName 返回当前进程名称（不含路径）。
// 首次调用时解析并缓存（包括空字符串结果），后续调用无系统调用开销。
//
// 设计决策: 返回 string 而非 (string, error)。进程名的典型用途是诊断输出
// 这类"尽力获取"场景，空字符串本身已是充分的失败信号，强制 error 只会让
// 每个调用点多一段 if err != nil { name = "unknown" }。
func ProcessName() string {
	nameOnce.Do(func() {
		nameValue = resolveName()
	})
	return nameValue
}
