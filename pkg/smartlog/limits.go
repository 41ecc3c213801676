package smartlog

import "os"

// 缓冲与文件尺寸约束。
const (
	// MaxMessageLen 消息最大字节数，超过则截断为 MaxMessageLen-3 字节并追加 "..."。
	MaxMessageLen = 256

	// MaxPathLen 日志目标路径最大字节数。
	MaxPathLen = 4096

	// entryBufferCap 格式化缓冲区容量，渲染后的条目不得超过此长度。
	entryBufferCap = 1024

	// truncationMarker 截断标记，追加在被截断消息的末尾。
	truncationMarker = "..."

	// BackupSuffix 备份文件后缀：轮转时活动文件 rename 为 <path><BackupSuffix>。
	BackupSuffix = ".1"
)

// DefaultFileMode 日志文件权限（rw-r-----）。
// 打开时固定使用此模式，已存在文件的权限不会被提升。
const DefaultFileMode os.FileMode = 0o640
