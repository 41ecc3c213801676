package smartlog

import "errors"

// 每个写入阶段的失败对应独立的哨兵错误，不降级为笼统失败。
// 底层 OS 错误通过 %w 链保留，可用 errors.Is 向上匹配哨兵、
// 向下匹配具体 errno。
var (
	// ErrInvalidArgument 路径或消息为空、超长或格式非法，
	// 或启用轮转时字节上限为零。校验失败不产生任何文件系统副作用。
	ErrInvalidArgument = errors.New("smartlog: invalid argument")

	// ErrTargetIsDirectory 日志目标路径是一个目录。
	ErrTargetIsDirectory = errors.New("smartlog: log target is a directory")

	// ErrClockUnavailable 读取实时时钟失败。
	// 时钟失败与"成功读到 0"是可区分的两种结果。
	ErrClockUnavailable = errors.New("smartlog: realtime clock unavailable")

	// ErrEntryOverflow 格式化后的条目超出内部缓冲区容量。
	ErrEntryOverflow = errors.New("smartlog: formatted entry exceeds buffer capacity")

	// ErrRotateFailed 轮转失败（备份删除或 rename 出错）。
	ErrRotateFailed = errors.New("smartlog: rotation failed")

	// ErrOpenFailed 打开或创建日志文件失败。
	ErrOpenFailed = errors.New("smartlog: open log file failed")

	// ErrWriteFailed 写入条目失败（含零字节写入异常）。
	// 此时目标文件尾部可能含有截断的半行。
	ErrWriteFailed = errors.New("smartlog: write log entry failed")

	// ErrSyncFailed 数据或目录元数据落盘失败。
	ErrSyncFailed = errors.New("smartlog: sync to stable storage failed")

	// ErrCloseFailed 关闭日志文件失败。
	ErrCloseFailed = errors.New("smartlog: close log file failed")

	// ErrProbeFailed 探测文件状态失败（not-found 之外的 stat 类错误）。
	ErrProbeFailed = errors.New("smartlog: probe file state failed")
)
