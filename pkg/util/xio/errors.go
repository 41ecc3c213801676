package xio

import "errors"

var (
	// ErrNilWriter 表示写入目标为 nil。
	ErrNilWriter = errors.New("xio: writer is nil")

	// ErrNilFile 表示文件参数为 nil。
	ErrNilFile = errors.New("xio: file is nil")

	// ErrZeroWrite 表示一次写入报告零字节且无错误。
	// 这不是瞬时中断而是输出端失效，不会被重试。
	ErrZeroWrite = errors.New("xio: write returned zero bytes")
)
