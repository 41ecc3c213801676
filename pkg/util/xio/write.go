package xio

import "io"

// WriteFull 将 p 完整写入 w。
//
// 对剩余未写入的后缀循环发起写入，直到整个缓冲区写完：
//   - 信号中断（EINTR）透明重试（见 isInterrupted 的平台实现）
//   - 部分写入后继续写剩余部分
//   - 零字节且无错误的写入返回 [ErrZeroWrite]（死输出，不重试）
//   - 其余错误原样返回
//
// 成功返回即保证整个缓冲区已写入；失败时已写入的字节数不确定，
// 调用方应将目标的尾部内容视为不可靠。
func WriteFull(w io.Writer, p []byte) error {
	if w == nil {
		return ErrNilWriter
	}
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return ErrZeroWrite
		}
	}
	return nil
}
