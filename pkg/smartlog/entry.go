package smartlog

import "fmt"

// truncateMessage 将超长消息截断为 MaxMessageLen-3 字节并追加截断标记，
// 截断后恰好 MaxMessageLen 字节。未超长的消息原样返回。
// 截断写入独立缓冲区，原始字符串不受影响。
func truncateMessage(message string) string {
	if len(message) <= MaxMessageLen {
		return message
	}
	buf := make([]byte, 0, MaxMessageLen)
	buf = append(buf, message[:MaxMessageLen-len(truncationMarker)]...)
	buf = append(buf, truncationMarker...)
	return string(buf)
}

// renderEntry 渲染一条完整日志行：
//
//	[<ts> ns] [PID = <pid>] [MESSAGE = <msg>]\n
//
// 渲染进容量为 capacity 的缓冲区，超出返回 [ErrEntryOverflow]。
// 消息上限 256、缓冲区 1024 的默认约束下溢出不可能发生，
// 但这是检查出来的结论，不是假设。
func renderEntry(ts uint64, pid int, message string, capacity int) ([]byte, error) {
	buf := make([]byte, 0, capacity)
	buf = fmt.Appendf(buf, "[%d ns] [PID = %d] [MESSAGE = %s]\n", ts, pid, truncateMessage(message))
	if len(buf) > capacity {
		return nil, fmt.Errorf("entry length %d exceeds capacity %d: %w", len(buf), capacity, ErrEntryOverflow)
	}
	return buf, nil
}
