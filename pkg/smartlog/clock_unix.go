//go:build unix

package smartlog

import "golang.org/x/sys/unix"

// readWallClock 通过 clock_gettime(CLOCK_REALTIME) 读取墙钟纳秒值。
//
// 直接走系统调用而非 time.Now：time.Now 的失败路径被运行时吞掉，
// 而本包的契约要求"时钟失败"与"成功读到 0"可区分。
func readWallClock() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return 0, err
	}
	return uint64(ts.Sec)*1_000_000_000 + uint64(ts.Nsec), nil
}
