//go:build !unix

package smartlog

import "time"

// readWallClock 非 Unix 平台回退到 time.Now，不提供可观测的失败路径。
func readWallClock() (uint64, error) {
	return uint64(time.Now().UnixNano()), nil
}
