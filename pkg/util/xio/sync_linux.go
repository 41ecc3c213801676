//go:build linux

package xio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SyncData 将 f 的数据刷到稳定存储。
//
// Linux 上使用 fdatasync：只刷数据和写回数据所必需的元数据（如文件长度），
// 不刷访问时间等无关元数据，比 fsync 少一次可能的元数据写入。
// EINTR 自动重试。
func SyncData(f *os.File) error {
	if f == nil {
		return ErrNilFile
	}
	for {
		err := unix.Fdatasync(int(f.Fd()))
		if err == nil {
			return nil
		}
		if err == unix.EINTR {
			continue
		}
		return fmt.Errorf("fdatasync %s: %w", f.Name(), err)
	}
}
