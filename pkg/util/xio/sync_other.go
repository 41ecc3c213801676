//go:build !linux

package xio

import "os"

// SyncData 将 f 的数据刷到稳定存储。
// 非 Linux 平台没有可移植的 fdatasync，退化为完整 fsync（File.Sync）。
func SyncData(f *os.File) error {
	if f == nil {
		return ErrNilFile
	}
	return f.Sync()
}
