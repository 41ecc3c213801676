//go:build unix

package xio

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isInterrupted 判断错误是否为信号中断（EINTR）。
// os.File 的错误链中 Errno 位于 *fs.PathError 之下，用 errors.Is 穿透匹配。
func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
