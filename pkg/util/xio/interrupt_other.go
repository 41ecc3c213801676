//go:build !unix

package xio

// isInterrupted 在非 Unix 平台上恒为 false：没有可识别的信号中断语义。
func isInterrupted(error) bool {
	return false
}
