package xrun

import (
	"errors"
	"fmt"
	"os"
)

// 错误定义
var (
	// ErrSignal 表示进程收到终止信号退出。
	// 使用 errors.Is(err, xrun.ErrSignal) 判断。
	ErrSignal = errors.New("xrun: terminated by signal")

	// ErrNilFunc 表示注册了 nil 的服务函数。
	ErrNilFunc = errors.New("xrun: nil service func")

	// ErrInvalidInterval 表示 Ticker 的周期不是正数。
	ErrInvalidInterval = errors.New("xrun: interval must be positive")
)

// SignalError 携带触发退出的具体信号。
type SignalError struct {
	Signal os.Signal
}

// Error 实现 error 接口。
func (e *SignalError) Error() string {
	return fmt.Sprintf("xrun: terminated by signal %v", e.Signal)
}

// Is 支持 errors.Is(err, ErrSignal)。
func (e *SignalError) Is(target error) bool {
	return target == ErrSignal
}

// Unwrap 支持 errors.Unwrap。
func (e *SignalError) Unwrap() error {
	return ErrSignal
}
