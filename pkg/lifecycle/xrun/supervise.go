package xrun

import (
	"context"
	"errors"
	"log/slog"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// 监管重启的默认退避参数。
const (
	defaultRestartDelay    = 500 * time.Millisecond
	defaultMaxRestartDelay = 30 * time.Second
)

// SuperviseOption 配置 Supervise 的选项函数。
type SuperviseOption func(*superviseOptions)

type superviseOptions struct {
	logger      *slog.Logger
	maxRestarts uint
	delay       time.Duration
	maxDelay    time.Duration
}

func defaultSuperviseOptions() *superviseOptions {
	return &superviseOptions{
		logger:   slog.Default(),
		delay:    defaultRestartDelay,
		maxDelay: defaultMaxRestartDelay,
	}
}

// WithSuperviseLogger 设置重启日志的记录器。
//
// 默认使用 slog.Default()。
func WithSuperviseLogger(logger *slog.Logger) SuperviseOption {
	return func(o *superviseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxRestarts 设置最大重启次数。
//
// 超过次数后返回最后一次的错误。默认 0 表示无限重启。
func WithMaxRestarts(n uint) SuperviseOption {
	return func(o *superviseOptions) {
		o.maxRestarts = n
	}
}

// WithRestartDelay 设置重启退避的起始延迟和上限。
//
// 重启间隔按指数增长，从 delay 开始，不超过 maxDelay。
// 非正数参数保持默认值（500ms / 30s）。
func WithRestartDelay(delay, maxDelay time.Duration) SuperviseOption {
	return func(o *superviseOptions) {
		if delay > 0 {
			o.delay = delay
		}
		if maxDelay > 0 {
			o.maxDelay = maxDelay
		}
	}
}

// Supervise 将服务函数包装为崩溃后自动重启的受监管服务。
//
// fn 返回非 nil 错误视为崩溃，按指数退避重启；返回 nil 视为干净退出，
// 不再重启。ctx 取消导致的退出（错误匹配 context.Canceled）不触发重启，
// 保证 Group 的协调关闭不被监管逻辑对抗。
//
// 返回的服务函数可直接注册到 [Group.Go] 或 [Run]：
//
//	err := xrun.Run(ctx,
//	    xrun.Supervise("heartbeat", heartbeatLoop,
//	        xrun.WithMaxRestarts(5),
//	    ),
//	)
func Supervise(name string, fn func(ctx context.Context) error, opts ...SuperviseOption) func(ctx context.Context) error {
	options := defaultSuperviseOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	return func(ctx context.Context) error {
		if fn == nil {
			return ErrNilFunc
		}

		retryOpts := []retry.Option{
			retry.Context(ctx),
			retry.Delay(options.delay),
			retry.MaxDelay(options.maxDelay),
			retry.DelayType(retry.BackOffDelay),
			// 只返回最后一个错误，简化调用方的错误处理
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				// ctx 取消传播出的错误不是崩溃，不重启
				return !errors.Is(err, context.Canceled)
			}),
			retry.OnRetry(func(n uint, err error) {
				// 注意：retry-go v5 中 OnRetry 的 n 从 0 开始，+1 转换为第几次重启
				options.logger.Warn("supervised service crashed, restarting",
					slog.String("service", name),
					slog.Uint64("restart", uint64(n)+1),
					slog.Any("error", err),
				)
			}),
		}

		// maxRestarts == 0 视为无限重启
		if options.maxRestarts == 0 {
			retryOpts = append(retryOpts, retry.UntilSucceeded())
		} else {
			retryOpts = append(retryOpts, retry.Attempts(options.maxRestarts+1))
		}

		return retry.New(retryOpts...).Do(func() error {
			return fn(ctx)
		})
	}
}
