// sentinel 是基于崩溃安全日志写入器的心跳守护进程。
//
// 周期性地向日志文件追加一条心跳记录，进程启动和退出时各写一条
// 标记记录。写入服务受监管：单次写入失败按指数退避重试，不会导致
// 进程退出。
//
// 用法:
//
//	sentinel [选项] <path>
//
// 选项:
//
//	-i, --interval       心跳间隔 (默认: 10s)
//	-d, --durable        每条记录落盘（fdatasync + 父目录 fsync）
//	-m, --max-bytes      日志文件大小上限（字节），超过后轮转 (默认: 1 MiB)
//
// 退出码:
//
//	0: 收到终止信号后优雅退出
//	1: 运行失败
//	2: 参数错误
//
// 示例:
//
//	sentinel /var/log/sentinel.log
//	sentinel -d -i 5s -m 4194304 /var/log/sentinel.log
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/smartlog/pkg/lifecycle/xrun"
	"github.com/omeyang/smartlog/pkg/smartlog"
	"github.com/omeyang/smartlog/pkg/util/xfile"
	"github.com/omeyang/smartlog/pkg/util/xproc"
)

const (
	defaultInterval = 10 * time.Second
	defaultMaxBytes = 1 << 20
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "sentinel",
		Usage:     "周期性写入心跳记录的守护进程",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "心跳间隔",
				Value:   defaultInterval,
			},
			&cli.BoolFlag{
				Name:    "durable",
				Aliases: []string{"d"},
				Usage:   "每条记录落盘（fdatasync + 父目录 fsync）",
			},
			&cli.Uint64Flag{
				Name:    "max-bytes",
				Aliases: []string{"m"},
				Usage:   "日志文件大小上限（字节）",
				Value:   defaultMaxBytes,
			},
		},
		Action: sentinelAction,
	}
}

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// sentinelAction 运行心跳服务直到收到终止信号。
func sentinelAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return &usageError{msg: fmt.Sprintf("expected <path>, got %d args", cmd.Args().Len())}
	}
	path := cmd.Args().Get(0)
	interval := cmd.Duration("interval")
	if interval <= 0 {
		return &usageError{msg: "interval must be positive"}
	}

	opts := []smartlog.Option{
		smartlog.WithDurable(cmd.Bool("durable")),
		smartlog.WithMaxBytes(cmd.Uint64("max-bytes")),
	}

	logger := slog.Default()

	if err := xfile.EnsureDir(path); err != nil {
		return &usageError{msg: err.Error()}
	}

	logger.Info("starting",
		slog.String("process", xproc.ProcessName()),
		slog.Int("pid", xproc.ProcessID()),
		slog.String("path", path),
	)

	// 启动标记先于心跳服务写入，参数错误（如目标是目录）在此暴露。
	if err := smartlog.WriteEntry(path, "sentinel started", opts...); err != nil {
		if errors.Is(err, smartlog.ErrInvalidArgument) {
			return &usageError{msg: err.Error()}
		}
		return err
	}

	seq := 0
	heartbeat := xrun.Ticker(interval, false, func(ctx context.Context) error {
		seq++
		return smartlog.WriteEntry(path, fmt.Sprintf("heartbeat #%d", seq), opts...)
	})

	err := xrun.RunWithOptions(ctx,
		[]xrun.Option{
			xrun.WithName("sentinel"),
			xrun.WithLogger(logger),
		},
		xrun.Supervise("heartbeat", heartbeat,
			xrun.WithSuperviseLogger(logger),
		),
	)

	// 退出标记尽力写入，失败不覆盖主流程的退出原因
	if werr := smartlog.WriteEntry(path, "sentinel stopped", opts...); werr != nil {
		logger.Warn("failed to write shutdown entry", slog.Any("error", werr))
	}

	// 信号退出是正常关闭
	if errors.Is(err, xrun.ErrSignal) {
		logger.Info("shut down on signal")
		return nil
	}
	return err
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
