// smartlogctl 是崩溃安全日志写入器的命令行工具。
//
// 用法:
//
//	smartlogctl [选项] <path> <message>
//
// 选项:
//
//	-d, --durable        写入后执行 fdatasync + 父目录 fsync
//	-m, --max-bytes      日志文件大小上限（字节），超过后轮转到 <path>.1
//	-c, --config         YAML 配置文件路径（命令行选项优先于配置文件）
//
// 配置文件格式 (YAML):
//
//	durable: true
//	max_bytes: 1048576
//
// 超长消息（> 256 字节）会被截断并以 "..." 结尾，这不是错误。
//
// 退出码:
//
//	0: 写入成功
//	1: 写入失败（打开、写入、同步、轮转等运行时错误）
//	2: 参数错误（路径为空、消息为空、路径超长、max-bytes 为 0 等）
//	130: 被信号中断
//
// 示例:
//
//	smartlogctl /var/log/app.log "service started"
//	smartlogctl --durable /var/log/app.log "checkpoint reached"
//	smartlogctl -d -m 1048576 /var/log/app.log "rotating entry"
//	smartlogctl -c /etc/smartlog.yaml /var/log/app.log "from config"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/smartlog/pkg/smartlog"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "smartlogctl",
		Usage:     "向崩溃安全日志文件追加一条带时间戳的记录",
		ArgsUsage: "<path> <message>",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "durable",
				Aliases: []string{"d"},
				Usage:   "写入后执行 fdatasync + 父目录 fsync",
			},
			&cli.Uint64Flag{
				Name:    "max-bytes",
				Aliases: []string{"m"},
				Usage:   "日志文件大小上限（字节），超过后轮转到 <path>.1",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML 配置文件路径",
			},
		},
		Action: writeAction,
		Authors: []any{
			"SmartLog Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

// writeAction 执行一次日志写入。
func writeAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return &usageError{msg: fmt.Sprintf("expected <path> <message>, got %d args", args.Len())}
	}
	path := args.Get(0)
	message := args.Get(1)

	defaults, err := loadFileDefaults(cmd.String("config"))
	if err != nil {
		return err
	}

	// 命令行选项优先于配置文件
	durable := defaults.Durable
	if cmd.IsSet("durable") {
		durable = cmd.Bool("durable")
	}
	maxBytes := defaults.MaxBytes
	if cmd.IsSet("max-bytes") {
		maxBytes = cmd.Uint64("max-bytes")
	}

	opts := []smartlog.Option{smartlog.WithDurable(durable)}
	if maxBytes > 0 {
		opts = append(opts, smartlog.WithMaxBytes(maxBytes))
	}

	if err := smartlog.WriteEntry(path, message, opts...); err != nil {
		if errors.Is(err, smartlog.ErrInvalidArgument) {
			return &usageError{msg: err.Error()}
		}
		return err
	}
	return nil
}

// isCLIUsageError 判断错误是否为 CLI 框架产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "invalid value") ||
		strings.HasPrefix(msg, "Incorrect Usage")
}

func run() int {
	app := createApp()

	// 信号中断时取消 context，映射到退出码 130
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "中断")
			return 130
		}
		// CLI 框架产生的参数错误（如未知 flag）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
