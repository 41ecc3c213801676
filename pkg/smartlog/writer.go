package smartlog

import (
	"fmt"
	"os"

	"github.com/omeyang/smartlog/pkg/util/xfile"
	"github.com/omeyang/smartlog/pkg/util/xio"
	"github.com/omeyang/smartlog/pkg/util/xproc"
)

// writeFull 是 xio.WriteFull 的包级变量，供测试注入写入失败。
// 注意：替换此变量的测试不可使用 t.Parallel()。
var writeFull = xio.WriteFull

// WriteEntry 将一条消息作为格式化日志行追加到 path。
//
// 这是本包唯一的公开入口。流水线严格自上而下：
//
//	校验 → 探测 → 格式化 → 轮转（可选） → 打开/创建 → 写入 → 落盘（可选） → 关闭
//
// 成功返回 nil：条目已完整追加（durable 时已落盘），所需轮转已完成。
// 失败返回分类错误（见 errors.go），文件系统停留在可明确描述的
// 部分状态：校验失败无任何副作用；写入失败后尾行可能截断；
// 轮转 rename 成功而目录 sync 失败时备份文件本身是完好的，
// 只是崩溃后的可见性可能滞后。
//
// 打开文件固定使用 O_WRONLY|O_CREATE|O_APPEND 和 [DefaultFileMode]，
// 无论文件是否已存在，不会提升既有文件的权限。
// 打开之后的每条失败路径都先释放文件描述符再返回。
func WriteEntry(path, message string, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// 校验：这一阶段失败不产生任何副作用。
	if message == "" {
		return fmt.Errorf("message is required: %w", ErrInvalidArgument)
	}
	if len(path) > MaxPathLen {
		return fmt.Errorf("path length %d exceeds %d: %w", len(path), MaxPathLen, ErrInvalidArgument)
	}
	clean, err := xfile.SanitizePath(path)
	if err != nil {
		return fmt.Errorf("invalid log path: %w: %w", ErrInvalidArgument, err)
	}
	if cfg.rotate && cfg.maxBytes == 0 {
		return fmt.Errorf("rotation ceiling must be positive: %w", ErrInvalidArgument)
	}

	// 探测：一次 stat，快照只喂给轮转决策。
	st, err := probePath(clean)
	if err != nil {
		return err
	}
	if st.isDir {
		return fmt.Errorf("log target %s: %w", clean, ErrTargetIsDirectory)
	}

	// 格式化：时钟失败必须上浮，不能把 0 当有效时间戳用。
	ts, err := clockNow()
	if err != nil {
		return fmt.Errorf("read realtime clock: %w: %w", ErrClockUnavailable, err)
	}
	entry, err := renderEntry(ts, xproc.ProcessID(), message, entryBufferCap)
	if err != nil {
		return err
	}

	// 轮转：只在启用且文件存在时参与决策。
	if cfg.rotate {
		if err := rotateIfNeeded(clean, &st, len(entry), cfg.maxBytes, cfg.durable); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(clean, os.O_WRONLY|os.O_CREATE|os.O_APPEND, DefaultFileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w: %w", clean, ErrOpenFailed, err)
	}

	// 刚创建的文件做一次 fstat 确认描述符可用。
	if !st.exists {
		if _, err := f.Stat(); err != nil {
			_ = f.Close()
			return fmt.Errorf("fstat created file %s: %w: %w", clean, ErrProbeFailed, err)
		}
	}

	if err := writeFull(f, entry); err != nil {
		_ = f.Close()
		return fmt.Errorf("append entry to %s: %w: %w", clean, ErrWriteFailed, err)
	}

	if cfg.durable {
		// 先刷文件数据，再刷父目录元数据（轮转 rename 与文件创建都在其中）。
		// 顺序不可交换：目录项不能先于其指向的数据变得持久。
		if err := xio.SyncData(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("sync data of %s: %w: %w", clean, ErrSyncFailed, err)
		}
		if err := xio.SyncParentDir(clean); err != nil {
			_ = f.Close()
			return fmt.Errorf("sync parent directory of %s: %w: %w", clean, ErrSyncFailed, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w: %w", clean, ErrCloseFailed, err)
	}
	return nil
}
