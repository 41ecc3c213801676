package smartlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/omeyang/smartlog/pkg/util/xio"
)

// rotateIfNeeded 在追加本条目会超过字节上限时执行一次轮转。
//
// 触发条件是预期大小（当前大小 + entryLen）严格大于 maxBytes：
// 压线的那一条触发轮转，恰好等于上限的不触发。目标文件不存在时
// 直接返回——不存在的文件不可能超限。
//
// 轮转序列：
//  1. 删除已有备份 <path>.1（不存在是空操作，其余删除错误上报）
//  2. 将活动文件原子 rename 为 <path>.1
//  3. durable 时立即 fsync 父目录，保证崩溃后"备份可见、
//     活动路径不存在"这一状态成立，不会出现 rename 看似未发生
//     而备份又丢失的组合
//  4. 更新快照为"不存在"，后续打开逻辑走创建路径
//
// 同一备份槽位只有一个：连续两次轮转只是覆盖它。
func rotateIfNeeded(path string, st *fileState, entryLen int, maxBytes uint64, durable bool) error {
	if !st.exists {
		return nil
	}

	prospective := uint64(st.size) + uint64(entryLen)
	if prospective <= maxBytes {
		return nil
	}

	backup := path + BackupSuffix
	if len(backup) > MaxPathLen {
		return fmt.Errorf("backup path length %d exceeds %d: %w", len(backup), MaxPathLen, ErrRotateFailed)
	}

	if err := os.Remove(backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale backup %s: %w: %w", backup, ErrRotateFailed, err)
	}

	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("rename %s to %s: %w: %w", path, backup, ErrRotateFailed, err)
	}

	// rename 之后活动路径已不存在；durable 时先把这次目录项变更
	// 刷到稳定存储，再做任何后续动作。
	if durable {
		if err := xio.SyncParentDir(path); err != nil {
			return fmt.Errorf("sync parent directory after rotation: %w: %w", ErrSyncFailed, err)
		}
	}

	st.exists = false
	st.size = 0
	return nil
}
