package xio

import (
	"fmt"
	"os"

	"github.com/omeyang/smartlog/pkg/util/xfile"
)

// SyncParentDir 将 path 所在目录的元数据刷到稳定存储。
//
// 用于保证目录项变更（文件创建、rename、删除）在崩溃后仍然可见。
// 只同步目录自身的元数据，不触碰 path 指向文件的数据——
// 文件数据需另行 [SyncData]。
//
// 父目录按 [xfile.ParentDir] 的规则解析：无分隔符时为 "."，
// 根下文件为 "/"。打开、同步、关闭目录句柄的任何失败都会返回错误，
// 本函数不会部分成功而不报告。
func SyncParentDir(path string) error {
	dir, err := xfile.ParentDir(path)
	if err != nil {
		return err
	}

	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open directory %s: %w", dir, err)
	}
	if err := d.Sync(); err != nil {
		_ = d.Close()
		return fmt.Errorf("sync directory %s: %w", dir, err)
	}
	if err := d.Close(); err != nil {
		return fmt.Errorf("close directory %s: %w", dir, err)
	}
	return nil
}
