package smartlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// fileState 探测阶段的文件状态快照。
// 一次非修改性 stat 得出，只用于轮转决策；任何修改文件系统的
// 调用之后不再可信，需要时由修改方自行更新。
type fileState struct {
	exists bool
	isDir  bool
	size   int64
}

// probePath 探测目标路径的当前状态，不创建、不修改任何东西。
//
// not-found 不是错误：它是"写入方将创建该文件"的合法结果。
// 其余 stat 失败（如中间路径组件无权限）包裹 [ErrProbeFailed] 返回，
// 绝不静默当作 not-found。
func probePath(path string) (fileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileState{}, nil
		}
		return fileState{}, fmt.Errorf("stat %s: %w: %w", path, ErrProbeFailed, err)
	}
	return fileState{
		exists: true,
		isDir:  info.IsDir(),
		size:   info.Size(),
	}, nil
}
