package smartlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePathNotFound(t *testing.T) {
	// not-found 是合法结果，不是错误
	st, err := probePath(filepath.Join(t.TempDir(), "missing.log"))
	require.NoError(t, err)
	assert.False(t, st.exists)
	assert.False(t, st.isDir)
	assert.Zero(t, st.size)
}

func TestProbePathExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0640))

	st, err := probePath(path)
	require.NoError(t, err)
	assert.True(t, st.exists)
	assert.False(t, st.isDir)
	assert.EqualValues(t, 10, st.size)
}

func TestProbePathDirectory(t *testing.T) {
	st, err := probePath(t.TempDir())
	require.NoError(t, err)
	assert.True(t, st.exists)
	assert.True(t, st.isDir)
}

func TestProbePathStatError(t *testing.T) {
	// 中间组件是普通文件：ENOTDIR，不能静默当作 not-found
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := probePath(filepath.Join(blocker, "app.log"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProbeFailed)
}

func TestProbePathDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	_, err := probePath(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "探测不应创建文件")
}
