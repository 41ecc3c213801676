package smartlog

import (
	"strings"
	"testing"
)

// FuzzTruncateMessage 验证截断算术对任意输入成立：
// 结果不超过上限，超长输入恰好等于上限并以标记结尾，原文前缀保留。
func FuzzTruncateMessage(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add(strings.Repeat("a", MaxMessageLen))
	f.Add(strings.Repeat("b", MaxMessageLen+1))
	f.Add(strings.Repeat("字", 200))

	f.Fuzz(func(t *testing.T, msg string) {
		got := truncateMessage(msg)

		if len(msg) <= MaxMessageLen {
			if got != msg {
				t.Fatalf("上限内的消息被改写: %q -> %q", msg, got)
			}
			return
		}

		if len(got) != MaxMessageLen {
			t.Fatalf("截断结果长度 %d，期望恰好 %d", len(got), MaxMessageLen)
		}
		if !strings.HasSuffix(got, truncationMarker) {
			t.Fatalf("截断结果未以 %q 结尾: %q", truncationMarker, got)
		}
		payload := MaxMessageLen - len(truncationMarker)
		if got[:payload] != msg[:payload] {
			t.Fatal("截断结果前缀与原文不一致")
		}
	})
}

// FuzzRenderEntry 验证渲染对任意消息要么成功产出带结尾换行的条目，
// 要么返回溢出错误，绝不越过容量。
func FuzzRenderEntry(f *testing.F) {
	f.Add(uint64(0), 1, "x")
	f.Add(uint64(1700000000000000000), 65535, "hello world")
	f.Add(^uint64(0), 1, strings.Repeat("y", 500))

	f.Fuzz(func(t *testing.T, ts uint64, pid int, msg string) {
		if msg == "" {
			return // 空消息在校验阶段就被拒绝，不进入渲染
		}
		entry, err := renderEntry(ts, pid, msg, entryBufferCap)
		if err != nil {
			t.Fatalf("默认容量下渲染不应失败（消息已截断）: %v", err)
		}
		if len(entry) > entryBufferCap {
			t.Fatalf("条目长度 %d 越过容量 %d", len(entry), entryBufferCap)
		}
		if entry[len(entry)-1] != '\n' {
			t.Fatal("条目未以换行结尾")
		}
	})
}
