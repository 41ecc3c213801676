// Package smartlog 提供单条日志的崩溃安全追加写入。
//
// 这是一个可嵌入的日志原语，不是日志框架：没有级别、没有结构化编码、
// 没有后台任务。每次调用独立完成一条文本日志的格式化与落盘，
// 调用之间不保留任何进程内状态，所有记录状态都在文件系统里。
//
// # 条目格式
//
// 每条日志占一行，固定布局：
//
//	[<timestamp_ns> ns] [PID = <pid>] [MESSAGE = <message>]
//
// 时间戳为 CLOCK_REALTIME 纳秒值。超过 [MaxMessageLen] 的消息会被截断为
// MaxMessageLen-3 字节并追加 "..."，截断后恰好 MaxMessageLen 字节。
//
// # 写入流水线
//
// WriteEntry 按固定顺序执行，无循环、无回退：
//
//	校验 → 探测 → 格式化 → 轮转（可选） → 打开/创建 → 写入 → 落盘（可选） → 关闭
//
// 探测（一次 stat）只用于轮转决策；任何修改文件系统的调用之后
// 都不再信任这份快照。
//
// # 持久化
//
// WithDurable(true) 时，成功返回保证条目在崩溃或断电后仍然存在：
// 先 fdatasync 文件数据，再 fsync 父目录元数据（覆盖轮转 rename 和
// 文件创建），顺序不可交换——先刷数据才能保证目录项不会指向
// 尾部内容尚未落盘的文件。
//
// # 轮转
//
// WithMaxBytes(n) 启用按大小轮转：当"当前大小 + 本条目长度"超过 n 时，
// 先删除旧备份 <path>.1，再将活动文件原子 rename 为 <path>.1，
// 本条目随后写入新建的活动文件。只保留一代备份；触发条件是预期大小
// 而非当前大小，压线的那一条就会触发轮转，而不是等到下一条。
//
// # 并发模型
//
// 完全同步、无内部锁。设计假设同一路径同一时刻至多一个写入者；
// 外部并发写入者可能与存在性探测和轮转 rename 竞争，这是已知的
// 设计限制而非保证（探测后行动模式本身有 TOCTOU 窗口）。
//
// # 错误分类
//
// 每个阶段的失败都返回独立的哨兵错误（见 errors.go），底层 OS 错误
// 通过 %w 链保留，支持 errors.Is 判断。本包从不向任何旁路输出日志，
// 只返回结构化错误。写入失败后目标文件可能含有截断的尾行，
// 调用方应将报错后的最后一行视为不可靠。
//
// # 使用示例
//
//	err := smartlog.WriteEntry("/var/log/app.log", "service started",
//	    smartlog.WithDurable(true),
//	    smartlog.WithMaxBytes(10*1024*1024),
//	)
//	if errors.Is(err, smartlog.ErrTargetIsDirectory) {
//	    // 日志目标不能是目录
//	}
package smartlog
