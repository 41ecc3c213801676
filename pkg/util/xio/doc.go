// Package xio 提供崩溃安全写入路径的底层 I/O 原语。
//
// # 功能概览
//
//   - [WriteFull]: 整段写入，信号中断（EINTR）透明重试，零字节写入视为 I/O 错误
//   - [SyncData]: 将文件数据刷到稳定存储（Linux 上使用 fdatasync，其余平台 fsync）
//   - [SyncParentDir]: 将路径所在目录的元数据（条目创建、重命名、删除）刷到稳定存储
//
// # 数据与元数据
//
// SyncData 只保证文件内容落盘；新建文件或 rename 产生的目录项变更
// 属于父目录的元数据，必须另行 SyncParentDir 才能保证崩溃后可见。
// 崩溃一致性要求先刷数据再刷目录元数据，否则目录项可能指向
// 尾部内容尚未落盘的文件。
//
// # 错误语义
//
// WriteFull 成功返回即保证整个缓冲区已写入；失败时调用方不能假设
// 已写入多少字节，目标文件尾部应视为不可靠。
// 零字节且无错误的写入不会被重试：它表示输出端已死，而非瞬时中断，
// 返回 [ErrZeroWrite]。
package xio
