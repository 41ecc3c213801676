// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件操作工具，路径清洗、目录创建等
//   - xio: 低层 I/O 原语，完整写入、数据落盘、父目录同步
//   - xproc: 进程信息查询，PID 和进程名称
//
// 设计原则：
//   - 安全处理路径遍历和空字节注入
//   - 系统调用被中断（EINTR）时自动重试
//   - 跨平台兼容，平台差异通过构建标签隔离
package util
