// Package xrun 提供基于 errgroup + context 的进程生命周期管理。
//
// # 概述
//
//   - [Group]: 多服务并发运行与协调关闭
//   - [Run]: 信号监听 + 服务运行的一站式入口
//   - [Supervise]: 将服务包装为崩溃后按退避自动重启的受监管服务
//
// 基于 context 的协调：任一服务返回错误或收到终止信号时 context
// 被取消，所有服务应监听 ctx.Done() 并优雅退出。
//
// # 快速开始
//
//	err := xrun.Run(context.Background(),
//	    func(ctx context.Context) error {
//	        <-ctx.Done()
//	        return ctx.Err()
//	    },
//	)
//	if errors.Is(err, xrun.ErrSignal) {
//	    // 因信号退出
//	}
//
// # 受监管服务
//
// Supervise 包装的服务崩溃（返回非 nil 且非取消错误）后会按
// 指数退避重启，直到服务干净退出（返回 nil）或 context 被取消：
//
//	err := xrun.Run(ctx,
//	    xrun.Supervise("heartbeat", heartbeatLoop),
//	)
package xrun
