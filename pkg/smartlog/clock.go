package smartlog

// clockNow 读取实时时钟（纳秒）。包级变量，测试中注入失败时钟
// 以覆盖 [ErrClockUnavailable] 路径（参见 xproc.osExecutable 的同款模式）。
// 注意：替换此变量的测试不可使用 t.Parallel()。
var clockNow = readWallClock
