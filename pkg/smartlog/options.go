package smartlog

// config 单次写入的全部配置。没有包级可变状态，
// 所有行为开关都通过参数显式传入。
type config struct {
	durable  bool
	rotate   bool
	maxBytes uint64
}

// Option 写入配置选项函数。
type Option func(*config)

// WithDurable 设置是否在返回前将条目落盘。
//
// 开启后，成功返回保证条目数据和相关目录元数据
// （轮转 rename、文件创建）都已到达稳定存储。
func WithDurable(durable bool) Option {
	return func(c *config) {
		c.durable = durable
	}
}

// WithMaxBytes 启用按大小轮转并设置字节上限。
//
// 当"当前文件大小 + 本条目长度"超过 maxBytes 时，本次写入前
// 执行一次轮转。maxBytes 必须大于零，零值在校验阶段返回
// [ErrInvalidArgument]。
func WithMaxBytes(maxBytes uint64) Option {
	return func(c *config) {
		c.rotate = true
		c.maxBytes = maxBytes
	}
}
