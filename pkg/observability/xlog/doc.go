// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation(xlog.Rotation{Filename: "/var/log/xlructl.log"}).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// Level 实现 encoding.TextUnmarshaler，配置文件可以直接写 "debug"/"info"。
// [Leveler.SetLevel] 运行时生效，派生 logger（With/WithGroup）共享同一个级别，
// 配置热更新（xconf.Watch）就是通过它调整级别的。
//
// # 缓存相关属性
//
// [Cache]、[Key]、[Capacity]、[Size] 等构造函数统一缓存日志的字段名。
package xlog
