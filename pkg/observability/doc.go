// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持动态级别和文件轮转
//   - xmetrics: 缓存指标，基于 OpenTelemetry 的命中/未命中/写入/淘汰计数与容量观测
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 指标记录在锁外完成，不放大临界区
package observability
