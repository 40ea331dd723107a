package xmetrics

// Recorder 记录缓存操作结果。
//
// 实现必须是并发安全的，并且不能回调缓存自身的方法。
type Recorder interface {
	// RecordLookup 记录一次 Get，hit 表示是否命中。
	RecordLookup(hit bool)

	// RecordInsert 记录一次 Put。
	// update 表示覆盖已有 key，evicted 表示本次写入淘汰了一个条目。
	RecordInsert(update, evicted bool)
}

// Source 提供缓存当前大小与容量，供异步 Gauge 采样。
type Source interface {
	Len() int
	Capacity() int
}

// NoopRecorder 是空实现。
type NoopRecorder struct{}

// RecordLookup 空实现。
func (NoopRecorder) RecordLookup(bool) {}

// RecordInsert 空实现。
func (NoopRecorder) RecordInsert(bool, bool) {}
