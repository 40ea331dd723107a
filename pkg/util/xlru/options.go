package xlru

import "github.com/omeyang/xlrukit/pkg/observability/xmetrics"

// Option 定义 Store/Cache 的可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	onEvicted func(key K, value V)
	recorder  xmetrics.Recorder
}

func applyOptions[K comparable, V any](opts []Option[K, V]) *options[K, V] {
	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.recorder == nil {
		o.recorder = xmetrics.NoopRecorder{}
	}
	return o
}

// WithOnEvicted 设置容量淘汰时的回调函数。
//
// 只有 Put 因容量已满而淘汰最久未使用条目时才会回调；Remove 与 Purge 不触发。
// 回调在新条目插入完成后同步执行。对 Cache 而言回调在互斥锁内执行：
//   - 严禁在回调中调用 Cache 自身的任何方法，否则会死锁
//   - 应避免耗时操作，如需复杂处理请把事件转发到外部 channel
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}

// WithRecorder 设置 Cache 的指标记录器，nil 表示不记录。
// 只对 [Cache] 生效，[Store] 忽略此选项。
func WithRecorder[K comparable, V any](r xmetrics.Recorder) Option[K, V] {
	return func(o *options[K, V]) {
		o.recorder = r
	}
}
