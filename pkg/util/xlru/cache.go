package xlru

import (
	"sync"

	"github.com/omeyang/xlrukit/pkg/observability/xmetrics"
)

//go:generate mockgen -destination=recorder_mock_test.go -package=xlru github.com/omeyang/xlrukit/pkg/observability/xmetrics Recorder

// Config 定义 Cache 配置。
type Config struct {
	// Capacity 最大条目数，必须大于 0。
	Capacity int
}

// Stats 是 Cache 在某一时刻的一致快照。
type Stats struct {
	Size     int
	Capacity int
}

// Cache 是并发安全的 LRU 缓存。
//
// Cache 用一把 sync.Mutex 保护整个 [Store]，锁覆盖每次调用的完整读-改-写过程。
// 设计决策: 使用 Mutex 而非 RWMutex，因为 Get 会修改近期顺序，必须排他。
//
// 必须通过 [New] 创建，零值不可用。
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	store    *Store[K, V]
	recorder xmetrics.Recorder
}

// New 创建新的 Cache。
// 如果 cfg.Capacity <= 0，返回 ErrInvalidCapacity。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	o := applyOptions(opts)
	store, err := NewStore[K, V](cfg.Capacity, WithOnEvicted[K, V](o.onEvicted))
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		store:    store,
		recorder: o.recorder,
	}, nil
}

// Put 写入 key/value，返回值表示是否触发了淘汰。语义同 [Store.Put]。
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	c.mu.Lock()
	update := c.store.Contains(key)
	evicted = c.store.Put(key, value)
	c.mu.Unlock()

	c.recorder.RecordInsert(update, evicted)
	return evicted
}

// Get 查找 key，命中时提升为最近使用。语义同 [Store.Get]。
func (c *Cache[K, V]) Get(key K) Result[V] {
	c.mu.Lock()
	r := c.store.Get(key)
	c.mu.Unlock()

	c.recorder.RecordLookup(r.IsFound())
	return r
}

// Peek 查找 key，不改变近期顺序，不计入命中统计。
func (c *Cache[K, V]) Peek(key K) Result[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Peek(key)
}

// Contains 报告 key 是否存在，不改变近期顺序。
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Contains(key)
}

// Remove 删除 key，返回 true 表示 key 存在并已删除。
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Remove(key)
}

// Oldest 返回最久未使用的条目，不改变近期顺序。
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Oldest()
}

// Keys 按从最久未使用到最近使用的顺序返回所有 key。
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Keys()
}

// Purge 清空所有条目。
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Purge()
}

// Capacity 返回容量。容量不可变，无需加锁。
func (c *Cache[K, V]) Capacity() int { return c.store.Capacity() }

// Len 返回当前条目数。
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// IsEmpty 报告 Cache 是否为空。
func (c *Cache[K, V]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.IsEmpty()
}

// IsFull 报告 Cache 是否已满。
func (c *Cache[K, V]) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.IsFull()
}

// Stats 返回 Size 与 Capacity 的一致快照。
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: c.store.Len(), Capacity: c.store.Capacity()}
}
