package xlru

// maxPrealloc 构造时预分配的条目上限，更大的容量按需增长。
const maxPrealloc = 1024

// handle 是条目在 arena 中的下标。nilHandle 表示空链接。
type handle int

const nilHandle handle = -1

// entry 是近期访问链上的一个节点。
// prev 指向更近使用的一侧（靠近 head），next 指向更久未使用的一侧（靠近 tail）。
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
}

// Store 是固定容量的 LRU 存储。
//
// 所有条目存放在 entries（arena）中，由 Store 独占；index 只保存 handle。
// head 是最近使用的条目，tail 是最久未使用的条目。
//
// Store 不是并发安全的，并发场景请使用 [Cache]。
// 必须通过 [NewStore] 创建，零值不可用。
type Store[K comparable, V any] struct {
	index   map[K]handle
	entries []entry[K, V]
	free    []handle // Remove 释放的槽位

	head handle
	tail handle

	size     int
	capacity int

	onEvicted func(key K, value V)
}

// NewStore 创建容量为 capacity 的空 Store。
// 如果 capacity <= 0，返回 ErrInvalidCapacity，不会返回任何 Store。
func NewStore[K comparable, V any](capacity int, opts ...Option[K, V]) (*Store[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	o := applyOptions(opts)
	hint := min(capacity, maxPrealloc)
	return &Store[K, V]{
		index:     make(map[K]handle, hint),
		entries:   make([]entry[K, V], 0, hint),
		head:      nilHandle,
		tail:      nilHandle,
		capacity:  capacity,
		onEvicted: o.onEvicted,
	}, nil
}

// Put 写入 key/value。返回值表示本次写入是否淘汰了一个条目。
//
//   - key 已存在：原地覆盖值并提升到最近使用端，Len 不变，不淘汰
//   - key 不存在且已满：先淘汰 tail（最久未使用），复用其槽位，再插入到 head
//   - key 不存在且未满：插入到 head
func (s *Store[K, V]) Put(key K, value V) (evicted bool) {
	if h, ok := s.index[key]; ok {
		s.entries[h].value = value
		s.moveToFront(h)
		s.check()
		return false
	}

	var (
		h        handle
		oldKey   K
		oldValue V
	)
	if s.size == s.capacity {
		// 先淘汰再插入，size 不会超过 capacity
		h = s.tail
		oldKey, oldValue = s.entries[h].key, s.entries[h].value
		s.unlink(h)
		delete(s.index, oldKey)
		s.size--
		evicted = true
	} else {
		h = s.alloc()
	}

	e := &s.entries[h]
	e.key = key
	e.value = value
	s.pushFront(h)
	s.index[key] = h
	s.size++
	s.check()

	if evicted && s.onEvicted != nil {
		s.onEvicted(oldKey, oldValue)
	}
	return evicted
}

// Get 查找 key。命中时把条目提升到最近使用端并返回 Found；
// 未命中返回 NotFound，不产生任何副作用。
func (s *Store[K, V]) Get(key K) Result[V] {
	h, ok := s.index[key]
	if !ok {
		return NotFound[V]()
	}
	s.moveToFront(h)
	s.check()
	return Found(s.entries[h].value)
}

// Peek 查找 key，但不改变近期顺序。
func (s *Store[K, V]) Peek(key K) Result[V] {
	h, ok := s.index[key]
	if !ok {
		return NotFound[V]()
	}
	return Found(s.entries[h].value)
}

// Contains 报告 key 是否存在，不改变近期顺序。
func (s *Store[K, V]) Contains(key K) bool {
	_, ok := s.index[key]
	return ok
}

// Remove 删除 key。返回 true 表示 key 存在并已删除。不触发淘汰回调。
func (s *Store[K, V]) Remove(key K) bool {
	h, ok := s.index[key]
	if !ok {
		return false
	}
	s.unlink(h)
	delete(s.index, key)
	s.entries[h] = entry[K, V]{prev: nilHandle, next: nilHandle}
	s.free = append(s.free, h)
	s.size--
	s.check()
	return true
}

// Oldest 返回最久未使用的条目，不改变近期顺序。Store 为空时 ok 为 false。
func (s *Store[K, V]) Oldest() (key K, value V, ok bool) {
	if s.tail == nilHandle {
		return key, value, false
	}
	e := &s.entries[s.tail]
	return e.key, e.value, true
}

// Keys 按从最久未使用到最近使用的顺序返回所有 key。复杂度 O(n)。
func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, s.size)
	for h := s.tail; h != nilHandle; h = s.entries[h].prev {
		keys = append(keys, s.entries[h].key)
	}
	return keys
}

// Purge 清空所有条目，容量不变。不触发淘汰回调。
func (s *Store[K, V]) Purge() {
	clear(s.index)
	clear(s.entries) // 释放值引用
	s.entries = s.entries[:0]
	s.free = s.free[:0]
	s.head, s.tail = nilHandle, nilHandle
	s.size = 0
	s.check()
}

// Capacity 返回构造时设定的容量。
func (s *Store[K, V]) Capacity() int { return s.capacity }

// Len 返回当前条目数。
func (s *Store[K, V]) Len() int { return s.size }

// IsEmpty 报告 Store 是否为空。
func (s *Store[K, V]) IsEmpty() bool { return s.size == 0 }

// IsFull 报告 Store 是否已满（再插入新 key 会触发淘汰）。
func (s *Store[K, V]) IsFull() bool { return s.size == s.capacity }

// alloc 取一个空闲槽位：优先复用 free，否则扩展 arena。
func (s *Store[K, V]) alloc() handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		return h
	}
	s.entries = append(s.entries, entry[K, V]{prev: nilHandle, next: nilHandle})
	return handle(len(s.entries) - 1)
}

// pushFront 把未链接的 h 接到 head。
func (s *Store[K, V]) pushFront(h handle) {
	e := &s.entries[h]
	e.prev = nilHandle
	e.next = s.head
	if s.head != nilHandle {
		s.entries[s.head].prev = h
	} else {
		s.tail = h
	}
	s.head = h
}

// unlink 把 h 从链上摘下，修复前后邻居；h 是 head/tail 时同步更新。
func (s *Store[K, V]) unlink(h handle) {
	e := &s.entries[h]
	if e.prev != nilHandle {
		s.entries[e.prev].next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nilHandle {
		s.entries[e.next].prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next = nilHandle, nilHandle
}

// moveToFront 提升 h 到 head，已经是 head 时链不变。
func (s *Store[K, V]) moveToFront(h handle) {
	if h == s.head {
		return
	}
	s.unlink(h)
	s.pushFront(h)
}
