package xlru

import "fmt"

// check 在 xlrudebug 构建下校验不变量，违反时 panic。
func (s *Store[K, V]) check() {
	if !debugChecks {
		return
	}
	if err := s.verify(); err != nil {
		panic(err)
	}
}

// verify 校验索引与近期访问链的一致性，返回第一个被破坏的不变量。
//
//   - 0 <= size <= capacity
//   - size == 0 当且仅当 head 与 tail 都为空
//   - 从 head 沿 next 恰好 size 步到达 tail，每个 prev 指回前驱
//   - 索引与链上的 key 集合完全一致，且索引指向链上对应的槽位
func (s *Store[K, V]) verify() error {
	if s.capacity <= 0 {
		return fmt.Errorf("%w: capacity %d", errBrokenInvariant, s.capacity)
	}
	if s.size < 0 || s.size > s.capacity {
		return fmt.Errorf("%w: size %d outside [0, %d]", errBrokenInvariant, s.size, s.capacity)
	}
	if (s.head == nilHandle) != (s.tail == nilHandle) {
		return fmt.Errorf("%w: head %d and tail %d disagree on emptiness", errBrokenInvariant, s.head, s.tail)
	}
	if (s.size == 0) != (s.head == nilHandle) {
		return fmt.Errorf("%w: size %d but head %d", errBrokenInvariant, s.size, s.head)
	}
	if len(s.index) != s.size {
		return fmt.Errorf("%w: index has %d keys, size is %d", errBrokenInvariant, len(s.index), s.size)
	}
	if used := len(s.entries) - len(s.free); used != s.size {
		return fmt.Errorf("%w: %d live slots, size is %d", errBrokenInvariant, used, s.size)
	}

	prev := nilHandle
	n := 0
	for h := s.head; h != nilHandle; h = s.entries[h].next {
		if n == s.size {
			return fmt.Errorf("%w: chain longer than size %d", errBrokenInvariant, s.size)
		}
		e := &s.entries[h]
		if e.prev != prev {
			return fmt.Errorf("%w: slot %d prev is %d, want %d", errBrokenInvariant, h, e.prev, prev)
		}
		if ih, ok := s.index[e.key]; !ok || ih != h {
			return fmt.Errorf("%w: chain key at slot %d not indexed to it", errBrokenInvariant, h)
		}
		prev = h
		n++
	}
	if n != s.size {
		return fmt.Errorf("%w: chain has %d entries, size is %d", errBrokenInvariant, n, s.size)
	}
	if prev != s.tail {
		return fmt.Errorf("%w: chain ends at %d, tail is %d", errBrokenInvariant, prev, s.tail)
	}
	return nil
}
