package xlru

import "fmt"

// Result 是 Get/Peek 的返回值：要么找到了一个值（值本身可以是 nil/零值），
// 要么没有找到。
type Result[V any] struct {
	value V
	found bool
}

// Found 构造命中结果。
func Found[V any](v V) Result[V] {
	return Result[V]{value: v, found: true}
}

// NotFound 构造未命中结果。
func NotFound[V any]() Result[V] {
	return Result[V]{}
}

// IsFound 报告 key 是否存在。
func (r Result[V]) IsFound() bool { return r.found }

// Value 返回值和是否命中。未命中时返回 V 的零值。
func (r Result[V]) Value() (V, bool) {
	return r.value, r.found
}

// ValueOr 命中时返回存储的值（即使它是 nil），否则返回 def。
func (r Result[V]) ValueOr(def V) V {
	if !r.found {
		return def
	}
	return r.value
}

// String 返回 "Found(v)" 或 "NotFound"。
func (r Result[V]) String() string {
	if !r.found {
		return "NotFound"
	}
	return fmt.Sprintf("Found(%v)", r.value)
}
