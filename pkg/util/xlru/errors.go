package xlru

import "errors"

var (
	// ErrInvalidCapacity 表示容量配置无效（必须 > 0）。
	ErrInvalidCapacity = errors.New("xlru: capacity must be greater than 0")

	// errBrokenInvariant 表示内部不变量被破坏，只在测试和 xlrudebug 构建中出现。
	errBrokenInvariant = errors.New("xlru: broken invariant")
)
