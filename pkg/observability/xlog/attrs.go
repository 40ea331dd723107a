package xlog

import (
	"fmt"
	"log/slog"
	"time"
)

// 常用属性 Key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyCache     = "cache"
	KeyKey       = "key"
	KeyCapacity  = "capacity"
	KeySize      = "size"
	KeyPath      = "path"
)

// Err 创建错误属性。err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Cache 创建缓存名属性
func Cache(name string) slog.Attr {
	return slog.String(KeyCache, name)
}

// Key 创建缓存 key 属性，任意可比较类型都按 %v 格式化。
func Key(k any) slog.Attr {
	if s, ok := k.(string); ok {
		return slog.String(KeyKey, s)
	}
	return slog.String(KeyKey, fmt.Sprint(k))
}

// Capacity 创建容量属性
func Capacity(n int) slog.Attr {
	return slog.Int(KeyCapacity, n)
}

// Size 创建当前条目数属性
func Size(n int) slog.Attr {
	return slog.Int(KeySize, n)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}
