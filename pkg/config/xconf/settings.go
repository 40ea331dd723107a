package xconf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omeyang/xlrukit/pkg/observability/xlog"
	"github.com/omeyang/xlrukit/pkg/util/xlru"
)

// 默认值
const (
	DefaultCacheName = "default"
	DefaultCapacity  = 1024
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Settings 是 xlructl 的完整配置。
type Settings struct {
	Cache CacheSettings `koanf:"cache"`
	Log   LogSettings   `koanf:"log"`
}

// CacheSettings 缓存配置。
type CacheSettings struct {
	// Name 作为指标与日志中的 cache 属性。
	Name string `koanf:"name"`

	// Capacity 最大条目数，必须大于 0，构造后不可变。
	Capacity int `koanf:"capacity"`
}

// LogSettings 日志配置。
type LogSettings struct {
	// Level debug/info/warn/error，可热更新。
	Level string `koanf:"level"`

	// Format text 或 json。
	Format string `koanf:"format"`

	// File 非空时写入文件并按大小轮转，为空时输出到 stderr。
	File string `koanf:"file"`
}

// Default 返回默认配置。
func Default() Settings {
	return Settings{
		Cache: CacheSettings{Name: DefaultCacheName, Capacity: DefaultCapacity},
		Log:   LogSettings{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Validate 校验配置，返回所有问题的合并错误。
// 容量无效时错误同时匹配 ErrInvalidSettings 与 xlru.ErrInvalidCapacity。
func (s Settings) Validate() error {
	var errs []error
	if s.Cache.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: cache.capacity=%d: %w",
			ErrInvalidSettings, s.Cache.Capacity, xlru.ErrInvalidCapacity))
	}
	if strings.TrimSpace(s.Cache.Name) == "" {
		errs = append(errs, fmt.Errorf("%w: cache.name is empty", ErrInvalidSettings))
	}
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalidSettings, err))
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format=%q", ErrInvalidSettings, s.Log.Format))
	}
	return errors.Join(errs...)
}

// LogLevel 返回解析后的日志级别，无效时返回 Info。
func (s Settings) LogLevel() xlog.Level {
	level, err := xlog.ParseLevel(s.Log.Level)
	if err != nil {
		return xlog.LevelInfo
	}
	return level
}
