package xmetrics

import "errors"

// NewOTelRecorder / Observe 返回的错误。
var (
	// ErrCreateInstrument 表示创建 OTel 仪表失败。
	ErrCreateInstrument = errors.New("xmetrics: create instrument failed")
	// ErrRegisterCallback 表示注册异步 Gauge 回调失败。
	ErrRegisterCallback = errors.New("xmetrics: register callback failed")
	// ErrNilSource 表示 Observe 传入了 nil Source。
	ErrNilSource = errors.New("xmetrics: nil source")
)
