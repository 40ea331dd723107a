// Package xmetrics 为 LRU 缓存提供基于 OpenTelemetry 的指标记录。
//
// # 核心类型
//
//   - [Recorder]：缓存在每次查找、写入后调用的记录接口
//   - [NoopRecorder]：空实现，未配置记录器时使用
//   - [OTelRecorder]：基于 OTel Meter 的实现
//
// # 指标
//
//   - xlru.lookups{cache, result=hit|miss}：Get 次数
//   - xlru.inserts{cache, kind=new|update}：Put 次数
//   - xlru.evictions{cache}：容量淘汰次数
//   - xlru.size{cache}、xlru.capacity{cache}：通过 [OTelRecorder.Observe] 注册的异步 Gauge
//
// # 使用示例
//
//	rec, err := xmetrics.NewOTelRecorder("sessions", xmetrics.WithMeterProvider(mp))
//	cache, err := xlru.New[string, []byte](xlru.Config{Capacity: 4096},
//	    xlru.WithRecorder[string, []byte](rec))
//	unregister, err := rec.Observe(cache)
//	defer unregister()
//
// 记录方法不接收 context：缓存 API 是同步的纯内存操作，
// 指标使用 context.Background() 上报。
package xmetrics
