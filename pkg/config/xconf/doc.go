// Package xconf 加载 LRU 缓存工具的配置，支持 YAML/JSON 与文件热更新。
//
// 基于 github.com/knadh/koanf/v2：先写入默认值，再用配置文件覆盖，
// 最后通过 [Settings.Validate] 校验。
//
// # 配置示例
//
//	cache:
//	  name: sessions
//	  capacity: 4096
//	log:
//	  level: info
//	  format: json
//	  file: /var/log/xlructl.log
//
// # 热更新
//
// [Watch] 监视配置文件所在目录（编辑器可能先删除再创建文件），
// 防抖后重新加载并回调。缓存容量构造后不可变，调用方应只应用
// 日志级别等运行期可调整的字段，容量变化只做提示。
package xconf
