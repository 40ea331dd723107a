// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xlru: 固定容量的精确 LRU 缓存，O(1) 写入、查询提升与淘汰
package util
