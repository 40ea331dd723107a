// Package xlru 提供固定容量、精确 LRU 淘汰的键值缓存。
//
// xlru 的核心是 [Store]：查找索引（map）与近期访问链（双向链表）组合成一个整体，
// 插入、带提升的查找、淘汰都是 O(1)。链表节点存放在 arena 切片中，
// 索引只保存节点下标（handle），不持有节点本身。
//
// # 核心类型
//
//   - [Store]：非并发安全的 LRU 存储，调用方负责串行化
//   - [Cache]：用一把互斥锁包住整个 Store 的并发安全封装
//   - [Result]：Get/Peek 的两态结果，区分"找到（值可以是零值/nil）"与"未找到"
//
// # 语义
//
//   - Put 已存在的 key：原地覆盖值并提升到最近使用端，Len 不变
//   - Put 新 key 且已满：先淘汰最久未使用的一个条目，再插入；每次 Put 最多淘汰一个
//   - Get 命中：提升到最近使用端；读与写对近期顺序的刷新完全等价
//   - Get 未命中：无副作用，返回 NotFound
//   - 容量在构造时确定，之后不可变
//
// # 不存在的值
//
// 值可以是调用方约定的"空值"（nil 指针、nil 接口、零值）。
// [Result.IsFound] 才是判断 key 是否存在的唯一依据，不要用值本身推断未命中：
//
//	s, _ := xlru.NewStore[string, *User](128)
//	s.Put("ghost", nil)
//	r := s.Get("ghost") // r.IsFound() == true，值为 nil
//
// # 并发
//
// Store 不做任何同步。Get 会修改近期顺序，所以 [Cache] 的所有方法（包括 Get）
// 都持有同一把排他锁，锁覆盖整个读-改-写过程。
//
// # 不变量检查
//
// 使用 -tags xlrudebug 构建时，每次修改操作结束都会校验索引与链表的一致性，
// 违反时 panic。正常构建下不做检查，这些错误也不会出现在对外的错误类型中。
//
// # 已知限制
//
//   - 不支持 TTL，也不做近似淘汰（采样 LRU、LFU 等）
//   - Keys() 需要遍历整条链，复杂度 O(n)
//   - 淘汰回调在锁内同步执行，严禁在回调中调用 Cache 自身方法（会死锁）
package xlru
