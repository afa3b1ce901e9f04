package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// TopicViewCountPrefix 是主题浏览量计数器的 Key 前缀。
	// 每个主题会有一个对应的 String 类型的 Key，用于原子性计数。
	// 示例 Key: "topic_view_count:123" (其中 123 是 topicID)
	// Redis 类型: String
	// 示例值: "58" (表示主题 123 的浏览量为 58)
	TopicViewCountPrefix = "topic_view_count:"

	// TopicsHashKey 是热门主题基础信息缓存的 Hash Key 名称。
	// Field 是主题 ID 字符串，Value 是主题实体的 JSON 序列化。
	// 由定时任务整体刷新 (临时 Key + RENAME)。
	// Redis 类型: Hash
	TopicsHashKey = "topics"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// TopicsRankKey 是全局主题排行榜的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是主题 ID (topicID)，分数是浏览量 (viewCount)。
	// 由 IncrementViewCount 的 Lua 脚本实时维护。
	// Redis 类型: Sorted Set
	TopicsRankKey = "topic_rank"

	// HotTopicsRankKey 是热门主题榜单的 Key 名称。
	// 这是一个较小的 Sorted Set (ZSet)，由定时任务从 TopicsRankKey 中截取 Top N 生成。
	// 用于快速获取当前最热门的主题列表。
	// Redis 类型: Sorted Set
	HotTopicsRankKey = "hot_topic_rank"
)
