package constant

// 后台定时任务相关常量
const (
	// SyncViewCountInterval 是浏览量从 Redis 同步到 MySQL 的 cron 表达式。
	SyncViewCountInterval = "@every 2m"

	// HotTopicsCacheCronSpec 是热门主题缓存刷新任务的 cron 表达式。
	HotTopicsCacheCronSpec = "@every 5m"

	// HotTopicsCacheSize 是热榜快照保留的主题数量 (Top N)。
	HotTopicsCacheSize = 100
)
