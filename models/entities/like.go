package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Like 点赞实体
// - 使用场景: 用户对主题或回帖的点赞记录，同一用户对同一目标最多一条
// - 表名: likes (GORM 默认使用结构体名复数形式)
// - 约束: TopicID 与 PostID 必须恰好设置其一（服务层校验），
//   并由两个复合唯一索引分别保证 (user_id, topic_id) 与 (user_id, post_id) 的唯一性。
//   MySQL 的唯一索引不约束 NULL 值，因此未设置的一列不会影响另一类目标的点赞。
type Like struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt

	// 点赞用户ID
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	// - GORM 标签: 同时参与两个复合唯一索引
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_like_user_topic;uniqueIndex:idx_like_user_post"`

	// 被点赞的主题ID，目标为回帖时为 NULL
	// - 类型: *uint64，使用指针以区分"未设置"与零值
	TopicID *uint64 `gorm:"uniqueIndex:idx_like_user_topic"`

	// 被点赞的回帖ID，目标为主题时为 NULL
	PostID *uint64 `gorm:"uniqueIndex:idx_like_user_post"`
}
