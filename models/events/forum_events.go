package events

import "time"

// 本包定义论坛服务对外发布/消费的 Kafka 事件结构。
// 结构与 go-common/models/kafkaevents 保持相同的风格 (EventID + Timestamp + 载荷)，
// 但论坛事件尚未纳入共享契约模块，因此在服务内本地定义。

// TopicData 是主题事件的核心载荷
type TopicData struct {
	ID         uint64   `json:"id"`
	CategoryID uint64   `json:"category_id"`
	AuthorID   string   `json:"author_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	ImageURLs  []string `json:"image_urls,omitempty"` // 配图URL，按展示顺序
	CreatedAt  int64    `json:"created_at"`           // Unix 秒
}

// PostData 是回帖事件的核心载荷
type PostData struct {
	ID        uint64 `json:"id"`
	TopicID   uint64 `json:"topic_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"` // Unix 秒
}

// TopicCreatedEvent 新主题创建事件
type TopicCreatedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Topic     TopicData `json:"topic"`
}

// PostCreatedEvent 新回帖创建事件
type PostCreatedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Post      PostData  `json:"post"`
}

// TopicDeletedEvent 主题删除事件
type TopicDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	TopicID   uint64    `json:"topic_id"`
}

// UserDeactivatedEvent 用户注销事件 (由用户服务发布，本服务消费后清理该用户的论坛内容)
type UserDeactivatedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}
