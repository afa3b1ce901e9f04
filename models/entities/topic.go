package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Topic 主题实体
// - 使用场景: 版块内的讨论主题（首帖），回帖见 Post 实体
// - 表名: topics (GORM 默认使用结构体名复数形式)
// - 注意: 作者用户名不在本表冗余存储，读取时优先通过数据库视图 topic_author_view 联查用户表，
//   视图不存在时回退为基础表查询（此时作者名为空，由网关或前端兜底）
type Topic struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 所属版块ID，外键，关联 Category 表
	// - GORM 标签: not null 表示非空，index 优化按版块分页查询
	CategoryID uint64 `gorm:"not null;index"`

	// 作者ID，关联用户服务的用户表
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	// - GORM 标签: index 支持按作者清理内容（用户注销事件）
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 标题，必填，最大长度255个字符
	// - 类型: varchar(255)，限制长度以提高查询效率
	Title string `gorm:"type:varchar(255);not null"`

	// 正文内容，支持多行文本
	// - 类型: text，存储时保留换行符（\n），前端根据换行符渲染为多行
	Content string `gorm:"type:text;not null"`

	// 是否置顶，置顶主题在版块分页中始终排在普通主题之前
	// - GORM 标签: default:false 设置默认值，index 优化置顶优先的排序查询
	IsPinned bool `gorm:"default:false;index"`

	// 浏览量，统计主题详情页的浏览次数
	// - 实时计数在 Redis 中累加，由定时任务批量回写本字段
	// - GORM 标签: default:0 设置默认值
	ViewCount int64 `gorm:"default:0"`
}
