package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Post 回帖实体
// - 使用场景: 主题下的回复列表，按发布时间正序展示
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 关系: 与 Topic 表为"多对一"关系，通过 TopicID 外键关联
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 所属主题ID，外键，关联 Topic 表
	// - GORM 标签: not null 表示非空，index 优化按主题分页查询
	TopicID uint64 `gorm:"not null;index"`

	// 作者ID，关联用户服务的用户表
	// - 类型: char(36)，用户ID为UUID格式（36个字符）
	// - GORM 标签: index 支持按作者清理内容（用户注销事件）
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 回帖内容，支持多行文本
	// - 类型: text，存储时保留换行符（\n）
	Content string `gorm:"type:text;not null"`

	// 是否被标记为"解决方案"
	// - 同一主题下允许多条回帖同时带有该标记，标记互不排斥
	// - GORM 标签: default:false 设置默认值
	IsSolution bool `gorm:"default:false"`
}
