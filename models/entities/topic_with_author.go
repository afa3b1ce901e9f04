package entities

import "time"

// TopicWithAuthor 带作者名的主题读取模型
//   - 使用场景: 所有主题读路径的统一行结构。存储支持时映射到数据库视图 topic_author_view
//     （topics 左联用户表得到 author_username 列）；不支持时由基础表查询结果映射而来，
//     此时 AuthorUsername 为 nil。两条路径返回完全相同的行结构，调用方无需感知差异。
//   - 注意: 该结构只读，不参与 AutoMigrate，视图由数据库侧维护。
type TopicWithAuthor struct {
	ID         uint64    `gorm:"column:id"`
	CategoryID uint64    `gorm:"column:category_id"`
	AuthorID   string    `gorm:"column:author_id"`
	Title      string    `gorm:"column:title"`
	Content    string    `gorm:"column:content"`
	IsPinned   bool      `gorm:"column:is_pinned"`
	ViewCount  int64     `gorm:"column:view_count"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	// 作者用户名，来自视图联查；基础表回退路径下恒为 nil
	AuthorUsername *string `gorm:"column:author_username"`
}

// TableName 指定查询目标为数据库视图而非 topics 表
func (TopicWithAuthor) TableName() string {
	return "topic_author_view"
}
