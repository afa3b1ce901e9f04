package entities

import "time"

// PostWithAuthor 带作者名的回帖读取模型
//   - 与 TopicWithAuthor 同理: 视图 post_author_view 存在时从视图读取，
//     否则由基础表查询结果映射，AuthorUsername 为 nil。
type PostWithAuthor struct {
	ID         uint64    `gorm:"column:id"`
	TopicID    uint64    `gorm:"column:topic_id"`
	AuthorID   string    `gorm:"column:author_id"`
	Content    string    `gorm:"column:content"`
	IsSolution bool      `gorm:"column:is_solution"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	// 作者用户名，来自视图联查；基础表回退路径下恒为 nil
	AuthorUsername *string `gorm:"column:author_username"`
}

// TableName 指定查询目标为数据库视图而非 posts 表
func (PostWithAuthor) TableName() string {
	return "post_author_view"
}
