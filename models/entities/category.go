package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Category 版块实体
// - 使用场景: 论坛首页的版块列表，以及主题归属的分类
// - 表名: categories (GORM 默认使用结构体名复数形式)
// - 注意: 服务不提供创建版块的接口，版块由运维脚本或 seeder 预置
type Category struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 版块标识符，URL 友好的短名称，例如 "peptide-stacks"
	// - 类型: varchar(100)，标识符较短，限制长度以便建立唯一索引
	// - GORM 标签: uniqueIndex 保证标识符全局唯一，not null 表示非空
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null"`

	// 版块名称，用于页面展示
	// - 类型: varchar(100)
	Name string `gorm:"type:varchar(100);not null"`

	// 版块描述，展示在版块列表中的一句话说明
	Description string `gorm:"type:varchar(255)"`

	// 图标标识，前端根据该值渲染对应的图标
	Icon string `gorm:"type:varchar(50)"`

	// 主题色，例如 "#4f8cff"，前端渲染版块卡片时使用
	Color string `gorm:"type:varchar(20)"`

	// 排序权重，版块列表按该字段升序展示
	// - GORM 标签: default:0 设置默认值，index 优化排序查询
	SortOrder int `gorm:"default:0;index"`
}
