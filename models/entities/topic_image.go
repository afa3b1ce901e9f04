package entities

import "github.com/Xushengqwer/go-common/models/entities"

// TopicImage 主题配图实体
//   - 使用场景: 存储主题正文中每一张独立的配图信息。
//   - 表名: topic_images (GORM 默认会使用蛇形复数形式)
//   - 关系: 与 Topic 表为"多对一"关系 (一个 Topic 可以有多张 TopicImage)。
//     通过 TopicID 外键字段关联到 topics 表的主键。
type TopicImage struct {
	entities.BaseModel // 嵌入自定义的 BaseModel, 包含 ID, CreatedAt, UpdatedAt, DeletedAt 字段

	// 关联的主题ID (外键，指向 Topic 表的主键)
	// - GORM 标签:
	//   - not null: 确保每张图片都必须关联到一个主题。
	//   - index: 为此外键添加数据库索引，优化获取某个主题全部图片的查询。
	TopicID uint64 `gorm:"not null;index"`

	// 图片URL或存储路径
	// - 类型: varchar(1023)，通常足够存储大部分URL。
	ImageURL string `gorm:"type:varchar(1023);not null"`

	// 图片在COS中的ObjectKey，删除主题时据此清理 COS 对象
	ObjectKey string `gorm:"type:varchar(255);not null;index"`

	// 图片展示顺序，用于控制图片在前端展示时的顺序，例如 0, 1, 2...
	DisplayOrder int `gorm:"default:0;index"`
}
