package vo

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// TopicResponse 定义了主题摘要信息的响应数据结构
// - AuthorUsername 在存储不支持作者联查视图时为 nil，前端需做兜底展示
type TopicResponse struct {
	ID             uint64    `json:"id"`              // 主题ID
	CategoryID     uint64    `json:"category_id"`     // 所属版块ID
	Title          string    `json:"title"`           // 主题标题
	AuthorID       string    `json:"author_id"`       // 作者ID
	AuthorUsername *string   `json:"author_username"` // 作者用户名，可能为 null
	IsPinned       bool      `json:"is_pinned"`       // 是否置顶
	ViewCount      int64     `json:"view_count"`      // 浏览量
	PostCount      int64     `json:"post_count"`      // 回帖数 (派生值，按需填充)
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`      // 更新时间

	// Category 所属版块摘要，仅在需要跨版块展示的列表（如最新主题）中填充
	Category *CategoryResponse `json:"category,omitempty"`
}

// TopicDetailVO 定义了主题详情页的完整视图对象。
// 它聚合了主题行、所属版块以及配图列表的信息。
type TopicDetailVO struct {
	ID             uint64    `json:"id"`              // 主题ID
	CategoryID     uint64    `json:"category_id"`     // 所属版块ID
	Title          string    `json:"title"`           // 主题标题
	Content        string    `json:"content"`         // 主题正文，保留换行符
	AuthorID       string    `json:"author_id"`       // 作者ID
	AuthorUsername *string   `json:"author_username"` // 作者用户名，可能为 null
	IsPinned       bool      `json:"is_pinned"`       // 是否置顶
	ViewCount      int64     `json:"view_count"`      // 浏览量
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`      // 更新时间

	// Category 所属版块摘要，版块缺失（数据不一致）时为 nil
	Category *CategoryResponse `json:"category"`

	// Images 主题配图列表，已按 DisplayOrder 排序
	Images []TopicImageVO `json:"images"`
}

// TopicImageVO 定义了主题配图的视图对象。
type TopicImageVO struct {
	ImageURL     string `json:"image_url"`     // 图片URL
	DisplayOrder int    `json:"display_order"` // 图片展示顺序
	ObjectKey    string `json:"object_key"`    // 图片在COS中的ObjectKey
}

// NewTopicImageVOsFromEntities 将 TopicImage 实体切片转换为 TopicImageVO 切片。
// 此函数会处理 nil 或空切片，以及切片中可能存在的 nil 元素。
func NewTopicImageVOsFromEntities(images []*entities.TopicImage) []TopicImageVO {
	if len(images) == 0 {
		return make([]TopicImageVO, 0) // 返回空的非 nil 切片，JSON 序列化为 [] 而不是 null
	}

	vos := make([]TopicImageVO, 0, len(images))
	for _, image := range images {
		if image == nil {
			continue
		}
		vos = append(vos, TopicImageVO{
			ImageURL:     image.ImageURL,
			DisplayOrder: image.DisplayOrder,
			ObjectKey:    image.ObjectKey,
		})
	}
	return vos
}

// CategoryTopicsPageVO 定义了版块主题分页查询的响应结构。
// - 包含版块信息、当前页的主题列表和总记录数。
type CategoryTopicsPageVO struct {
	Category *CategoryResponse `json:"category"` // 版块信息
	Topics   []*TopicResponse  `json:"topics"`   // 当前页的主题摘要列表
	Total    int64             `json:"total"`    // 符合条件的总记录数
}

// ListHotTopicsByCursorResponse 查看热门主题列表（基础信息）游标加载
type ListHotTopicsByCursorResponse struct {
	Topics     []*TopicResponse `json:"topics"`      // 主题列表
	NextCursor *uint64          `json:"next_cursor"` // 下一个游标，nil 表示无更多数据
}

// ForumStatsVO 定义了论坛全局统计的响应结构。
type ForumStatsVO struct {
	TopicCount int64 `json:"topic_count"` // 主题总数
	PostCount  int64 `json:"post_count"`  // 回帖总数
}

// NewTopicResponseFromAuthorRow 将统一的主题读取行转换为 TopicResponse。
func NewTopicResponseFromAuthorRow(row *entities.TopicWithAuthor) *TopicResponse {
	if row == nil {
		return nil
	}
	return &TopicResponse{
		ID:             row.ID,
		CategoryID:     row.CategoryID,
		Title:          row.Title,
		AuthorID:       row.AuthorID,
		AuthorUsername: row.AuthorUsername,
		IsPinned:       row.IsPinned,
		ViewCount:      row.ViewCount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// MapAuthorRowsToTopicResponsesVO 将主题读取行列表转换为响应VO列表。
func MapAuthorRowsToTopicResponsesVO(rows []*entities.TopicWithAuthor) []*TopicResponse {
	if len(rows) == 0 {
		return []*TopicResponse{}
	}

	responses := make([]*TopicResponse, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		responses = append(responses, NewTopicResponseFromAuthorRow(row))
	}
	return responses
}

// MapTopicsToTopicResponsesVO 将主题实体列表转换为响应VO列表。
// - 用于热榜缓存等只存基础实体的读路径，作者用户名恒为 nil。
func MapTopicsToTopicResponsesVO(topics []*entities.Topic) []*TopicResponse {
	if len(topics) == 0 {
		return []*TopicResponse{}
	}

	responses := make([]*TopicResponse, 0, len(topics))
	for _, topic := range topics {
		if topic == nil {
			continue
		}
		responses = append(responses, &TopicResponse{
			ID:         topic.ID,
			CategoryID: topic.CategoryID,
			Title:      topic.Title,
			AuthorID:   topic.AuthorID,
			IsPinned:   topic.IsPinned,
			ViewCount:  topic.ViewCount,
			CreatedAt:  topic.CreatedAt,
			UpdatedAt:  topic.UpdatedAt,
		})
	}
	return responses
}
