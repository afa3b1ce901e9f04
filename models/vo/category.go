package vo

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// CategoryResponse 定义了版块基础信息的响应数据结构
type CategoryResponse struct {
	ID          uint64    `json:"id"`          // 版块ID
	Slug        string    `json:"slug"`        // 版块标识符 (URL 友好)
	Name        string    `json:"name"`        // 版块名称
	Description string    `json:"description"` // 版块描述
	Icon        string    `json:"icon"`        // 图标标识
	Color       string    `json:"color"`       // 主题色
	SortOrder   int       `json:"sort_order"`  // 排序权重
	CreatedAt   time.Time `json:"created_at"`  // 创建时间
}

// NewCategoryResponseFromEntity 将单个 Category 实体转换为 CategoryResponse。
func NewCategoryResponseFromEntity(entity *entities.Category) *CategoryResponse {
	if entity == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          entity.ID,
		Slug:        entity.Slug,
		Name:        entity.Name,
		Description: entity.Description,
		Icon:        entity.Icon,
		Color:       entity.Color,
		SortOrder:   entity.SortOrder,
		CreatedAt:   entity.CreatedAt,
	}
}

// MapCategoriesToResponsesVO 将版块实体列表转换为响应VO列表。
func MapCategoriesToResponsesVO(categories []*entities.Category) []*CategoryResponse {
	if len(categories) == 0 {
		return []*CategoryResponse{} // 返回空切片而不是nil，便于前端处理
	}

	responses := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		if category == nil {
			continue
		}
		responses = append(responses, NewCategoryResponseFromEntity(category))
	}
	return responses
}
