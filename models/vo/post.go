package vo

import (
	"time"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// PostResponse 定义了回帖信息的响应数据结构
// - AuthorUsername 在存储不支持作者联查视图时为 nil
type PostResponse struct {
	ID             uint64    `json:"id"`              // 回帖ID
	TopicID        uint64    `json:"topic_id"`        // 所属主题ID
	Content        string    `json:"content"`         // 回帖内容
	AuthorID       string    `json:"author_id"`       // 作者ID
	AuthorUsername *string   `json:"author_username"` // 作者用户名，可能为 null
	IsSolution     bool      `json:"is_solution"`     // 是否被标记为解决方案
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`      // 更新时间
}

// TopicPostsPageVO 定义了主题回帖分页查询的响应结构。
// - 包含当前页的回帖列表和总记录数。
type TopicPostsPageVO struct {
	Posts []*PostResponse `json:"posts"` // 当前页的回帖列表，按发布时间正序
	Total int64           `json:"total"` // 符合条件的总记录数
}

// NewPostResponseFromAuthorRow 将统一的回帖读取行转换为 PostResponse。
func NewPostResponseFromAuthorRow(row *entities.PostWithAuthor) *PostResponse {
	if row == nil {
		return nil
	}
	return &PostResponse{
		ID:             row.ID,
		TopicID:        row.TopicID,
		Content:        row.Content,
		AuthorID:       row.AuthorID,
		AuthorUsername: row.AuthorUsername,
		IsSolution:     row.IsSolution,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// MapAuthorRowsToPostResponsesVO 将回帖读取行列表转换为响应VO列表。
func MapAuthorRowsToPostResponsesVO(rows []*entities.PostWithAuthor) []*PostResponse {
	if len(rows) == 0 {
		return []*PostResponse{} // 返回空切片而不是nil，便于前端处理
	}

	responses := make([]*PostResponse, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		responses = append(responses, NewPostResponseFromAuthorRow(row))
	}
	return responses
}
