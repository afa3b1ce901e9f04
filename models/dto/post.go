package dto

// CreatePostRequest 定义了创建回帖的请求数据结构
// - 所属主题ID 来自 URL 路径参数，不在请求体中
type CreatePostRequest struct {
	Content string `json:"content" form:"content" binding:"required"` // 回帖内容，必填
}

// UpdatePostRequest 定义了更新回帖的请求数据结构
type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"` // 新内容，必填
}

// MarkSolutionRequest 定义了标记/取消"解决方案"的请求数据结构
// - 使用指针以区分 false 与未传值
type MarkSolutionRequest struct {
	IsSolution *bool `json:"is_solution" binding:"required"`
}

// GetTopicPostsRequestDTO 定义了获取主题回帖分页列表的API请求参数。
type GetTopicPostsRequestDTO struct {
	// Page 页码，从 1 开始。
	Page int `form:"page" binding:"required,gte=1"`

	// PageSize 每页数量。
	PageSize int `form:"pageSize" binding:"required,gte=1,lte=100"`
}

// GetOffset 计算分页偏移量。
// - (page - 1) * pageSize
func (dto *GetTopicPostsRequestDTO) GetOffset() int {
	if dto.Page <= 0 {
		return 0
	}
	return (dto.Page - 1) * dto.PageSize
}

// GetLimit 获取每页数量。
func (dto *GetTopicPostsRequestDTO) GetLimit() int {
	return dto.PageSize
}
