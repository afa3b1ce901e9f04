package dto

// CreateTopicRequest 定义了创建主题的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreateTopicRequest struct {
	CategoryID uint64 `json:"category_id" form:"category_id" binding:"required,gte=1"` // 所属版块ID，必填
	Title      string `json:"title" form:"title" binding:"required,max=255"`           // 主题标题，必填，最大255字符
	Content    string `json:"content" form:"content" binding:"required"`               // 主题正文，必填

	// 注意：这里没有 Images 字段，因为图片文件是作为 multipart/form-data 的一部分直接上传的。
	// 文件按附加到 FormData 的顺序处理，DisplayOrder 依接收顺序递增。
}

// UpdateTopicRequest 定义了更新主题的请求数据结构
// - 两个字段均为指针，nil 表示该字段不更新
type UpdateTopicRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"` // 新标题，可选
	Content *string `json:"content" binding:"omitempty"`       // 新正文，可选
}

// GetCategoryTopicsRequestDTO 定义了获取版块主题分页列表的API请求参数。
// - 用于控制器层接收和验证来自客户端的HTTP请求。
type GetCategoryTopicsRequestDTO struct {
	// Page 页码，从 1 开始。
	// - 从URL查询参数 "page" 获取。
	Page int `form:"page" binding:"required,gte=1"`

	// PageSize 每页数量。
	// - 从URL查询参数 "pageSize" 获取。
	PageSize int `form:"pageSize" binding:"required,gte=1,lte=100"`
}

// GetOffset 计算分页偏移量。
// - (page - 1) * pageSize
func (dto *GetCategoryTopicsRequestDTO) GetOffset() int {
	if dto.Page <= 0 {
		return 0
	}
	return (dto.Page - 1) * dto.PageSize
}

// GetLimit 获取每页数量。
func (dto *GetCategoryTopicsRequestDTO) GetLimit() int {
	return dto.PageSize
}

// SearchTopicsRequestDTO 定义了主题搜索的API请求参数。
type SearchTopicsRequestDTO struct {
	// Q 搜索关键词，对标题与正文做大小写不敏感的子串匹配。
	Q string `form:"q" binding:"required,max=255"`

	// Limit 返回结果的最大条数。
	Limit int `form:"limit" binding:"required,gte=1,lte=50"`
}

// GetRecentTopicsRequestDTO 定义了获取最新主题列表的API请求参数。
type GetRecentTopicsRequestDTO struct {
	// Limit 返回结果的最大条数。
	Limit int `form:"limit" binding:"required,gte=1,lte=50"`
}
