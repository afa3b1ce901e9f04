package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// CategoryListResponseWrapper 对应 response.APIResponse[[]*vo.CategoryResponse]
type CategoryListResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    []*CategoryResponse `json:"data"`
}

// CategoryTopicsPageResponseWrapper 对应 response.APIResponse[vo.CategoryTopicsPageVO]
type CategoryTopicsPageResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    CategoryTopicsPageVO `json:"data"`
}

// TopicResponseWrapper 对应 response.APIResponse[vo.TopicResponse]
type TopicResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    TopicResponse `json:"data"`
}

// TopicDetailResponseWrapper 对应 response.APIResponse[vo.TopicDetailVO]
type TopicDetailResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    TopicDetailVO `json:"data"`
}

// TopicListResponseWrapper 对应 response.APIResponse[[]*vo.TopicResponse]
// 用于搜索与最新主题接口的成功响应。
type TopicListResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    []*TopicResponse `json:"data"`
}

// TopicPostsPageResponseWrapper 对应 response.APIResponse[vo.TopicPostsPageVO]
type TopicPostsPageResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    TopicPostsPageVO `json:"data"`
}

// PostResponseWrapper 对应 response.APIResponse[vo.PostResponse]
type PostResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    PostResponse `json:"data"`
}

// LikeStatusResponseWrapper 对应 response.APIResponse[vo.LikeStatusVO]
type LikeStatusResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    LikeStatusVO `json:"data"`
}

// ForumStatsResponseWrapper 对应 response.APIResponse[vo.ForumStatsVO]
type ForumStatsResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    ForumStatsVO `json:"data"`
}

// ListTopicsByCursorResponseWrapper 对应 response.APIResponse[vo.ListHotTopicsByCursorResponse]
type ListTopicsByCursorResponseWrapper struct {
	Code    int                           `json:"code" example:"0"`
	Message string                        `json:"message,omitempty" example:"success"`
	Data    ListHotTopicsByCursorResponse `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
