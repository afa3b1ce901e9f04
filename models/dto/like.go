package dto

// ToggleLikeRequest 定义了点赞/取消点赞的请求数据结构
// - TopicID 与 PostID 必须恰好设置其一，否则服务层返回 ErrInvalidLikeTarget
type ToggleLikeRequest struct {
	TopicID *uint64 `json:"topic_id" binding:"omitempty,gte=1"` // 点赞目标为主题时设置
	PostID  *uint64 `json:"post_id" binding:"omitempty,gte=1"`  // 点赞目标为回帖时设置
}
