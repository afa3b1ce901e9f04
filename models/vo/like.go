package vo

// LikeStatusVO 定义了点赞切换后的状态响应。
type LikeStatusVO struct {
	Liked bool `json:"liked"` // true 表示本次操作后处于已点赞状态
}
