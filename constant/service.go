package constant

// 服务标识，用于追踪和日志
const (
	ServiceName    = "forum_service"
	ServiceVersion = "1.0.0"
)
