package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/service"
)

// TopicListController 定义跨版块主题列表查询控制器的结构体
type TopicListController struct {
	topicListService service.TopicListService // 服务层接口，通过依赖注入传入
}

// NewTopicListController 构造函数，用于创建 TopicListController 实例
func NewTopicListController(topicListService service.TopicListService) *TopicListController {
	return &TopicListController{
		topicListService: topicListService,
	}
}

// SearchTopics 处理主题搜索的 HTTP 请求
// @Summary      搜索主题 (公开)
// @Description  对主题的标题与正文做大小写不敏感的子串搜索，按创建时间倒序返回。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        q query string true "搜索关键词 (最大长度 255)" maxLength(255)
// @Param        limit query int true "返回结果的最大条数" Format(int) minimum(1) maximum(50)
// @Success      200 {object} vo.TopicListResponseWrapper "主题搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/topics/search [get]
func (ctrl *TopicListController) SearchTopics(c *gin.Context) {
	var reqDTO dto.SearchTopicsRequestDTO
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	topics, err := ctrl.topicListService.SearchTopics(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "主题搜索失败")
		return
	}

	response.RespondSuccess(c, topics, "主题搜索成功")
}

// GetRecentTopics 处理获取最新主题列表的 HTTP 请求
// @Summary      获取最新主题列表 (公开)
// @Description  获取全站最新创建的主题列表，各项附带所属版块摘要。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        limit query int true "返回结果的最大条数" Format(int) minimum(1) maximum(50)
// @Success      200 {object} vo.TopicListResponseWrapper "最新主题列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/topics/recent [get]
func (ctrl *TopicListController) GetRecentTopics(c *gin.Context) {
	var reqDTO dto.GetRecentTopicsRequestDTO
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	topics, err := ctrl.topicListService.GetRecentTopics(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取最新主题列表失败")
		return
	}

	response.RespondSuccess(c, topics, "最新主题列表获取成功")
}

// GetForumStats 处理获取论坛统计的 HTTP 请求
// @Summary      获取论坛统计 (公开)
// @Description  获取论坛的全局统计数据：主题总数与回帖总数。
// @Tags         stats (统计)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ForumStatsResponseWrapper "论坛统计获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/stats [get]
func (ctrl *TopicListController) GetForumStats(c *gin.Context) {
	stats, err := ctrl.topicListService.GetForumStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取论坛统计失败")
		return
	}

	response.RespondSuccess(c, stats, "论坛统计获取成功")
}

// RegisterRoutes 注册 TopicListController 的路由
func (ctrl *TopicListController) RegisterRoutes(group *gin.RouterGroup) {
	topics := group.Group("/topics")
	{
		topics.GET("/search", ctrl.SearchTopics)    // GET /api/v1/forum/topics/search
		topics.GET("/recent", ctrl.GetRecentTopics) // GET /api/v1/forum/topics/recent
	}
	group.GET("/stats", ctrl.GetForumStats) // GET /api/v1/forum/stats
}
