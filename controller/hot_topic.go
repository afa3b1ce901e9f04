package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/service"
)

// HotTopicController 定义热门主题控制器的结构体
type HotTopicController struct {
	hotTopicService service.HotTopicService // 服务层接口，通过依赖注入传入
}

// NewHotTopicController 构造函数，注入服务层依赖
func NewHotTopicController(hotTopicService service.HotTopicService) *HotTopicController {
	return &HotTopicController{
		hotTopicService: hotTopicService,
	}
}

// GetHotTopicsByCursor 处理获取热门主题的 HTTP 请求
// @Summary      通过游标获取热门主题 (公开)
// @Description  使用基于游标的分页方式，检索热门主题榜单。榜单由后台任务按浏览量定期刷新。
// @Tags         hot-topics (热门主题)
// @Accept       json
// @Produce      json
// @Param        last_topic_id query uint64 false "上一页最后一个主题的 ID，首页省略" Format(uint64)
// @Param        limit query int true "每页主题数量" Format(int) minimum(1)
// @Success      200 {object} vo.ListTopicsByCursorResponseWrapper "热门主题检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的输入参数"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热门主题时发生内部服务器错误"
// @Router       /api/v1/forum/hot-topics [get]
func (ctrl *HotTopicController) GetHotTopicsByCursor(c *gin.Context) {
	// 1. 处理 last_topic_id 参数（可选）
	var lastTopicID *uint64
	if lastTopicIDStr := c.Query("last_topic_id"); lastTopicIDStr != "" {
		id, err := strconv.ParseUint(lastTopicIDStr, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 last topic ID 格式")
			return
		}
		lastTopicID = &id
	}

	// 2. 处理 limit 参数（必填）
	limitStr := c.Query("limit")
	if limitStr == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "limit 是必需的")
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit，必须是正整数")
		return
	}

	// 3. 调用服务层获取热门主题
	responseData, err := ctrl.hotTopicService.GetHotTopicsByCursor(c.Request.Context(), lastTopicID, limit)
	if err != nil {
		respondServiceError(c, err, "检索热门主题失败")
		return
	}

	response.RespondSuccess(c, responseData, "热门主题检索成功")
}

// RegisterRoutes 注册 HotTopicController 的路由
func (ctrl *HotTopicController) RegisterRoutes(group *gin.RouterGroup) {
	hotTopics := group.Group("/hot-topics")
	{
		hotTopics.GET("", ctrl.GetHotTopicsByCursor) // GET /api/v1/forum/hot-topics
	}
}
