package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/service"
)

// TopicController 定义主题控制器的结构体
type TopicController struct {
	topicService service.TopicService // 服务层接口，通过依赖注入传入
}

// NewTopicController 构造函数，用于创建 TopicController 实例
func NewTopicController(topicService service.TopicService) *TopicController {
	return &TopicController{
		topicService: topicService,
	}
}

// CreateTopic 处理创建主题的 HTTP 请求，包含配图上传。
// DTO 字段作为独立的表单字段提交，请求体为 multipart/form-data。
// @Summary      创建新主题 (独立表单字段及配图)
// @Description  在指定版块下创建一个新主题，配图文件随表单一并上传。作者身份从请求上下文中获取。
// @Tags         topics (主题)
// @Accept       multipart/form-data
// @Produce      json
// @Param        category_id formData uint64 true "所属版块ID" minimum(1)
// @Param        title formData string true "主题标题" maxLength(255)
// @Param        content formData string true "主题正文"
// @Param        images formData file false "主题配图文件 (可多选)"
// @Success      200 {object} vo.TopicDetailResponseWrapper "主题创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或文件处理错误"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "目标版块不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "创建主题时发生内部服务器错误"
// @Router       /api/v1/forum/topics [post]
func (ctrl *TopicController) CreateTopic(c *gin.Context) {
	// 1. 解析 Multipart Form，超出内存上限的部分落到临时磁盘文件
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "解析表单数据失败: "+err.Error())
		return
	}

	// 2. 绑定并验证表单字段
	var req dto.CreateTopicRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	// 3. 获取配图文件部分，"images" 是前端 FormData.append("images", file) 使用的字段名
	form := c.Request.MultipartForm
	if form == nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "未能获取 multipart form 数据")
		return
	}
	files := form.File["images"]

	// 4. 从上下文取网关透传的用户ID，服务层会对空值做最终校验
	userID := c.GetString(string(constants.UserIDKey))

	topicDetailVO, err := ctrl.topicService.CreateTopic(c.Request.Context(), userID, &req, files)
	if err != nil {
		respondServiceError(c, err, "创建主题失败")
		return
	}

	response.RespondSuccess(c, topicDetailVO, "主题创建成功")
}

// GetTopicDetail 处理获取主题详情的 HTTP 请求
// @Summary      获取指定ID的主题详情 (公开)
// @Description  通过主题的 ID 检索详细信息（含版块摘要与配图列表）。每次成功读取都会异步增加一次浏览量。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "主题 ID" Format(uint64)
// @Success      200 {object} vo.TopicDetailResponseWrapper "主题详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的主题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "检索主题详情时发生内部服务器错误"
// @Router       /api/v1/forum/topics/{topic_id} [get]
func (ctrl *TopicController) GetTopicDetail(c *gin.Context) {
	topicIDStr := c.Param("topic_id")
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	detail, err := ctrl.topicService.GetTopicDetailByID(c.Request.Context(), topicID)
	if err != nil {
		respondServiceError(c, err, "检索主题详情失败")
		return
	}

	response.RespondSuccess(c, detail, "主题详情检索成功")
}

// UpdateTopic 处理更新主题的 HTTP 请求
// @Summary      更新指定ID的主题
// @Description  更新主题的标题与正文，未提供的字段保持不变。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "主题 ID" Format(uint64)
// @Param        request body dto.UpdateTopicRequest true "更新主题请求体"
// @Success      200 {object} vo.BaseResponseWrapper "主题更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新主题时发生内部服务器错误"
// @Router       /api/v1/forum/topics/{topic_id} [put]
func (ctrl *TopicController) UpdateTopic(c *gin.Context) {
	topicIDStr := c.Param("topic_id")
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	if err := ctrl.topicService.UpdateTopic(c.Request.Context(), userID, topicID, &req); err != nil {
		respondServiceError(c, err, "更新主题失败")
		return
	}

	response.RespondSuccess[any](c, nil, "主题更新成功")
}

// DeleteTopic 处理删除主题的 HTTP 请求
// @Summary      删除指定ID的主题
// @Description  删除主题及其全部关联数据（回帖、点赞、配图）。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "主题 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "主题删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的主题 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除主题时发生内部服务器错误"
// @Router       /api/v1/forum/topics/{topic_id} [delete]
func (ctrl *TopicController) DeleteTopic(c *gin.Context) {
	topicIDStr := c.Param("topic_id")
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	if err := ctrl.topicService.DeleteTopic(c.Request.Context(), userID, topicID); err != nil {
		respondServiceError(c, err, "删除主题失败")
		return
	}

	response.RespondSuccess[any](c, nil, "主题删除成功")
}

// RegisterRoutes 注册 TopicController 的路由
func (ctrl *TopicController) RegisterRoutes(group *gin.RouterGroup) {
	topics := group.Group("/topics")
	{
		topics.POST("", ctrl.CreateTopic)             // POST   /api/v1/forum/topics
		topics.GET("/:topic_id", ctrl.GetTopicDetail) // GET    /api/v1/forum/topics/:topic_id
		topics.PUT("/:topic_id", ctrl.UpdateTopic)    // PUT    /api/v1/forum/topics/:topic_id
		topics.DELETE("/:topic_id", ctrl.DeleteTopic) // DELETE /api/v1/forum/topics/:topic_id
	}
}
