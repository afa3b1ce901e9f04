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

// PostController 定义回帖控制器的结构体
type PostController struct {
	postService service.PostService // 服务层接口，通过依赖注入传入
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost 处理在主题下发布回帖的 HTTP 请求
// @Summary      发布回帖
// @Description  在指定主题下发布一条回帖。作者身份从请求上下文中获取。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "所属主题 ID" Format(uint64)
// @Param        request body dto.CreatePostRequest true "创建回帖请求体"
// @Success      200 {object} vo.PostResponseWrapper "回帖发布成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "目标主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "发布回帖时发生内部服务器错误"
// @Router       /api/v1/forum/topics/{topic_id}/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	topicIDStr := c.Param("topic_id")
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), userID, topicID, &req)
	if err != nil {
		respondServiceError(c, err, "发布回帖失败")
		return
	}

	response.RespondSuccess(c, postVO, "回帖发布成功")
}

// GetTopicPosts 处理获取主题回帖分页列表的 HTTP 请求
// @Summary      获取主题回帖列表 (公开)
// @Description  获取指定主题下的回帖分页列表，按发布时间正序（楼层顺序）排列。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "所属主题 ID" Format(uint64)
// @Param        page query int true "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        pageSize query int true "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.TopicPostsPageResponseWrapper "回帖列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/topics/{topic_id}/posts [get]
func (ctrl *PostController) GetTopicPosts(c *gin.Context) {
	topicIDStr := c.Param("topic_id")
	topicID, err := strconv.ParseUint(topicIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	var reqDTO dto.GetTopicPostsRequestDTO
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.postService.GetTopicPosts(c.Request.Context(), topicID, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取回帖列表失败")
		return
	}

	response.RespondSuccess(c, pageVO, "回帖列表获取成功")
}

// UpdatePost 处理更新回帖内容的 HTTP 请求
// @Summary      更新指定ID的回帖
// @Description  替换回帖的内容。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "回帖 ID" Format(uint64)
// @Param        request body dto.UpdatePostRequest true "更新回帖请求体"
// @Success      200 {object} vo.BaseResponseWrapper "回帖更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "回帖不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新回帖时发生内部服务器错误"
// @Router       /api/v1/forum/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回帖 ID 格式")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	if err := ctrl.postService.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		respondServiceError(c, err, "更新回帖失败")
		return
	}

	response.RespondSuccess[any](c, nil, "回帖更新成功")
}

// MarkSolution 处理标记/取消"解决方案"的 HTTP 请求
// @Summary      标记或取消回帖为解决方案
// @Description  设置或取消回帖的"解决方案"标记。标记不互斥，同一主题下可存在多条解决方案。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "回帖 ID" Format(uint64)
// @Param        request body dto.MarkSolutionRequest true "标记解决方案请求体"
// @Success      200 {object} vo.BaseResponseWrapper "解决方案标记更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "回帖不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "更新解决方案标记时发生内部服务器错误"
// @Router       /api/v1/forum/posts/{post_id}/solution [put]
func (ctrl *PostController) MarkSolution(c *gin.Context) {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回帖 ID 格式")
		return
	}

	var req dto.MarkSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	if err := ctrl.postService.MarkAsSolution(c.Request.Context(), userID, postID, *req.IsSolution); err != nil {
		respondServiceError(c, err, "更新解决方案标记失败")
		return
	}

	response.RespondSuccess[any](c, nil, "解决方案标记更新成功")
}

// DeletePost 处理删除回帖的 HTTP 请求
// @Summary      删除指定ID的回帖
// @Description  删除回帖及其收到的点赞。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "回帖 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "回帖删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的回帖 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "回帖不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除回帖时发生内部服务器错误"
// @Router       /api/v1/forum/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回帖 ID 格式")
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	if err := ctrl.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		respondServiceError(c, err, "删除回帖失败")
		return
	}

	response.RespondSuccess[any](c, nil, "回帖删除成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	// 回帖的创建与列表挂在所属主题之下
	topicPosts := group.Group("/topics/:topic_id/posts")
	{
		topicPosts.POST("", ctrl.CreatePost)   // POST /api/v1/forum/topics/:topic_id/posts
		topicPosts.GET("", ctrl.GetTopicPosts) // GET  /api/v1/forum/topics/:topic_id/posts
	}

	posts := group.Group("/posts")
	{
		posts.PUT("/:post_id", ctrl.UpdatePost)            // PUT    /api/v1/forum/posts/:post_id
		posts.PUT("/:post_id/solution", ctrl.MarkSolution) // PUT    /api/v1/forum/posts/:post_id/solution
		posts.DELETE("/:post_id", ctrl.DeletePost)         // DELETE /api/v1/forum/posts/:post_id
	}
}
