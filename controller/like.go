package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/service"
)

// LikeController 定义点赞控制器的结构体
type LikeController struct {
	likeService service.LikeService // 服务层接口，通过依赖注入传入
}

// NewLikeController 构造函数，用于创建 LikeController 实例
func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{
		likeService: likeService,
	}
}

// ToggleLike 处理点赞切换的 HTTP 请求
// @Summary      切换点赞状态
// @Description  切换当前用户对主题或回帖的点赞状态。目标必须且只能指定主题或回帖中的一个。未点赞则点赞，已点赞则取消。
// @Tags         likes (点赞)
// @Accept       json
// @Produce      json
// @Param        request body dto.ToggleLikeRequest true "点赞切换请求体 (topic_id 与 post_id 恰好提供其一)"
// @Success      200 {object} vo.LikeStatusResponseWrapper "点赞状态切换成功，返回切换后的状态"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或点赞目标不合法"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "点赞目标不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "切换点赞状态时发生内部服务器错误"
// @Router       /api/v1/forum/likes/toggle [post]
func (ctrl *LikeController) ToggleLike(c *gin.Context) {
	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	userID := c.GetString(string(constants.UserIDKey))

	statusVO, err := ctrl.likeService.ToggleLike(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "切换点赞状态失败")
		return
	}

	response.RespondSuccess(c, statusVO, "点赞状态切换成功")
}

// RegisterRoutes 注册 LikeController 的路由
func (ctrl *LikeController) RegisterRoutes(group *gin.RouterGroup) {
	likes := group.Group("/likes")
	{
		likes.POST("/toggle", ctrl.ToggleLike) // POST /api/v1/forum/likes/toggle
	}
}
