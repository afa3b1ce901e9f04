package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/service"
)

// CategoryController 定义版块控制器的结构体
type CategoryController struct {
	categoryService service.CategoryService // 服务层接口，通过依赖注入传入
}

// NewCategoryController 构造函数，用于创建 CategoryController 实例
func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories 获取全部版块列表
// @Summary      获取版块列表 (公开)
// @Description  获取论坛全部版块，按排序权重升序返回。
// @Tags         categories (版块)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "版块列表获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取版块列表失败")
		return
	}

	response.RespondSuccess(c, categories, "版块列表获取成功")
}

// GetCategoryTopics 获取版块下的主题分页列表
// @Summary      获取版块主题列表 (公开)
// @Description  通过版块的 slug 获取其下的主题分页列表。置顶主题优先，其余按创建时间倒序，每项附带回帖数。
// @Tags         categories (版块)
// @Accept       json
// @Produce      json
// @Param        slug path string true "版块标识符 (URL 友好)"
// @Param        page query int true "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        pageSize query int true "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.CategoryTopicsPageResponseWrapper "版块主题列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      404 {object} vo.BaseResponseWrapper "版块不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/forum/categories/{slug}/topics [get]
func (ctrl *CategoryController) GetCategoryTopics(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "版块标识符不能为空")
		return
	}

	var reqDTO dto.GetCategoryTopicsRequestDTO
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.categoryService.GetCategoryTopics(c.Request.Context(), slug, &reqDTO)
	if err != nil {
		respondServiceError(c, err, "获取版块主题列表失败")
		return
	}

	response.RespondSuccess(c, pageVO, "版块主题列表获取成功")
}

// RegisterRoutes 注册 CategoryController 的路由
func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup) {
	categories := group.Group("/categories")
	{
		categories.GET("", ctrl.ListCategories)                 // GET /api/v1/forum/categories
		categories.GET("/:slug/topics", ctrl.GetCategoryTopics) // GET /api/v1/forum/categories/:slug/topics
	}
}
