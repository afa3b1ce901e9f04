package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/myErrors"
)

// respondServiceError 将服务层错误映射为统一的 HTTP 错误响应。
// - ErrRepoNotFound -> 404, ErrUnauthenticated -> 401, ErrInvalidLikeTarget -> 400, 其余 -> 500。
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, message+": 资源不存在")
	case errors.Is(err, myErrors.ErrUnauthenticated):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, message+": 缺少用户身份")
	case errors.Is(err, myErrors.ErrInvalidLikeTarget):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, message+": "+err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, message+": "+err.Error())
	}
}
