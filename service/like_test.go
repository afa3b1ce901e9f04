package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/myErrors"
)

// newTestLogger 创建测试用的 logger，级别设为 error 以减少测试输出噪音。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	return logger
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestToggleLike_RequiresUserID(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	result, err := svc.ToggleLike(context.Background(), "", &dto.ToggleLikeRequest{TopicID: uint64Ptr(1)})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, myErrors.ErrUnauthenticated)
	// 身份校验失败不应触达任何存储层
	likeRepo.AssertNotCalled(t, "InsertLike", mock.Anything, mock.Anything)
	topicRepo.AssertNotCalled(t, "GetTopicByID", mock.Anything, mock.Anything)
}

func TestToggleLike_RejectsInvalidTarget(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	// 两个目标都未设置
	_, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{})
	assert.ErrorIs(t, err, myErrors.ErrInvalidLikeTarget)

	// 两个目标同时设置
	_, err = svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{
		TopicID: uint64Ptr(1),
		PostID:  uint64Ptr(2),
	})
	assert.ErrorIs(t, err, myErrors.ErrInvalidLikeTarget)

	likeRepo.AssertNotCalled(t, "InsertLike", mock.Anything, mock.Anything)
}

func TestToggleLike_TargetTopicNotFound(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	topicRepo.On("GetTopicByID", mock.Anything, uint64(99)).Return(nil, commonerrors.ErrRepoNotFound)

	result, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{TopicID: uint64Ptr(99)})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	likeRepo.AssertNotCalled(t, "InsertLike", mock.Anything, mock.Anything)
}

func TestToggleLike_InsertSucceedsMeansLiked(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	topicRepo.On("GetTopicByID", mock.Anything, uint64(7)).Return(&entities.TopicWithAuthor{ID: 7}, nil)
	likeRepo.On("InsertLike", mock.Anything, mock.MatchedBy(func(like *entities.Like) bool {
		return like.UserID == "user-1" && like.TopicID != nil && *like.TopicID == 7 && like.PostID == nil
	})).Return(nil)

	result, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{TopicID: uint64Ptr(7)})

	require.NoError(t, err)
	assert.True(t, result.Liked)
	likeRepo.AssertExpectations(t)
}

func TestToggleLike_DuplicateKeyTurnsIntoUnlike(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	postRepo.On("GetPostByID", mock.Anything, uint64(42)).Return(&entities.Post{}, nil)
	// 唯一索引冲突表示已点赞，服务应转为取消
	likeRepo.On("InsertLike", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	likeRepo.On("DeleteLikeByTarget", mock.Anything, "user-1", (*uint64)(nil), mock.MatchedBy(func(postID *uint64) bool {
		return postID != nil && *postID == 42
	})).Return(true, nil)

	result, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{PostID: uint64Ptr(42)})

	require.NoError(t, err)
	assert.False(t, result.Liked)
	likeRepo.AssertExpectations(t)
}

func TestToggleLike_ConcurrentUnlikeAlreadyGone(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	topicRepo.On("GetTopicByID", mock.Anything, uint64(7)).Return(&entities.TopicWithAuthor{ID: 7}, nil)
	likeRepo.On("InsertLike", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	// 并发窗口内记录已被另一请求删除，最终状态仍是未点赞
	likeRepo.On("DeleteLikeByTarget", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(false, nil)

	result, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{TopicID: uint64Ptr(7)})

	require.NoError(t, err)
	assert.False(t, result.Liked)
}

func TestToggleLike_InsertFailurePropagates(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewLikeService(likeRepo, topicRepo, postRepo, newTestLogger(t))

	dbErr := errors.New("connection reset")
	topicRepo.On("GetTopicByID", mock.Anything, uint64(7)).Return(&entities.TopicWithAuthor{ID: 7}, nil)
	likeRepo.On("InsertLike", mock.Anything, mock.Anything).Return(dbErr)

	result, err := svc.ToggleLike(context.Background(), "user-1", &dto.ToggleLikeRequest{TopicID: uint64Ptr(7)})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
	likeRepo.AssertNotCalled(t, "DeleteLikeByTarget", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
