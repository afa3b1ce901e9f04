package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/myErrors"
)

func newPostServiceForTest(t *testing.T, postRepo *MockPostRepository, topicRepo *MockTopicRepository, likeRepo *MockLikeRepository) PostService {
	t.Helper()
	// db 与 kafka 生产者在这些用例中不会被触达，传空即可
	return NewPostService(nil, postRepo, topicRepo, likeRepo, nil, newTestLogger(t))
}

func TestCreatePost_RequiresUserID(t *testing.T) {
	postRepo := new(MockPostRepository)
	topicRepo := new(MockTopicRepository)
	svc := newPostServiceForTest(t, postRepo, topicRepo, new(MockLikeRepository))

	result, err := svc.CreatePost(context.Background(), "", 1, &dto.CreatePostRequest{Content: "内容"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, myErrors.ErrUnauthenticated)
	topicRepo.AssertNotCalled(t, "GetTopicByID", mock.Anything, mock.Anything)
	postRepo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_TopicNotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	topicRepo := new(MockTopicRepository)
	svc := newPostServiceForTest(t, postRepo, topicRepo, new(MockLikeRepository))

	topicRepo.On("GetTopicByID", mock.Anything, uint64(404)).Return(nil, commonerrors.ErrRepoNotFound)

	result, err := svc.CreatePost(context.Background(), "user-1", 404, &dto.CreatePostRequest{Content: "内容"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	postRepo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_Success(t *testing.T) {
	postRepo := new(MockPostRepository)
	topicRepo := new(MockTopicRepository)
	svc := newPostServiceForTest(t, postRepo, topicRepo, new(MockLikeRepository))

	topicRepo.On("GetTopicByID", mock.Anything, uint64(7)).Return(&entities.TopicWithAuthor{ID: 7}, nil)
	postRepo.On("CreatePost", mock.Anything, mock.Anything, mock.MatchedBy(func(post *entities.Post) bool {
		return post.TopicID == 7 && post.AuthorID == "user-1" && !post.IsSolution
	})).Run(func(args mock.Arguments) {
		// 模拟数据库回填主键
		args.Get(2).(*entities.Post).BaseModel = commonEntities.BaseModel{ID: 55}
	}).Return(nil)

	result, err := svc.CreatePost(context.Background(), "user-1", 7, &dto.CreatePostRequest{Content: "这个组合对我有效"})

	require.NoError(t, err)
	assert.Equal(t, uint64(55), result.ID)
	assert.Equal(t, uint64(7), result.TopicID)
	assert.Equal(t, "这个组合对我有效", result.Content)
	// 创建路径不经过联查视图，作者用户名为 nil
	assert.Nil(t, result.AuthorUsername)
	postRepo.AssertExpectations(t)
}

func TestGetTopicPosts_PaginationMath(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := newPostServiceForTest(t, postRepo, new(MockTopicRepository), new(MockLikeRepository))

	// 第 3 页、每页 20 条应换算为 offset=40, limit=20
	postRepo.On("GetPostsByTopic", mock.Anything, uint64(7), 40, 20).Return([]*entities.PostWithAuthor{}, int64(41), nil)

	result, err := svc.GetTopicPosts(context.Background(), 7, &dto.GetTopicPostsRequestDTO{Page: 3, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(41), result.Total)
	assert.Empty(t, result.Posts)
	postRepo.AssertExpectations(t)
}

func TestUpdatePost_RequiresUserID(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := newPostServiceForTest(t, postRepo, new(MockTopicRepository), new(MockLikeRepository))

	err := svc.UpdatePost(context.Background(), "", 5, &dto.UpdatePostRequest{Content: "新内容"})

	assert.ErrorIs(t, err, myErrors.ErrUnauthenticated)
	postRepo.AssertNotCalled(t, "UpdatePostContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkAsSolution_SetAndUnset(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := newPostServiceForTest(t, postRepo, new(MockTopicRepository), new(MockLikeRepository))

	postRepo.On("SetSolutionFlag", mock.Anything, uint64(5), true).Return(nil).Once()
	postRepo.On("SetSolutionFlag", mock.Anything, uint64(5), false).Return(nil).Once()

	require.NoError(t, svc.MarkAsSolution(context.Background(), "user-1", 5, true))
	require.NoError(t, svc.MarkAsSolution(context.Background(), "user-1", 5, false))
	postRepo.AssertExpectations(t)
}

func TestMarkAsSolution_PostNotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := newPostServiceForTest(t, postRepo, new(MockTopicRepository), new(MockLikeRepository))

	postRepo.On("SetSolutionFlag", mock.Anything, uint64(404), true).Return(commonerrors.ErrRepoNotFound)

	err := svc.MarkAsSolution(context.Background(), "user-1", 404, true)

	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}
