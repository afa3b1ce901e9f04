package service

import (
	"context"
	"errors"
	"testing"

	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
)

func TestSearchTopics_PassesKeywordAndLimit(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	username := "researcher42"
	topicRepo.On("SearchTopics", mock.Anything, "bpc-157", 10).Return([]*entities.TopicWithAuthor{
		{ID: 11, CategoryID: 2, Title: "BPC-157 踝关节恢复记录", AuthorUsername: &username},
	}, nil)

	result, err := svc.SearchTopics(context.Background(), &dto.SearchTopicsRequestDTO{Q: "bpc-157", Limit: 10})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, uint64(11), result[0].ID)
	require.NotNil(t, result[0].AuthorUsername)
	assert.Equal(t, "researcher42", *result[0].AuthorUsername)
	topicRepo.AssertExpectations(t)
}

func TestGetRecentTopics_AttachesCategorySummaries(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	topicRepo.On("GetRecentTopics", mock.Anything, 5).Return([]*entities.TopicWithAuthor{
		{ID: 1, CategoryID: 2, Title: "第一条"},
		{ID: 2, CategoryID: 2, Title: "第二条"},
		{ID: 3, CategoryID: 4, Title: "第三条"},
	}, nil)
	// 版块 ID 应去重后批量查询
	categoryRepo.On("GetCategoriesByIDs", mock.Anything, []uint64{2, 4}).Return([]*entities.Category{
		{BaseModel: commonEntities.BaseModel{ID: 2}, Slug: "peptide-stacks", Name: "组合方案"},
		{BaseModel: commonEntities.BaseModel{ID: 4}, Slug: "results-progress", Name: "效果记录"},
	}, nil)

	result, err := svc.GetRecentTopics(context.Background(), &dto.GetRecentTopicsRequestDTO{Limit: 5})

	require.NoError(t, err)
	require.Len(t, result, 3)
	require.NotNil(t, result[0].Category)
	assert.Equal(t, "peptide-stacks", result[0].Category.Slug)
	assert.Equal(t, "results-progress", result[2].Category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestGetRecentTopics_CategoryLookupFailureIsTolerated(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	topicRepo.On("GetRecentTopics", mock.Anything, 3).Return([]*entities.TopicWithAuthor{
		{ID: 1, CategoryID: 2, Title: "某主题"},
	}, nil)
	categoryRepo.On("GetCategoriesByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	// 版块摘要是展示性信息，失败时列表仍然返回，版块字段为空
	result, err := svc.GetRecentTopics(context.Background(), &dto.GetRecentTopicsRequestDTO{Limit: 3})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Category)
}

func TestGetRecentTopics_EmptyResult(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	topicRepo.On("GetRecentTopics", mock.Anything, 5).Return([]*entities.TopicWithAuthor{}, nil)

	result, err := svc.GetRecentTopics(context.Background(), &dto.GetRecentTopicsRequestDTO{Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, result)
	categoryRepo.AssertNotCalled(t, "GetCategoriesByIDs", mock.Anything, mock.Anything)
}

func TestGetForumStats(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	topicRepo.On("CountTopics", mock.Anything).Return(int64(128), nil)
	postRepo.On("CountPosts", mock.Anything).Return(int64(1024), nil)

	stats, err := svc.GetForumStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(128), stats.TopicCount)
	assert.Equal(t, int64(1024), stats.PostCount)
}

func TestGetForumStats_TopicCountFailure(t *testing.T) {
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTopicListService(topicRepo, postRepo, categoryRepo, newTestLogger(t))

	topicRepo.On("CountTopics", mock.Anything).Return(int64(0), errors.New("db down"))

	stats, err := svc.GetForumStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
	postRepo.AssertNotCalled(t, "CountPosts", mock.Anything)
}
