package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
)

func TestListCategories_MapsEntities(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewCategoryService(categoryRepo, topicRepo, postRepo, newTestLogger(t))

	categoryRepo.On("ListCategories", mock.Anything).Return([]*entities.Category{
		{BaseModel: commonEntities.BaseModel{ID: 1}, Slug: "general-discussion", Name: "综合讨论", SortOrder: 1},
		{BaseModel: commonEntities.BaseModel{ID: 2}, Slug: "dosing-protocols", Name: "剂量方案", SortOrder: 2},
	}, nil)

	result, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "general-discussion", result[0].Slug)
	assert.Equal(t, "剂量方案", result[1].Name)
}

func TestGetCategoryTopics_SlugNotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewCategoryService(categoryRepo, topicRepo, postRepo, newTestLogger(t))

	categoryRepo.On("GetCategoryBySlug", mock.Anything, "no-such-slug").Return(nil, commonerrors.ErrRepoNotFound)

	result, err := svc.GetCategoryTopics(context.Background(), "no-such-slug", &dto.GetCategoryTopicsRequestDTO{Page: 1, PageSize: 20})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	topicRepo.AssertNotCalled(t, "GetTopicsByCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCategoryTopics_FillsPostCounts(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewCategoryService(categoryRepo, topicRepo, postRepo, newTestLogger(t))

	categoryRepo.On("GetCategoryBySlug", mock.Anything, "peptide-stacks").Return(&entities.Category{
		BaseModel: commonEntities.BaseModel{ID: 3},
		Slug:      "peptide-stacks",
		Name:      "组合方案",
	}, nil)
	// 第 2 页、每页 10 条应换算为 offset=10, limit=10
	topicRepo.On("GetTopicsByCategory", mock.Anything, uint64(3), 10, 10).Return([]*entities.TopicWithAuthor{
		{ID: 101, CategoryID: 3, Title: "BPC-157 与 TB-500 的组合"},
		{ID: 102, CategoryID: 3, Title: "GHK-Cu 单方案记录"},
	}, int64(25), nil)
	postRepo.On("GetPostCountsByTopicIDs", mock.Anything, []uint64{101, 102}).Return(map[uint64]int64{101: 4}, nil)

	result, err := svc.GetCategoryTopics(context.Background(), "peptide-stacks", &dto.GetCategoryTopicsRequestDTO{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	require.Len(t, result.Topics, 2)
	assert.Equal(t, int64(4), result.Topics[0].PostCount)
	// 统计结果中缺失的主题按 0 处理
	assert.Equal(t, int64(0), result.Topics[1].PostCount)
	topicRepo.AssertExpectations(t)
}

func TestGetCategoryTopics_PostCountFailureIsTolerated(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	topicRepo := new(MockTopicRepository)
	postRepo := new(MockPostRepository)
	svc := NewCategoryService(categoryRepo, topicRepo, postRepo, newTestLogger(t))

	categoryRepo.On("GetCategoryBySlug", mock.Anything, "research-news").Return(&entities.Category{
		BaseModel: commonEntities.BaseModel{ID: 6},
		Slug:      "research-news",
	}, nil)
	topicRepo.On("GetTopicsByCategory", mock.Anything, uint64(6), 0, 20).Return([]*entities.TopicWithAuthor{
		{ID: 201, CategoryID: 6, Title: "最新临床进展汇总"},
	}, int64(1), nil)
	postRepo.On("GetPostCountsByTopicIDs", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	// 回帖数是展示性的派生值，统计失败时列表仍然返回
	result, err := svc.GetCategoryTopics(context.Background(), "research-news", &dto.GetCategoryTopicsRequestDTO{Page: 1, PageSize: 20})

	require.NoError(t, err)
	require.Len(t, result.Topics, 1)
	assert.Equal(t, int64(0), result.Topics[0].PostCount)
}
