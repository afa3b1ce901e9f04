package service

import (
	"context"
	"testing"

	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/entities"
)

func hotTopic(id uint64, title string) *entities.Topic {
	return &entities.Topic{
		BaseModel: commonEntities.BaseModel{ID: id},
		Title:     title,
	}
}

func TestGetHotTopicsByCursor_RejectsNonPositiveLimit(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	result, err := svc.GetHotTopicsByCursor(context.Background(), nil, 0)

	assert.Nil(t, result)
	assert.Error(t, err)
	topicCache.AssertNotCalled(t, "GetTopicsByRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHotTopicsByCursor_FirstPage(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	// 首次加载从排名 0 开始，limit=3 对应范围 [0, 2]
	topicCache.On("GetTopicsByRange", mock.Anything, int64(0), int64(2)).Return([]uint64{10, 20, 30}, nil)
	topicCache.On("GetTopics", mock.Anything, []uint64{10, 20, 30}).Return([]*entities.Topic{
		hotTopic(10, "榜首"), hotTopic(20, "第二"), hotTopic(30, "第三"),
	}, nil)

	result, err := svc.GetHotTopicsByCursor(context.Background(), nil, 3)

	require.NoError(t, err)
	require.Len(t, result.Topics, 3)
	assert.Equal(t, uint64(10), result.Topics[0].ID)
	// 取满 limit 条，游标指向本页最后一个 ID
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, uint64(30), *result.NextCursor)
}

func TestGetHotTopicsByCursor_SecondPageStartsAfterCursorRank(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	// 游标主题排名为 2，下一页应从排名 3 开始
	topicCache.On("GetTopicRank", mock.Anything, uint64(30)).Return(int64(2), nil)
	topicCache.On("GetTopicsByRange", mock.Anything, int64(3), int64(4)).Return([]uint64{40}, nil)
	topicCache.On("GetTopics", mock.Anything, []uint64{40}).Return([]*entities.Topic{hotTopic(40, "第四")}, nil)

	cursor := uint64(30)
	result, err := svc.GetHotTopicsByCursor(context.Background(), &cursor, 2)

	require.NoError(t, err)
	require.Len(t, result.Topics, 1)
	// 不足 limit 条说明已到榜单末尾，不再返回游标
	assert.Nil(t, result.NextCursor)
	topicCache.AssertExpectations(t)
}

func TestGetHotTopicsByCursor_CursorDroppedFromRank(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	// 榜单刷新后游标主题掉榜，无法定位下一页
	topicCache.On("GetTopicRank", mock.Anything, uint64(99)).Return(int64(-1), nil)

	cursor := uint64(99)
	result, err := svc.GetHotTopicsByCursor(context.Background(), &cursor, 10)

	assert.Nil(t, result)
	assert.Error(t, err)
	topicCache.AssertNotCalled(t, "GetTopicsByRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHotTopicsByCursor_EmptyRangeMeansEnd(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	topicCache.On("GetTopicsByRange", mock.Anything, int64(0), int64(9)).Return([]uint64{}, nil)

	result, err := svc.GetHotTopicsByCursor(context.Background(), nil, 10)

	require.NoError(t, err)
	assert.Empty(t, result.Topics)
	assert.Nil(t, result.NextCursor)
	topicCache.AssertNotCalled(t, "GetTopics", mock.Anything, mock.Anything)
}

func TestGetHotTopicsByCursor_BackfillsCacheMissesInRankOrder(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	topicCache.On("GetTopicsByRange", mock.Anything, int64(0), int64(2)).Return([]uint64{10, 20, 30}, nil)
	// Hash 缓存未命中 ID=20，应回源数据库补齐
	topicCache.On("GetTopics", mock.Anything, []uint64{10, 20, 30}).Return([]*entities.Topic{
		hotTopic(10, "榜首"), hotTopic(30, "第三"),
	}, nil)
	topicBatch.On("GetTopicsByIDs", mock.Anything, []uint64{20}).Return([]*entities.Topic{hotTopic(20, "第二")}, nil)

	result, err := svc.GetHotTopicsByCursor(context.Background(), nil, 3)

	require.NoError(t, err)
	require.Len(t, result.Topics, 3)
	// 结果必须恢复 ZSet 的排名顺序
	assert.Equal(t, uint64(10), result.Topics[0].ID)
	assert.Equal(t, uint64(20), result.Topics[1].ID)
	assert.Equal(t, uint64(30), result.Topics[2].ID)
	topicBatch.AssertExpectations(t)
}

func TestGetHotTopicsByCursor_FullyMissingTopicIsSkipped(t *testing.T) {
	topicCache := new(MockTopicCache)
	topicBatch := new(MockTopicBatchRepository)
	svc := NewHotTopicService(topicCache, topicBatch, newTestLogger(t))

	topicCache.On("GetTopicsByRange", mock.Anything, int64(0), int64(2)).Return([]uint64{10, 20, 30}, nil)
	topicCache.On("GetTopics", mock.Anything, []uint64{10, 20, 30}).Return([]*entities.Topic{
		hotTopic(10, "榜首"), hotTopic(30, "第三"),
	}, nil)
	// 数据库也查不到 (主题已删除但榜单未刷新)，该条从结果中剔除
	topicBatch.On("GetTopicsByIDs", mock.Anything, []uint64{20}).Return([]*entities.Topic{}, nil)

	result, err := svc.GetHotTopicsByCursor(context.Background(), nil, 3)

	require.NoError(t, err)
	require.Len(t, result.Topics, 2)
	assert.Equal(t, uint64(10), result.Topics[0].ID)
	assert.Equal(t, uint64(30), result.Topics[1].ID)
	// 游标仍基于 ZSet 返回的 ID 序列
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, uint64(30), *result.NextCursor)
}
