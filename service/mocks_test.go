package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/tencentyun/cos-go-sdk-v5"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// 本文件集中定义服务层测试使用的仓库 Mock。
// 每个 Mock 对应 repo 包的一个接口，供同包下的各测试文件复用。

// MockCategoryRepository 是 mysql.CategoryRepository 接口的模拟实现
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoriesByIDs(ctx context.Context, ids []uint64) ([]*entities.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

// MockTopicRepository 是 mysql.TopicRepository 接口的模拟实现
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error {
	args := m.Called(ctx, db, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) GetTopicByID(ctx context.Context, id uint64) (*entities.TopicWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TopicWithAuthor), args.Error(1)
}

func (m *MockTopicRepository) GetTopicsByCategory(ctx context.Context, categoryID uint64, offset, limit int) ([]*entities.TopicWithAuthor, int64, error) {
	args := m.Called(ctx, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.TopicWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *MockTopicRepository) UpdateTopic(ctx context.Context, topicID uint64, title *string, content *string) error {
	args := m.Called(ctx, topicID, title, content)
	return args.Error(0)
}

func (m *MockTopicRepository) DeleteTopic(ctx context.Context, db *gorm.DB, id uint64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockTopicRepository) SearchTopics(ctx context.Context, keyword string, limit int) ([]*entities.TopicWithAuthor, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TopicWithAuthor), args.Error(1)
}

func (m *MockTopicRepository) GetRecentTopics(ctx context.Context, limit int) ([]*entities.TopicWithAuthor, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TopicWithAuthor), args.Error(1)
}

func (m *MockTopicRepository) CountTopics(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopicRepository) GetTopicIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockTopicRepository) DeleteTopicsByIDs(ctx context.Context, db *gorm.DB, ids []uint64) error {
	args := m.Called(ctx, db, ids)
	return args.Error(0)
}

// MockPostRepository 是 mysql.PostRepository 接口的模拟实现
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	args := m.Called(ctx, db, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByTopic(ctx context.Context, topicID uint64, offset, limit int) ([]*entities.PostWithAuthor, int64, error) {
	args := m.Called(ctx, topicID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.PostWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) UpdatePostContent(ctx context.Context, postID uint64, content string) error {
	args := m.Called(ctx, postID, content)
	return args.Error(0)
}

func (m *MockPostRepository) SetSolutionFlag(ctx context.Context, postID uint64, isSolution bool) error {
	args := m.Called(ctx, postID, isSolution)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePostsByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	args := m.Called(ctx, db, topicIDs)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePostsByAuthor(ctx context.Context, db *gorm.DB, authorID string) error {
	args := m.Called(ctx, db, authorID)
	return args.Error(0)
}

func (m *MockPostRepository) CountPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetPostCountsByTopicIDs(ctx context.Context, topicIDs []uint64) (map[uint64]int64, error) {
	args := m.Called(ctx, topicIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]int64), args.Error(1)
}

// MockLikeRepository 是 mysql.LikeRepository 接口的模拟实现
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) InsertLike(ctx context.Context, like *entities.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLikeByTarget(ctx context.Context, userID string, topicID *uint64, postID *uint64) (bool, error) {
	args := m.Called(ctx, userID, topicID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteLikesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	args := m.Called(ctx, db, topicIDs)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLikesByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	args := m.Called(ctx, db, postID)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLikesByPostsOfTopics(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	args := m.Called(ctx, db, topicIDs)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLikesByUser(ctx context.Context, db *gorm.DB, userID string) error {
	args := m.Called(ctx, db, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLikesByPostsOfAuthor(ctx context.Context, db *gorm.DB, authorID string) error {
	args := m.Called(ctx, db, authorID)
	return args.Error(0)
}

// MockTopicImageRepository 是 mysql.TopicImageRepository 接口的模拟实现
type MockTopicImageRepository struct {
	mock.Mock
}

func (m *MockTopicImageRepository) BatchCreateTopicImages(ctx context.Context, db *gorm.DB, images []*entities.TopicImage) error {
	args := m.Called(ctx, db, images)
	return args.Error(0)
}

func (m *MockTopicImageRepository) GetImagesByTopicID(ctx context.Context, topicID uint64) ([]*entities.TopicImage, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TopicImage), args.Error(1)
}

func (m *MockTopicImageRepository) GetObjectKeysByTopicIDs(ctx context.Context, topicIDs []uint64) ([]string, error) {
	args := m.Called(ctx, topicIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTopicImageRepository) DeleteImagesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	args := m.Called(ctx, db, topicIDs)
	return args.Error(0)
}

// MockTopicViewRepository 是 redis.TopicViewRepository 接口的模拟实现
type MockTopicViewRepository struct {
	mock.Mock
}

func (m *MockTopicViewRepository) IncrementViewCount(ctx context.Context, topicID uint64) error {
	args := m.Called(ctx, topicID)
	return args.Error(0)
}

func (m *MockTopicViewRepository) GetAllViewCounts(ctx context.Context) (map[uint64]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]int64), args.Error(1)
}

// MockCOSClient 是 dependencies.COSClientInterface 接口的模拟实现
type MockCOSClient struct {
	mock.Mock
}

func (m *MockCOSClient) GetClient() *cos.Client {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*cos.Client)
}

func (m *MockCOSClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectKey, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockCOSClient) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

// MockTopicCache 是 redis.Cache 接口的模拟实现
type MockTopicCache struct {
	mock.Mock
}

func (m *MockTopicCache) GetTopicRank(ctx context.Context, topicID uint64) (int64, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopicCache) GetTopicsByRange(ctx context.Context, start, stop int64) ([]uint64, error) {
	args := m.Called(ctx, start, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockTopicCache) GetTopics(ctx context.Context, topicIDs []uint64) ([]*entities.Topic, error) {
	args := m.Called(ctx, topicIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Topic), args.Error(1)
}

// MockTopicBatchRepository 是 mysql.TopicBatchOperationsRepository 接口的模拟实现
type MockTopicBatchRepository struct {
	mock.Mock
}

func (m *MockTopicBatchRepository) BatchUpdateTopicViewCounts(ctx context.Context, viewCounts map[uint64]int64) error {
	args := m.Called(ctx, viewCounts)
	return args.Error(0)
}

func (m *MockTopicBatchRepository) GetTopicsByIDs(ctx context.Context, ids []uint64) ([]*entities.Topic, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Topic), args.Error(1)
}
