package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/events"
	"github.com/Xushengqwer/forum_service/models/vo"
)

// MockTopicService 是 service.TopicService 接口的模拟实现
type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) CreateTopic(ctx context.Context, userID string, req *dto.CreateTopicRequest, imageFiles []*multipart.FileHeader) (*vo.TopicDetailVO, error) {
	args := m.Called(ctx, userID, req, imageFiles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vo.TopicDetailVO), args.Error(1)
}

func (m *MockTopicService) GetTopicDetailByID(ctx context.Context, topicID uint64) (*vo.TopicDetailVO, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vo.TopicDetailVO), args.Error(1)
}

func (m *MockTopicService) UpdateTopic(ctx context.Context, userID string, topicID uint64, req *dto.UpdateTopicRequest) error {
	args := m.Called(ctx, userID, topicID, req)
	return args.Error(0)
}

func (m *MockTopicService) DeleteTopic(ctx context.Context, userID string, topicID uint64) error {
	args := m.Called(ctx, userID, topicID)
	return args.Error(0)
}

func (m *MockTopicService) PurgeUserContent(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newHandlerForTest(t *testing.T) (*UserPurgeHandler, *MockTopicService) {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	topicService := new(MockTopicService)
	return NewUserPurgeHandler(logger, topicService), topicService
}

func deactivatedMessage(t *testing.T, userID string) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(events.UserDeactivatedEvent{
		EventID:   "evt-1",
		Timestamp: time.Now(),
		UserID:    userID,
	})
	require.NoError(t, err)
	return kafka.Message{Topic: "user_deactivated", Value: payload}
}

func TestUserPurgeHandler_Success(t *testing.T) {
	handler, topicService := newHandlerForTest(t)

	topicService.On("PurgeUserContent", mock.Anything, "user-1").Return(nil)

	err := handler.Handle(context.Background(), deactivatedMessage(t, "user-1"))

	require.NoError(t, err)
	topicService.AssertExpectations(t)
}

func TestUserPurgeHandler_MalformedPayloadIsNotRetried(t *testing.T) {
	handler, topicService := newHandlerForTest(t)

	// 无法解析的消息返回 nil，避免消费循环无限重试
	err := handler.Handle(context.Background(), kafka.Message{Value: []byte("not json")})

	require.NoError(t, err)
	topicService.AssertNotCalled(t, "PurgeUserContent", mock.Anything, mock.Anything)
}

func TestUserPurgeHandler_MissingUserIDIsIgnored(t *testing.T) {
	handler, topicService := newHandlerForTest(t)

	err := handler.Handle(context.Background(), deactivatedMessage(t, ""))

	require.NoError(t, err)
	topicService.AssertNotCalled(t, "PurgeUserContent", mock.Anything, mock.Anything)
}

func TestUserPurgeHandler_NothingToPurgeIsNotRetried(t *testing.T) {
	handler, topicService := newHandlerForTest(t)

	topicService.On("PurgeUserContent", mock.Anything, "user-1").Return(commonerrors.ErrRepoNotFound)

	err := handler.Handle(context.Background(), deactivatedMessage(t, "user-1"))

	require.NoError(t, err)
}

func TestUserPurgeHandler_TransientFailurePropagates(t *testing.T) {
	handler, topicService := newHandlerForTest(t)

	topicService.On("PurgeUserContent", mock.Anything, "user-1").Return(errors.New("db down"))

	// 暂时性失败应向消费循环返回错误以触发重试
	err := handler.Handle(context.Background(), deactivatedMessage(t, "user-1"))

	assert.Error(t, err)
}
