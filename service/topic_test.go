package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Xushengqwer/go-common/commonerrors"
	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/myErrors"
)

// topicServiceMocks 聚合 topicService 的全部依赖 Mock，供各测试按需打桩。
type topicServiceMocks struct {
	topicRepo      *MockTopicRepository
	postRepo       *MockPostRepository
	likeRepo       *MockLikeRepository
	topicImageRepo *MockTopicImageRepository
	categoryRepo   *MockCategoryRepository
	cosClient      *MockCOSClient
	topicViewRepo  *MockTopicViewRepository
}

// newTopicServiceForTest 构造被测服务。db 仅在需要真实事务行为的用例中传入，
// 其余用例传 nil；Kafka 生产者传 nil，未配置 broker 时事件静默丢弃。
func newTopicServiceForTest(t *testing.T, db *gorm.DB) (TopicService, *topicServiceMocks) {
	t.Helper()

	m := &topicServiceMocks{
		topicRepo:      new(MockTopicRepository),
		postRepo:       new(MockPostRepository),
		likeRepo:       new(MockLikeRepository),
		topicImageRepo: new(MockTopicImageRepository),
		categoryRepo:   new(MockCategoryRepository),
		cosClient:      new(MockCOSClient),
		topicViewRepo:  new(MockTopicViewRepository),
	}
	svc := NewTopicService(
		db,
		m.topicRepo,
		m.postRepo,
		m.likeRepo,
		m.topicImageRepo,
		m.categoryRepo,
		m.cosClient,
		m.topicViewRepo,
		nil,
		newTestLogger(t),
	)
	return svc, m
}

// newSQLMockDB 基于 sqlmock 构造 GORM 实例，使 db.Transaction 在测试中可用。
func newSQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, dbMock
}

// imageFileHeader 构造一个真实的 multipart.FileHeader，内容与表单上传一致。
func imageFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, filename))
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func TestCreateTopic_UnauthenticatedNeverTouchesStore(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	detail, err := svc.CreateTopic(context.Background(), "", &dto.CreateTopicRequest{
		CategoryID: 3,
		Title:      "BPC-157 叠加方案",
		Content:    "正文",
	}, nil)

	assert.ErrorIs(t, err, myErrors.ErrUnauthenticated)
	assert.Nil(t, detail)
	// 身份缺失时任何存储依赖都不应被触达
	m.categoryRepo.AssertNotCalled(t, "GetCategoryByID", mock.Anything, mock.Anything)
	m.cosClient.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.topicRepo.AssertNotCalled(t, "CreateTopic", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTopic_TransactionFailureCleansUpUploadedImages(t *testing.T) {
	db, dbMock := newSQLMockDB(t)
	svc, m := newTopicServiceForTest(t, db)

	m.categoryRepo.On("GetCategoryByID", mock.Anything, uint64(3)).
		Return(&entities.Category{
			BaseModel: commonEntities.BaseModel{ID: 3},
			Slug:      "peptide-stacks",
			Name:      "肽叠加方案",
		}, nil)

	fileHeader := imageFileHeader(t, "diagram.png")

	var uploadedKey string
	m.cosClient.On("UploadFile", mock.Anything, mock.AnythingOfType("string"), mock.Anything, fileHeader.Size, "image/png").
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return("https://cos.example.com/diagram.png", nil)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	m.topicRepo.On("CreateTopic", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))
	m.cosClient.On("DeleteObject", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	detail, err := svc.CreateTopic(context.Background(), "user-1", &dto.CreateTopicRequest{
		CategoryID: 3,
		Title:      "BPC-157 叠加方案",
		Content:    "正文",
	}, []*multipart.FileHeader{fileHeader})

	assert.Error(t, err)
	assert.Nil(t, detail)
	// 事务失败后已上传对象必须被清理，且清理的正是上传时生成的 ObjectKey
	require.NotEmpty(t, uploadedKey)
	m.cosClient.AssertCalled(t, "DeleteObject", mock.Anything, uploadedKey)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetTopicDetailByID_ViewCountFailureDoesNotFailRead(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	m.topicRepo.On("GetTopicByID", mock.Anything, uint64(9)).Return(&entities.TopicWithAuthor{
		ID:         9,
		CategoryID: 3,
		AuthorID:   "user-1",
		Title:      "GHK-Cu 使用记录",
		Content:    "正文",
		ViewCount:  12,
	}, nil)

	incremented := make(chan struct{})
	m.topicViewRepo.On("IncrementViewCount", mock.Anything, uint64(9)).
		Run(func(mock.Arguments) { close(incremented) }).
		Return(errors.New("redis: connection refused"))

	m.categoryRepo.On("GetCategoryByID", mock.Anything, uint64(3)).
		Return(&entities.Category{
			BaseModel: commonEntities.BaseModel{ID: 3},
			Slug:      "peptide-stacks",
			Name:      "肽叠加方案",
		}, nil)
	m.topicImageRepo.On("GetImagesByTopicID", mock.Anything, uint64(9)).
		Return([]*entities.TopicImage{}, nil)

	detail, err := svc.GetTopicDetailByID(context.Background(), 9)

	// 浏览计数是旁路操作，Redis 故障不影响详情读取
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, uint64(9), detail.ID)
	assert.Equal(t, int64(12), detail.ViewCount)

	select {
	case <-incremented:
	case <-time.After(2 * time.Second):
		t.Fatal("浏览计数自增未被触发")
	}
}

func TestDeleteTopic_CascadeOrder(t *testing.T) {
	db, dbMock := newSQLMockDB(t)
	svc, m := newTopicServiceForTest(t, db)

	topicIDs := []uint64{77}
	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}

	m.topicImageRepo.On("GetObjectKeysByTopicIDs", mock.Anything, topicIDs).
		Run(record("GetObjectKeysByTopicIDs")).
		Return([]string{"forum/topics/images/20260828/k1.png"}, nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()
	m.likeRepo.On("DeleteLikesByTopicIDs", mock.Anything, mock.Anything, topicIDs).
		Run(record("DeleteLikesByTopicIDs")).Return(nil)
	m.likeRepo.On("DeleteLikesByPostsOfTopics", mock.Anything, mock.Anything, topicIDs).
		Run(record("DeleteLikesByPostsOfTopics")).Return(nil)
	m.postRepo.On("DeletePostsByTopicIDs", mock.Anything, mock.Anything, topicIDs).
		Run(record("DeletePostsByTopicIDs")).Return(nil)
	m.topicImageRepo.On("DeleteImagesByTopicIDs", mock.Anything, mock.Anything, topicIDs).
		Run(record("DeleteImagesByTopicIDs")).Return(nil)
	m.topicRepo.On("DeleteTopic", mock.Anything, mock.Anything, uint64(77)).
		Run(record("DeleteTopic")).Return(nil)

	cosCleaned := make(chan struct{})
	m.cosClient.On("DeleteObject", mock.Anything, "forum/topics/images/20260828/k1.png").
		Run(func(mock.Arguments) { close(cosCleaned) }).
		Return(nil)

	err := svc.DeleteTopic(context.Background(), "user-1", 77)

	require.NoError(t, err)
	// 点赞先于其宿主删除：回帖上的点赞依赖回帖行的子查询定位
	assert.Equal(t, []string{
		"GetObjectKeysByTopicIDs",
		"DeleteLikesByTopicIDs",
		"DeleteLikesByPostsOfTopics",
		"DeletePostsByTopicIDs",
		"DeleteImagesByTopicIDs",
		"DeleteTopic",
	}, calls)
	require.NoError(t, dbMock.ExpectationsWereMet())

	select {
	case <-cosCleaned:
	case <-time.After(2 * time.Second):
		t.Fatal("COS 对象清理未被触发")
	}
}

func TestDeleteTopic_NotFoundPropagates(t *testing.T) {
	db, dbMock := newSQLMockDB(t)
	svc, m := newTopicServiceForTest(t, db)

	m.topicImageRepo.On("GetObjectKeysByTopicIDs", mock.Anything, []uint64{404}).
		Return([]string{}, nil)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	m.likeRepo.On("DeleteLikesByTopicIDs", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.likeRepo.On("DeleteLikesByPostsOfTopics", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.postRepo.On("DeletePostsByTopicIDs", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.topicImageRepo.On("DeleteImagesByTopicIDs", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.topicRepo.On("DeleteTopic", mock.Anything, mock.Anything, uint64(404)).
		Return(commonerrors.ErrRepoNotFound)

	err := svc.DeleteTopic(context.Background(), "user-1", 404)

	// 仓库层的未找到语义原样透出，供控制器映射 404
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUpdateTopic_EmptyUpdateMissingTopicReturnsNotFound(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	m.topicRepo.On("GetTopicByID", mock.Anything, uint64(5)).
		Return(nil, commonerrors.ErrRepoNotFound)

	err := svc.UpdateTopic(context.Background(), "user-1", 5, &dto.UpdateTopicRequest{})

	// 空更新不能掩盖主题不存在的事实
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	m.topicRepo.AssertNotCalled(t, "UpdateTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTopic_EmptyUpdateExistingTopicIsNoOp(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	m.topicRepo.On("GetTopicByID", mock.Anything, uint64(5)).
		Return(&entities.TopicWithAuthor{ID: 5, CategoryID: 3, Title: "标题"}, nil)

	err := svc.UpdateTopic(context.Background(), "user-1", 5, &dto.UpdateTopicRequest{})

	require.NoError(t, err)
	// 没有字段可写时不应发出任何 UPDATE
	m.topicRepo.AssertNotCalled(t, "UpdateTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTopic_DelegatesToRepo(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	newTitle := "更新后的标题"
	m.topicRepo.On("UpdateTopic", mock.Anything, uint64(5), &newTitle, (*string)(nil)).Return(nil)

	err := svc.UpdateTopic(context.Background(), "user-1", 5, &dto.UpdateTopicRequest{Title: &newTitle})

	require.NoError(t, err)
	m.topicRepo.AssertExpectations(t)
}

func TestUpdateTopic_Unauthenticated(t *testing.T) {
	svc, m := newTopicServiceForTest(t, nil)

	newTitle := "更新后的标题"
	err := svc.UpdateTopic(context.Background(), "", 5, &dto.UpdateTopicRequest{Title: &newTitle})

	assert.ErrorIs(t, err, myErrors.ErrUnauthenticated)
	m.topicRepo.AssertNotCalled(t, "UpdateTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
