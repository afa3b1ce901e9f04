package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/dependencies"
	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/events"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/repo/redis"
)

// TopicService 定义了处理主题核心业务逻辑的接口。
type TopicService interface {
	// CreateTopic 处理用户发布新主题的业务流程。
	// - userID 来自网关注入的用户上下文，为空时拒绝写入并返回 myErrors.ErrUnauthenticated。
	// - 先将配图上传到 COS，再将主题与配图记录原子性地写入数据库。
	// - 数据库事务失败时清理已上传的 COS 对象，避免孤立文件。
	// - 成功创建后，异步发送主题创建事件。
	CreateTopic(ctx context.Context, userID string, req *dto.CreateTopicRequest, imageFiles []*multipart.FileHeader) (*vo.TopicDetailVO, error)

	// GetTopicDetailByID 获取单个主题的详细信息（含版块摘要与配图列表）。
	// - 每次成功读取都异步增加一次浏览计数，不阻塞主流程。
	// - 返回的 ViewCount 是数据库中的值，与 Redis 中的实时计数存在同步窗口内的偏差。
	GetTopicDetailByID(ctx context.Context, topicID uint64) (*vo.TopicDetailVO, error)

	// UpdateTopic 更新主题的标题与正文，nil 字段不更新。
	UpdateTopic(ctx context.Context, userID string, topicID uint64, req *dto.UpdateTopicRequest) error

	// DeleteTopic 删除主题及其全部关联数据（回帖、点赞、配图）。
	// - 数据库内的级联删除在单个事务中完成；COS 对象与 Kafka 通知在事务成功后异步处理。
	DeleteTopic(ctx context.Context, userID string, topicID uint64) error

	// PurgeUserContent 清理指定用户在论坛中的全部内容。
	// - 由用户注销事件的消费者调用：删除该用户的主题（及其下所有回帖与点赞）、
	//   该用户发布的回帖（及其收到的点赞）、该用户发出的点赞。
	PurgeUserContent(ctx context.Context, userID string) error
}

// topicService 是 TopicService 接口的具体实现。
type topicService struct {
	db             *gorm.DB                        // GORM 数据库实例，主要用于事务管理
	topicRepo      mysql.TopicRepository           // 主题的 MySQL 操作
	postRepo       mysql.PostRepository            // 回帖的 MySQL 操作，级联删除使用
	likeRepo       mysql.LikeRepository            // 点赞的 MySQL 操作，级联删除使用
	topicImageRepo mysql.TopicImageRepository      // 主题配图的 MySQL 操作
	categoryRepo   mysql.CategoryRepository        // 版块的 MySQL 操作，详情页拼装使用
	cosClient      dependencies.COSClientInterface // COS 云存储依赖
	topicViewRepo  redis.TopicViewRepository       // 浏览量相关的 Redis 操作
	kafkaSvc       *producer.KafkaProducer         // Kafka 生产者，用于发送异步消息
	logger         *core.ZapLogger
}

// NewTopicService 是 topicService 的构造函数，通过依赖注入初始化服务实例。
func NewTopicService(
	db *gorm.DB,
	topicRepo mysql.TopicRepository,
	postRepo mysql.PostRepository,
	likeRepo mysql.LikeRepository,
	topicImageRepo mysql.TopicImageRepository,
	categoryRepo mysql.CategoryRepository,
	cosClient dependencies.COSClientInterface,
	topicViewRepo redis.TopicViewRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) TopicService {
	return &topicService{
		db:             db,
		topicRepo:      topicRepo,
		postRepo:       postRepo,
		likeRepo:       likeRepo,
		topicImageRepo: topicImageRepo,
		categoryRepo:   categoryRepo,
		cosClient:      cosClient,
		topicViewRepo:  topicViewRepo,
		kafkaSvc:       kafkaSvc,
		logger:         logger,
	}
}

// generateTopicImageObjectKey 创建一个唯一的 COS 对象键。
// 规则: forum/topics/images/YYYYMMDD/userID_uuid.ext
func (s *topicService) generateTopicImageObjectKey(originalFilename string, userID string) string {
	datePrefix := time.Now().Format("20060102")
	randomUUID := uuid.NewString()
	extension := strings.ToLower(filepath.Ext(originalFilename))

	return fmt.Sprintf("%s%s/%s_%s%s",
		constant.COSObjectKeyPrefixTopicImages,
		datePrefix,
		userID,
		randomUUID,
		extension,
	)
}

// uploadedImageInfo 记录单张配图上传成功后的信息，供事务写入与失败清理使用。
type uploadedImageInfo struct {
	ImageURL     string
	ObjectKey    string
	DisplayOrder int
}

// CreateTopic 处理用户创建新主题的请求，包括配图上传和数据库操作。
func (s *topicService) CreateTopic(ctx context.Context, userID string, req *dto.CreateTopicRequest, imageFiles []*multipart.FileHeader) (*vo.TopicDetailVO, error) {
	// 1. 写操作必须携带用户身份，在触达任何存储之前拒绝
	if userID == "" {
		s.logger.Warn("创建主题被拒绝：请求缺少用户身份")
		return nil, myErrors.ErrUnauthenticated
	}

	// 2. 校验目标版块存在
	category, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("创建主题失败：目标版块不存在", zap.Uint64("categoryID", req.CategoryID))
		} else {
			s.logger.Error("创建主题：校验版块失败", zap.Uint64("categoryID", req.CategoryID), zap.Error(err))
		}
		return nil, err
	}

	// 3. 先将配图上传到 COS
	uploadedImages := make([]uploadedImageInfo, 0, len(imageFiles))
	for i, fileHeader := range imageFiles {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			s.logger.Error("打开配图文件以上传失败",
				zap.String("filename", fileHeader.Filename),
				zap.Error(openErr))
			return nil, fmt.Errorf("打开配图文件 %s 失败: %w", fileHeader.Filename, openErr)
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
			s.logger.Warn("未提供配图的内容类型，使用默认值",
				zap.String("filename", fileHeader.Filename),
				zap.String("defaultContentType", contentType))
		}

		objectKey := s.generateTopicImageObjectKey(fileHeader.Filename, userID)

		imageURL, uploadErr := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
		file.Close()
		if uploadErr != nil {
			s.logger.Error("上传配图到 COS 失败",
				zap.String("filename", fileHeader.Filename),
				zap.String("objectKey", objectKey),
				zap.Error(uploadErr))
			// 已上传成功的对象在此处立即清理，保持 COS 与数据库一致
			s.cleanupCOSObjects(uploadedImageObjectKeys(uploadedImages))
			return nil, fmt.Errorf("上传配图 %s 到 COS 失败: %w", fileHeader.Filename, uploadErr)
		}

		uploadedImages = append(uploadedImages, uploadedImageInfo{
			ImageURL:     imageURL,
			ObjectKey:    objectKey,
			DisplayOrder: i, // 文件按附加到 FormData 的顺序处理
		})
	}

	// 4. 在事务中写入主题与配图记录
	var createdTopic *entities.Topic
	var createdImages []*entities.TopicImage

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic := &entities.Topic{
			CategoryID: req.CategoryID,
			AuthorID:   userID,
			Title:      req.Title,
			Content:    req.Content,
			IsPinned:   false,
			ViewCount:  0,
		}
		if repoErr := s.topicRepo.CreateTopic(ctx, tx, topic); repoErr != nil {
			return fmt.Errorf("创建主题失败: %w", repoErr)
		}
		createdTopic = topic

		if len(uploadedImages) > 0 {
			imagesToCreate := make([]*entities.TopicImage, len(uploadedImages))
			for i, imgInfo := range uploadedImages {
				imagesToCreate[i] = &entities.TopicImage{
					TopicID:      topic.ID,
					ImageURL:     imgInfo.ImageURL,
					ObjectKey:    imgInfo.ObjectKey,
					DisplayOrder: imgInfo.DisplayOrder,
				}
			}
			if repoErr := s.topicImageRepo.BatchCreateTopicImages(ctx, tx, imagesToCreate); repoErr != nil {
				return fmt.Errorf("创建主题配图失败: %w", repoErr)
			}
			createdImages = imagesToCreate
		}
		return nil
	})

	if err != nil {
		s.logger.Error("创建主题事务失败", zap.Error(err), zap.String("userID", userID))
		// 数据库写入失败时，已上传的 COS 对象成为孤立文件，立即清理
		s.cleanupCOSObjects(uploadedImageObjectKeys(uploadedImages))
		return nil, err
	}

	// 5. 异步发送主题创建事件
	imageURLs := make([]string, 0, len(createdImages))
	for _, img := range createdImages {
		imageURLs = append(imageURLs, img.ImageURL)
	}
	topicDataForKafka := events.TopicData{
		ID:         createdTopic.ID,
		CategoryID: createdTopic.CategoryID,
		AuthorID:   createdTopic.AuthorID,
		Title:      createdTopic.Title,
		Content:    createdTopic.Content,
		ImageURLs:  imageURLs,
		CreatedAt:  createdTopic.CreatedAt.Unix(),
	}

	go func(td events.TopicData) {
		bgCtx := context.Background() // 事件发送的生命周期独立于原始请求
		if kafkaErr := s.kafkaSvc.SendTopicCreatedEvent(bgCtx, td); kafkaErr != nil {
			s.logger.Error("发送 Kafka 主题创建事件失败", zap.Error(kafkaErr), zap.Uint64("topic_id", td.ID))
		}
	}(topicDataForKafka)

	// 6. 组装并返回详情 VO
	return &vo.TopicDetailVO{
		ID:         createdTopic.ID,
		CategoryID: createdTopic.CategoryID,
		Title:      createdTopic.Title,
		Content:    createdTopic.Content,
		AuthorID:   createdTopic.AuthorID,
		IsPinned:   createdTopic.IsPinned,
		ViewCount:  createdTopic.ViewCount,
		CreatedAt:  createdTopic.CreatedAt,
		UpdatedAt:  createdTopic.UpdatedAt,
		Category:   vo.NewCategoryResponseFromEntity(category),
		Images:     vo.NewTopicImageVOsFromEntities(createdImages),
	}, nil
}

// GetTopicDetailByID 实现主题详情页的数据拼装。
func (s *topicService) GetTopicDetailByID(ctx context.Context, topicID uint64) (*vo.TopicDetailVO, error) {
	// 1. 获取主题行（视图可用时带作者名）
	row, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("主题详情未找到", zap.Uint64("topicID", topicID))
		} else {
			s.logger.Error("获取主题详情失败", zap.Error(err), zap.Uint64("topicID", topicID))
		}
		return nil, err
	}

	// 2. 异步增加浏览计数，不阻塞主流程
	go func(tID uint64) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if redisErr := s.topicViewRepo.IncrementViewCount(bgCtx, tID); redisErr != nil {
			s.logger.Error("异步增加主题浏览量失败", zap.Error(redisErr), zap.Uint64("topic_id", tID))
		}
	}(topicID)

	// 3. 次级查询: 所属版块摘要。版块缺失（数据不一致）不阻断详情返回
	var categoryVO *vo.CategoryResponse
	category, err := s.categoryRepo.GetCategoryByID(ctx, row.CategoryID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("主题所属版块不存在，详情页版块字段为空",
				zap.Uint64("topicID", topicID),
				zap.Uint64("categoryID", row.CategoryID))
		} else {
			s.logger.Error("获取主题所属版块失败", zap.Error(err), zap.Uint64("categoryID", row.CategoryID))
			return nil, err
		}
	} else {
		categoryVO = vo.NewCategoryResponseFromEntity(category)
	}

	// 4. 次级查询: 配图列表（已按 DisplayOrder 排序）
	images, err := s.topicImageRepo.GetImagesByTopicID(ctx, topicID)
	if err != nil {
		s.logger.Error("获取主题配图失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return nil, err
	}

	// 5. 组装详情 VO。ViewCount 是数据库中的值，不含尚未回写的 Redis 增量
	return &vo.TopicDetailVO{
		ID:             row.ID,
		CategoryID:     row.CategoryID,
		Title:          row.Title,
		Content:        row.Content,
		AuthorID:       row.AuthorID,
		AuthorUsername: row.AuthorUsername,
		IsPinned:       row.IsPinned,
		ViewCount:      row.ViewCount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		Category:       categoryVO,
		Images:         vo.NewTopicImageVOsFromEntities(images),
	}, nil
}

// UpdateTopic 实现主题标题与正文的更新。
func (s *topicService) UpdateTopic(ctx context.Context, userID string, topicID uint64, req *dto.UpdateTopicRequest) error {
	if userID == "" {
		s.logger.Warn("更新主题被拒绝：请求缺少用户身份", zap.Uint64("topicID", topicID))
		return myErrors.ErrUnauthenticated
	}

	// 两个字段均为 nil 时没有内容可写，但主题不存在仍需返回 404 语义，
	// 因此退化为一次存在性检查，存在则按无操作成功处理
	if req.Title == nil && req.Content == nil {
		if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("更新主题失败：主题不存在", zap.Uint64("topicID", topicID))
			} else {
				s.logger.Error("更新主题：存在性检查失败", zap.Error(err), zap.Uint64("topicID", topicID))
			}
			return err
		}
		s.logger.Info("更新主题：请求未携带任何待更新字段，按无操作处理", zap.Uint64("topicID", topicID))
		return nil
	}

	if err := s.topicRepo.UpdateTopic(ctx, topicID, req.Title, req.Content); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("更新主题失败：主题不存在", zap.Uint64("topicID", topicID))
		} else {
			s.logger.Error("更新主题失败", zap.Error(err), zap.Uint64("topicID", topicID))
		}
		return err
	}

	return nil
}

// DeleteTopic 实现主题及其关联数据的级联删除。
func (s *topicService) DeleteTopic(ctx context.Context, userID string, topicID uint64) error {
	if userID == "" {
		s.logger.Warn("删除主题被拒绝：请求缺少用户身份", zap.Uint64("topicID", topicID))
		return myErrors.ErrUnauthenticated
	}

	topicIDs := []uint64{topicID}

	// 1. 在删除数据库记录之前收集配图的 ObjectKey，事务成功后据此清理 COS
	objectKeys, err := s.topicImageRepo.GetObjectKeysByTopicIDs(ctx, topicIDs)
	if err != nil {
		s.logger.Error("删除主题：收集配图 ObjectKey 失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return err
	}

	// 2. 单个事务内完成级联删除。
	//    点赞先于其宿主删除：回帖上的点赞依赖回帖行的子查询定位。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.likeRepo.DeleteLikesByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除主题点赞失败: %w", repoErr)
		}
		if repoErr := s.likeRepo.DeleteLikesByPostsOfTopics(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除主题下回帖的点赞失败: %w", repoErr)
		}
		if repoErr := s.postRepo.DeletePostsByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除主题下回帖失败: %w", repoErr)
		}
		if repoErr := s.topicImageRepo.DeleteImagesByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除主题配图记录失败: %w", repoErr)
		}
		if repoErr := s.topicRepo.DeleteTopic(ctx, tx, topicID); repoErr != nil {
			return repoErr // 保留 ErrRepoNotFound 语义，供上层映射 404
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("删除主题失败：主题不存在", zap.Uint64("topicID", topicID))
		} else {
			s.logger.Error("删除主题事务失败", zap.Error(err), zap.Uint64("topicID", topicID))
		}
		return err
	}

	// 3. 事务成功后异步清理 COS 对象并发送删除事件
	go func(keys []string, tID uint64) {
		s.cleanupCOSObjects(keys)

		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendTopicDeleteEvent(bgCtx, tID); kafkaErr != nil {
			s.logger.Error("发送 Kafka 主题删除事件失败", zap.Error(kafkaErr), zap.Uint64("topic_id", tID))
		}
	}(objectKeys, topicID)

	s.logger.Info("主题及其关联数据删除完成", zap.Uint64("topic_id", topicID))
	return nil
}

// PurgeUserContent 实现用户论坛内容的级联清理。
func (s *topicService) PurgeUserContent(ctx context.Context, userID string) error {
	if userID == "" {
		return myErrors.ErrUnauthenticated
	}

	// 1. 取得该用户的全部主题 ID，其下内容随主题一并清理
	topicIDs, err := s.topicRepo.GetTopicIDsByAuthor(ctx, userID)
	if err != nil {
		s.logger.Error("清理用户内容：获取用户主题 ID 失败", zap.Error(err), zap.String("userID", userID))
		return err
	}

	// 2. 删除数据库记录之前收集配图的 ObjectKey
	objectKeys, err := s.topicImageRepo.GetObjectKeysByTopicIDs(ctx, topicIDs)
	if err != nil {
		s.logger.Error("清理用户内容：收集配图 ObjectKey 失败", zap.Error(err), zap.String("userID", userID))
		return err
	}

	// 3. 单个事务内完成全部清理。
	//    依赖回帖子查询的点赞删除必须先于回帖删除执行。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 该用户发出的点赞
		if repoErr := s.likeRepo.DeleteLikesByUser(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("删除用户发出的点赞失败: %w", repoErr)
		}
		// 该用户主题上收到的点赞，及主题下所有回帖收到的点赞
		if repoErr := s.likeRepo.DeleteLikesByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除用户主题上的点赞失败: %w", repoErr)
		}
		if repoErr := s.likeRepo.DeleteLikesByPostsOfTopics(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除用户主题下回帖的点赞失败: %w", repoErr)
		}
		// 该用户在他人主题下的回帖收到的点赞
		if repoErr := s.likeRepo.DeleteLikesByPostsOfAuthor(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("删除用户回帖上的点赞失败: %w", repoErr)
		}
		// 回帖: 用户主题下的全部回帖 + 用户在他人主题下的回帖
		if repoErr := s.postRepo.DeletePostsByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除用户主题下的回帖失败: %w", repoErr)
		}
		if repoErr := s.postRepo.DeletePostsByAuthor(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("删除用户发布的回帖失败: %w", repoErr)
		}
		// 配图记录与主题本身
		if repoErr := s.topicImageRepo.DeleteImagesByTopicIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除用户主题配图记录失败: %w", repoErr)
		}
		if repoErr := s.topicRepo.DeleteTopicsByIDs(ctx, tx, topicIDs); repoErr != nil {
			return fmt.Errorf("删除用户主题失败: %w", repoErr)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("清理用户内容事务失败", zap.Error(err), zap.String("userID", userID))
		return err
	}

	// 4. 事务成功后异步清理 COS 对象
	go s.cleanupCOSObjects(objectKeys)

	s.logger.Info("用户论坛内容清理完成",
		zap.String("user_id", userID),
		zap.Int("topic_count", len(topicIDs)),
		zap.Int("cos_object_count", len(objectKeys)),
	)
	return nil
}

// cleanupCOSObjects 逐个删除 COS 对象，失败只记录日志不中断。
// 调用方可能在 goroutine 中执行，因此使用独立的后台上下文。
func (s *topicService) cleanupCOSObjects(objectKeys []string) {
	for _, objectKey := range objectKeys {
		if err := s.cosClient.DeleteObject(context.Background(), objectKey); err != nil {
			s.logger.Error("清理 COS 对象失败", zap.String("objectKey", objectKey), zap.Error(err))
		}
	}
}

// uploadedImageObjectKeys 提取已上传配图的 ObjectKey 列表。
func uploadedImageObjectKeys(images []uploadedImageInfo) []string {
	keys := make([]string, 0, len(images))
	for _, img := range images {
		keys = append(keys, img.ObjectKey)
	}
	return keys
}
