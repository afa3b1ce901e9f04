package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/events"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// PostService 定义了处理回帖核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理用户在主题下发布回帖的业务流程。
	// - userID 为空时拒绝写入并返回 myErrors.ErrUnauthenticated。
	// - 先校验目标主题存在，主题不存在时返回 commonerrors.ErrRepoNotFound。
	// - 成功创建后，异步发送回帖创建事件。
	CreatePost(ctx context.Context, userID string, topicID uint64, req *dto.CreatePostRequest) (*vo.PostResponse, error)

	// GetTopicPosts 获取主题下的回帖分页列表，按楼层顺序（创建时间正序）。
	GetTopicPosts(ctx context.Context, topicID uint64, req *dto.GetTopicPostsRequestDTO) (*vo.TopicPostsPageVO, error)

	// UpdatePost 替换指定回帖的内容。
	UpdatePost(ctx context.Context, userID string, postID uint64, req *dto.UpdatePostRequest) error

	// MarkAsSolution 设置或取消回帖的"解决方案"标记。
	// - 标记不互斥：同一主题下可以同时存在多条解决方案。
	MarkAsSolution(ctx context.Context, userID string, postID uint64, isSolution bool) error

	// DeletePost 删除回帖及其收到的点赞。
	DeletePost(ctx context.Context, userID string, postID uint64) error
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db        *gorm.DB
	postRepo  mysql.PostRepository
	topicRepo mysql.TopicRepository // 创建回帖前的主题存在性校验
	likeRepo  mysql.LikeRepository  // 删除回帖时级联清理点赞
	kafkaSvc  *producer.KafkaProducer
	logger    *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	topicRepo mysql.TopicRepository,
	likeRepo mysql.LikeRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:        db,
		postRepo:  postRepo,
		topicRepo: topicRepo,
		likeRepo:  likeRepo,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

// CreatePost 实现回帖的创建流程。
func (s *postService) CreatePost(ctx context.Context, userID string, topicID uint64, req *dto.CreatePostRequest) (*vo.PostResponse, error) {
	// 1. 写操作必须携带用户身份
	if userID == "" {
		s.logger.Warn("创建回帖被拒绝：请求缺少用户身份", zap.Uint64("topicID", topicID))
		return nil, myErrors.ErrUnauthenticated
	}

	// 2. 校验目标主题存在，避免产生悬挂回帖
	if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("创建回帖失败：目标主题不存在", zap.Uint64("topicID", topicID))
		} else {
			s.logger.Error("创建回帖：校验主题失败", zap.Uint64("topicID", topicID), zap.Error(err))
		}
		return nil, err
	}

	// 3. 写入回帖记录
	post := &entities.Post{
		TopicID:    topicID,
		AuthorID:   userID,
		Content:    req.Content,
		IsSolution: false,
	}
	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		s.logger.Error("创建回帖失败", zap.Error(err), zap.Uint64("topicID", topicID), zap.String("userID", userID))
		return nil, fmt.Errorf("创建回帖失败: %w", err)
	}

	// 4. 异步发送回帖创建事件
	postDataForKafka := events.PostData{
		ID:        post.ID,
		TopicID:   post.TopicID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Unix(),
	}
	go func(pd events.PostData) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostCreatedEvent(bgCtx, pd); kafkaErr != nil {
			s.logger.Error("发送 Kafka 回帖创建事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", pd.ID))
		}
	}(postDataForKafka)

	// 5. 组装并返回 VO。创建路径不经过联查视图，作者用户名为 nil
	return &vo.PostResponse{
		ID:         post.ID,
		TopicID:    post.TopicID,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		IsSolution: post.IsSolution,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}, nil
}

// GetTopicPosts 实现主题回帖分页列表的组装。
func (s *postService) GetTopicPosts(ctx context.Context, topicID uint64, req *dto.GetTopicPostsRequestDTO) (*vo.TopicPostsPageVO, error) {
	rows, total, err := s.postRepo.GetPostsByTopic(ctx, topicID, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("获取主题回帖列表失败",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
			zap.Int("page", req.Page),
			zap.Int("pageSize", req.PageSize),
		)
		return nil, fmt.Errorf("获取主题回帖列表失败: %w", err)
	}

	return &vo.TopicPostsPageVO{
		Posts: vo.MapAuthorRowsToPostResponsesVO(rows),
		Total: total,
	}, nil
}

// UpdatePost 实现回帖内容的替换。
func (s *postService) UpdatePost(ctx context.Context, userID string, postID uint64, req *dto.UpdatePostRequest) error {
	if userID == "" {
		s.logger.Warn("更新回帖被拒绝：请求缺少用户身份", zap.Uint64("postID", postID))
		return myErrors.ErrUnauthenticated
	}

	if err := s.postRepo.UpdatePostContent(ctx, postID, req.Content); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("更新回帖失败：回帖不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("更新回帖失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return err
	}

	return nil
}

// MarkAsSolution 实现"解决方案"标记的设置与取消。
func (s *postService) MarkAsSolution(ctx context.Context, userID string, postID uint64, isSolution bool) error {
	if userID == "" {
		s.logger.Warn("标记解决方案被拒绝：请求缺少用户身份", zap.Uint64("postID", postID))
		return myErrors.ErrUnauthenticated
	}

	if err := s.postRepo.SetSolutionFlag(ctx, postID, isSolution); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("标记解决方案失败：回帖不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("标记解决方案失败", zap.Error(err), zap.Uint64("postID", postID), zap.Bool("isSolution", isSolution))
		}
		return err
	}

	return nil
}

// DeletePost 实现回帖及其点赞的级联删除。
func (s *postService) DeletePost(ctx context.Context, userID string, postID uint64) error {
	if userID == "" {
		s.logger.Warn("删除回帖被拒绝：请求缺少用户身份", zap.Uint64("postID", postID))
		return myErrors.ErrUnauthenticated
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 点赞先于宿主回帖删除
		if repoErr := s.likeRepo.DeleteLikesByPostID(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除回帖点赞失败: %w", repoErr)
		}
		if repoErr := s.postRepo.DeletePost(ctx, tx, postID); repoErr != nil {
			return repoErr // 保留 ErrRepoNotFound 语义
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("删除回帖失败：回帖不存在", zap.Uint64("postID", postID))
		} else {
			s.logger.Error("删除回帖事务失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		return err
	}

	s.logger.Info("回帖及其点赞删除完成", zap.Uint64("post_id", postID))
	return nil
}
