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
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// LikeService 定义了点赞切换的业务逻辑接口。
type LikeService interface {
	// ToggleLike 切换用户对主题或回帖的点赞状态。
	// - 目标必须且只能指定主题或回帖中的一个，否则返回 myErrors.ErrInvalidLikeTarget。
	// - userID 为空时返回 myErrors.ErrUnauthenticated，不触达存储层。
	// - 目标不存在时返回 commonerrors.ErrRepoNotFound。
	// - 并发安全：切换语义由数据库唯一索引仲裁，插入冲突即视为"已点赞"并转为取消。
	ToggleLike(ctx context.Context, userID string, req *dto.ToggleLikeRequest) (*vo.LikeStatusVO, error)
}

// likeService 是 LikeService 接口的具体实现。
type likeService struct {
	likeRepo  mysql.LikeRepository
	topicRepo mysql.TopicRepository // 点赞目标为主题时的存在性校验
	postRepo  mysql.PostRepository  // 点赞目标为回帖时的存在性校验
	logger    *core.ZapLogger
}

// NewLikeService 是 likeService 的构造函数。
func NewLikeService(
	likeRepo mysql.LikeRepository,
	topicRepo mysql.TopicRepository,
	postRepo mysql.PostRepository,
	logger *core.ZapLogger,
) LikeService {
	return &likeService{
		likeRepo:  likeRepo,
		topicRepo: topicRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// ToggleLike 实现点赞状态的切换。
//
// 并发仲裁完全交给数据库唯一索引：先尝试插入，命中唯一索引冲突
// (gorm.ErrDuplicatedKey) 说明记录已存在，转为删除。两个并发请求
// 不会出现"都认为自己点赞成功"的中间态。
func (s *likeService) ToggleLike(ctx context.Context, userID string, req *dto.ToggleLikeRequest) (*vo.LikeStatusVO, error) {
	// 1. 身份与目标校验，任何失败都发生在存储写入之前
	if userID == "" {
		s.logger.Warn("点赞切换被拒绝：请求缺少用户身份")
		return nil, myErrors.ErrUnauthenticated
	}

	if (req.TopicID == nil) == (req.PostID == nil) {
		s.logger.Warn("点赞切换被拒绝：目标不合法",
			zap.Any("topicID", req.TopicID),
			zap.Any("postID", req.PostID),
		)
		return nil, myErrors.ErrInvalidLikeTarget
	}

	// 2. 目标存在性校验
	if req.TopicID != nil {
		if _, err := s.topicRepo.GetTopicByID(ctx, *req.TopicID); err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("点赞切换失败：目标主题不存在", zap.Uint64("topicID", *req.TopicID))
			} else {
				s.logger.Error("点赞切换：校验主题失败", zap.Uint64("topicID", *req.TopicID), zap.Error(err))
			}
			return nil, err
		}
	} else {
		if _, err := s.postRepo.GetPostByID(ctx, *req.PostID); err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("点赞切换失败：目标回帖不存在", zap.Uint64("postID", *req.PostID))
			} else {
				s.logger.Error("点赞切换：校验回帖失败", zap.Uint64("postID", *req.PostID), zap.Error(err))
			}
			return nil, err
		}
	}

	// 3. 尝试插入点赞记录
	like := &entities.Like{
		UserID:  userID,
		TopicID: req.TopicID,
		PostID:  req.PostID,
	}
	err := s.likeRepo.InsertLike(ctx, like)
	if err == nil {
		s.logger.Debug("点赞成功",
			zap.String("userID", userID),
			zap.Any("topicID", req.TopicID),
			zap.Any("postID", req.PostID),
		)
		return &vo.LikeStatusVO{Liked: true}, nil
	}

	// 4. 唯一索引冲突 -> 已点赞，执行取消
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		removed, delErr := s.likeRepo.DeleteLikeByTarget(ctx, userID, req.TopicID, req.PostID)
		if delErr != nil {
			s.logger.Error("取消点赞失败",
				zap.Error(delErr),
				zap.String("userID", userID),
				zap.Any("topicID", req.TopicID),
				zap.Any("postID", req.PostID),
			)
			return nil, delErr
		}
		if !removed {
			// 并发窗口内记录已被另一请求删除，最终状态仍是未点赞
			s.logger.Debug("取消点赞时记录已不存在（并发切换）", zap.String("userID", userID))
		}
		return &vo.LikeStatusVO{Liked: false}, nil
	}

	s.logger.Error("插入点赞记录失败",
		zap.Error(err),
		zap.String("userID", userID),
		zap.Any("topicID", req.TopicID),
		zap.Any("postID", req.PostID),
	)
	return nil, fmt.Errorf("点赞切换失败: %w", err)
}
