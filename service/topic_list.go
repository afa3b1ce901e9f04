package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// TopicListService 定义了跨版块主题列表查询的业务逻辑接口。
// 与 CategoryService 的版块内列表不同，这里的查询都是全站维度的。
type TopicListService interface {
	// SearchTopics 对标题与正文做大小写不敏感的子串搜索，按创建时间降序。
	SearchTopics(ctx context.Context, req *dto.SearchTopicsRequestDTO) ([]*vo.TopicResponse, error)

	// GetRecentTopics 获取全站最新创建的主题列表，各项附带所属版块摘要。
	GetRecentTopics(ctx context.Context, req *dto.GetRecentTopicsRequestDTO) ([]*vo.TopicResponse, error)

	// GetForumStats 获取论坛全局统计（主题总数、回帖总数）。
	GetForumStats(ctx context.Context) (*vo.ForumStatsVO, error)
}

// topicListService 是 TopicListService 接口的具体实现。
type topicListService struct {
	topicRepo    mysql.TopicRepository
	postRepo     mysql.PostRepository
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

// NewTopicListService 是 topicListService 的构造函数。
func NewTopicListService(
	topicRepo mysql.TopicRepository,
	postRepo mysql.PostRepository,
	categoryRepo mysql.CategoryRepository,
	logger *core.ZapLogger,
) TopicListService {
	return &topicListService{
		topicRepo:    topicRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// SearchTopics 实现全站主题搜索。
func (s *topicListService) SearchTopics(ctx context.Context, req *dto.SearchTopicsRequestDTO) ([]*vo.TopicResponse, error) {
	rows, err := s.topicRepo.SearchTopics(ctx, req.Q, req.Limit)
	if err != nil {
		s.logger.Error("主题搜索失败", zap.String("keyword", req.Q), zap.Error(err))
		return nil, fmt.Errorf("主题搜索失败: %w", err)
	}

	s.logger.Debug("主题搜索完成", zap.String("keyword", req.Q), zap.Int("count", len(rows)))
	return vo.MapAuthorRowsToTopicResponsesVO(rows), nil
}

// GetRecentTopics 实现全站最新主题列表的组装。
// 列表跨版块，每项需要附带版块摘要，版块信息由一次 IN 查询批量取回。
func (s *topicListService) GetRecentTopics(ctx context.Context, req *dto.GetRecentTopicsRequestDTO) ([]*vo.TopicResponse, error) {
	rows, err := s.topicRepo.GetRecentTopics(ctx, req.Limit)
	if err != nil {
		s.logger.Error("获取最新主题列表失败", zap.Error(err))
		return nil, fmt.Errorf("获取最新主题列表失败: %w", err)
	}

	topicResponses := vo.MapAuthorRowsToTopicResponsesVO(rows)
	if len(topicResponses) == 0 {
		return topicResponses, nil
	}

	// 去重后批量取版块
	categoryIDSet := make(map[uint64]struct{}, len(topicResponses))
	categoryIDs := make([]uint64, 0, len(topicResponses))
	for _, topicResponse := range topicResponses {
		if _, exists := categoryIDSet[topicResponse.CategoryID]; exists {
			continue
		}
		categoryIDSet[topicResponse.CategoryID] = struct{}{}
		categoryIDs = append(categoryIDs, topicResponse.CategoryID)
	}

	categories, err := s.categoryRepo.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		// 版块摘要是展示性信息，批量查询失败时列表仍然返回
		s.logger.Warn("批量获取版块信息失败，最新主题列表的版块字段为空", zap.Error(err))
		return topicResponses, nil
	}

	categoryByID := make(map[uint64]*vo.CategoryResponse, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = vo.NewCategoryResponseFromEntity(category)
	}
	for _, topicResponse := range topicResponses {
		topicResponse.Category = categoryByID[topicResponse.CategoryID]
	}

	return topicResponses, nil
}

// GetForumStats 实现论坛全局统计。
func (s *topicListService) GetForumStats(ctx context.Context) (*vo.ForumStatsVO, error) {
	topicCount, err := s.topicRepo.CountTopics(ctx)
	if err != nil {
		s.logger.Error("统计主题总数失败", zap.Error(err))
		return nil, fmt.Errorf("获取论坛统计失败: %w", err)
	}

	postCount, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		s.logger.Error("统计回帖总数失败", zap.Error(err))
		return nil, fmt.Errorf("获取论坛统计失败: %w", err)
	}

	return &vo.ForumStatsVO{
		TopicCount: topicCount,
		PostCount:  postCount,
	}, nil
}
