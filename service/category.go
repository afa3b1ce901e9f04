package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/repo/mysql"
)

// CategoryService 定义了版块相关的业务逻辑接口。
type CategoryService interface {
	// ListCategories 获取全部版块列表，按排序权重升序。
	ListCategories(ctx context.Context) ([]*vo.CategoryResponse, error)

	// GetCategoryTopics 获取指定版块下的主题分页列表。
	// - 先按 slug 定位版块，未找到时返回 commonerrors.ErrRepoNotFound。
	// - 列表项附带派生的回帖数 (PostCount)，由一次 GROUP BY 查询批量取回。
	GetCategoryTopics(ctx context.Context, slug string, req *dto.GetCategoryTopicsRequestDTO) (*vo.CategoryTopicsPageVO, error)
}

// categoryService 是 CategoryService 接口的具体实现。
type categoryService struct {
	categoryRepo mysql.CategoryRepository
	topicRepo    mysql.TopicRepository
	postRepo     mysql.PostRepository
	logger       *core.ZapLogger
}

// NewCategoryService 是 categoryService 的构造函数。
func NewCategoryService(
	categoryRepo mysql.CategoryRepository,
	topicRepo mysql.TopicRepository,
	postRepo mysql.PostRepository,
	logger *core.ZapLogger,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		topicRepo:    topicRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// ListCategories 实现版块列表查询。
func (s *categoryService) ListCategories(ctx context.Context) ([]*vo.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("获取版块列表失败", zap.Error(err))
		return nil, fmt.Errorf("获取版块列表失败: %w", err)
	}

	return vo.MapCategoriesToResponsesVO(categories), nil
}

// GetCategoryTopics 实现版块主题分页列表的组装。
func (s *categoryService) GetCategoryTopics(ctx context.Context, slug string, req *dto.GetCategoryTopicsRequestDTO) (*vo.CategoryTopicsPageVO, error) {
	// 1. 根据 slug 定位版块
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("请求的版块不存在", zap.String("slug", slug))
		} else {
			s.logger.Error("根据 slug 获取版块失败", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}

	// 2. 分页查询版块内的主题（置顶优先，其余按创建时间降序）
	rows, total, err := s.topicRepo.GetTopicsByCategory(ctx, category.ID, req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("获取版块主题列表失败",
			zap.Error(err),
			zap.Uint64("categoryID", category.ID),
			zap.Int("page", req.Page),
			zap.Int("pageSize", req.PageSize),
		)
		return nil, fmt.Errorf("获取版块主题列表失败: %w", err)
	}

	topicResponses := vo.MapAuthorRowsToTopicResponsesVO(rows)

	// 3. 批量取回各主题的回帖数，填充派生字段
	if len(topicResponses) > 0 {
		topicIDs := make([]uint64, 0, len(topicResponses))
		for _, topicResponse := range topicResponses {
			topicIDs = append(topicIDs, topicResponse.ID)
		}

		postCounts, countErr := s.postRepo.GetPostCountsByTopicIDs(ctx, topicIDs)
		if countErr != nil {
			// 回帖数是展示性的派生值，统计失败时列表仍然返回，各项按 0 处理
			s.logger.Warn("批量统计主题回帖数失败，列表回帖数按 0 返回",
				zap.Error(countErr),
				zap.Uint64("categoryID", category.ID),
			)
		} else {
			for _, topicResponse := range topicResponses {
				topicResponse.PostCount = postCounts[topicResponse.ID]
			}
		}
	}

	return &vo.CategoryTopicsPageVO{
		Category: vo.NewCategoryResponseFromEntity(category),
		Topics:   topicResponses,
		Total:    total,
	}, nil
}
