package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// PostRepository 定义了回帖数据在 MySQL 中的持久化操作接口。
// 分页读方法与主题仓库同理：视图可用时返回带作者名的行，否则由基础表映射。
type PostRepository interface {
	// CreatePost 持久化一条新的回帖记录。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索回帖基础实体。
	// - 更新与删除前的归属校验使用，不需要作者名，直接查基础表。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound 错误。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// GetPostsByTopic 分页查询主题下的回帖列表。
	// - 排序规则: 按创建时间正序（楼层顺序），同一时刻按 ID 正序兜底。
	// - 返回: 当前页回帖列表, 主题下回帖总数, 错误。
	GetPostsByTopic(ctx context.Context, topicID uint64, offset, limit int) ([]*entities.PostWithAuthor, int64, error)

	// UpdatePostContent 替换指定回帖的内容，并刷新修改时间。
	// - 如果回帖不存在，返回 commonerrors.ErrRepoNotFound。
	UpdatePostContent(ctx context.Context, postID uint64, content string) error

	// SetSolutionFlag 设置或取消回帖的"解决方案"标记。
	// - 标记不互斥，同一主题下可以有多条解决方案。
	SetSolutionFlag(ctx context.Context, postID uint64, isSolution bool) error

	// DeletePost 对指定回帖执行物理删除。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error

	// DeletePostsByTopicIDs 批量物理删除指定主题下的全部回帖。
	// - 主题删除与用户内容清理的级联步骤。
	DeletePostsByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error

	// DeletePostsByAuthor 物理删除指定作者的全部回帖。
	DeletePostsByAuthor(ctx context.Context, db *gorm.DB, authorID string) error

	// CountPosts 统计全站回帖总数，用于论坛统计接口。
	CountPosts(ctx context.Context) (int64, error)

	// GetPostCountsByTopicIDs 批量统计各主题的回帖数。
	// - 一次 GROUP BY 查询取回，列表页拼装派生的回帖数字段使用。
	// - 没有回帖的主题不出现在返回的 map 中，调用方按 0 处理。
	GetPostCountsByTopicIDs(ctx context.Context, topicIDs []uint64) (map[uint64]int64, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	caps   *StoreCapabilities
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, caps *StoreCapabilities, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		caps:   caps,
		logger: logger,
	}
}

// mapPostsToAuthorRows 将基础表实体映射为统一的读取行结构，作者名保持 nil。
func mapPostsToAuthorRows(posts []*entities.Post) []*entities.PostWithAuthor {
	rows := make([]*entities.PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		rows = append(rows, &entities.PostWithAuthor{
			ID:         post.ID,
			TopicID:    post.TopicID,
			AuthorID:   post.AuthorID,
			Content:    post.Content,
			IsSolution: post.IsSolution,
			CreatedAt:  post.CreatedAt,
			UpdatedAt:  post.UpdatedAt,
		})
	}
	return rows
}

// CreatePost 实现回帖的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	return nil
}

// GetPostByID 实现根据单个 ID 获取回帖。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取回帖未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取回帖数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	return &post, nil
}

// GetPostsByTopic 实现主题回帖的偏移分页查询。
func (r *postRepository) GetPostsByTopic(ctx context.Context, topicID uint64, offset, limit int) ([]*entities.PostWithAuthor, int64, error) {
	var totalCount int64

	// 计数始终走基础表，与读路径无关
	if err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("topic_id = ?", topicID).
		Count(&totalCount).Error; err != nil {
		r.logger.Error("获取主题回帖列表：计数查询失败",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
		)
		return nil, 0, fmt.Errorf("计数主题回帖失败: %w", err)
	}

	if totalCount == 0 {
		return []*entities.PostWithAuthor{}, 0, nil
	}

	// 楼层顺序: 创建时间正序 -> ID 正序兜底
	if r.caps.PostAuthorView {
		var rows []*entities.PostWithAuthor
		err := r.db.WithContext(ctx).
			Where("topic_id = ?", topicID).
			Order("created_at ASC").
			Order("id ASC").
			Offset(offset).Limit(limit).
			Find(&rows).Error
		if err != nil {
			r.logger.Error("获取主题回帖列表：列表查询失败(视图)",
				zap.Error(err),
				zap.Uint64("topicID", topicID),
				zap.Int("offset", offset),
				zap.Int("limit", limit),
			)
			return nil, 0, fmt.Errorf("查询主题回帖列表失败: %w", err)
		}
		return rows, totalCount, nil
	}

	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取主题回帖列表：列表查询失败",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询主题回帖列表失败: %w", err)
	}
	return mapPostsToAuthorRows(posts), totalCount, nil
}

// UpdatePostContent 实现回帖内容的替换。
func (r *postRepository) UpdatePostContent(ctx context.Context, postID uint64, content string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		r.logger.Error("更新回帖内容数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新回帖但未找到记录", zap.Uint64("postID", postID))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// SetSolutionFlag 实现"解决方案"标记的设置与取消。
func (r *postRepository) SetSolutionFlag(ctx context.Context, postID uint64, isSolution bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"is_solution": isSolution,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		r.logger.Error("更新回帖解决方案标记数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
			zap.Bool("isSolution", isSolution),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试标记回帖但未找到记录", zap.Uint64("postID", postID))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeletePost 实现回帖的物理删除。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Unscoped().Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePostsByTopicIDs 实现按主题批量物理删除回帖。
func (r *postRepository) DeletePostsByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Unscoped().Where("topic_id IN ?", topicIDs).Delete(&entities.Post{}).Error; err != nil {
		return err
	}
	return nil
}

// DeletePostsByAuthor 实现按作者物理删除回帖。
func (r *postRepository) DeletePostsByAuthor(ctx context.Context, db *gorm.DB, authorID string) error {
	if err := db.WithContext(ctx).Unscoped().Where("author_id = ?", authorID).Delete(&entities.Post{}).Error; err != nil {
		return err
	}
	return nil
}

// CountPosts 实现全站回帖计数。
func (r *postRepository) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Post{}).Count(&count).Error; err != nil {
		r.logger.Error("统计回帖总数数据库查询失败", zap.Error(err))
		return 0, fmt.Errorf("统计回帖总数失败: %w", err)
	}
	return count, nil
}

// topicPostCount 是 GROUP BY 计数查询的扫描目标。
type topicPostCount struct {
	TopicID uint64
	Count   int64
}

// GetPostCountsByTopicIDs 实现各主题回帖数的批量统计。
func (r *postRepository) GetPostCountsByTopicIDs(ctx context.Context, topicIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(topicIDs))
	if len(topicIDs) == 0 {
		return counts, nil
	}

	var results []topicPostCount
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Select("topic_id AS topic_id, COUNT(*) AS count").
		Where("topic_id IN ?", topicIDs).
		Group("topic_id").
		Scan(&results).Error
	if err != nil {
		r.logger.Error("批量统计主题回帖数数据库查询失败", zap.Any("topicIDs", topicIDs), zap.Error(err))
		return nil, fmt.Errorf("批量统计主题回帖数失败: %w", err)
	}

	for _, result := range results {
		counts[result.TopicID] = result.Count
	}
	return counts, nil
}
