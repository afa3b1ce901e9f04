package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// TopicRepository 定义了主题数据在 MySQL 中的持久化操作接口。
// 所有读方法统一返回 entities.TopicWithAuthor 行结构：
// 存储支持作者联查视图时从视图读取，否则从基础表读取并映射（作者名为 nil），
// 两条路径对调用方完全透明。
type TopicRepository interface {
	// CreateTopic 持久化一个新的主题记录。
	// - db 参数允许调用方传入事务对象，与配图写入共享同一事务。
	CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error

	// GetTopicByID 根据单个 ID 检索主题（含作者名，如果视图可用）。
	// - 如果未找到主题，返回 commonerrors.ErrRepoNotFound 错误。
	GetTopicByID(ctx context.Context, id uint64) (*entities.TopicWithAuthor, error)

	// GetTopicsByCategory 分页查询版块内的主题列表。
	// - 排序规则: 置顶主题优先，其余按创建时间降序；同一时刻按 ID 降序兜底。
	// - 返回: 当前页主题列表, 版块内主题总数, 错误。
	GetTopicsByCategory(ctx context.Context, categoryID uint64, offset, limit int) ([]*entities.TopicWithAuthor, int64, error)

	// UpdateTopic 更新指定主题的标题与正文。
	// - 传入 nil 表示不更新对应字段，总是会自动更新修改时间 (updated_at)。
	// - 如果主题不存在，返回 commonerrors.ErrRepoNotFound。
	UpdateTopic(ctx context.Context, topicID uint64, title *string, content *string) error

	// DeleteTopic 对指定主题执行物理删除。
	// - 主题删除属于级联清理的一部分（回帖、点赞、配图随事务一并删除），
	//   因此绕过软删除直接移除记录，避免唯一索引与统计口径残留。
	// - 如果主题不存在，返回 commonerrors.ErrRepoNotFound。
	DeleteTopic(ctx context.Context, db *gorm.DB, id uint64) error

	// SearchTopics 对标题与正文做大小写不敏感的子串搜索。
	// - 结果按创建时间降序，最多返回 limit 条。
	SearchTopics(ctx context.Context, keyword string, limit int) ([]*entities.TopicWithAuthor, error)

	// GetRecentTopics 获取全站最新创建的主题列表。
	GetRecentTopics(ctx context.Context, limit int) ([]*entities.TopicWithAuthor, error)

	// CountTopics 统计全站主题总数，用于论坛统计接口。
	CountTopics(ctx context.Context) (int64, error)

	// GetTopicIDsByAuthor 获取指定作者的全部主题 ID。
	// - 用户注销事件的级联清理需要先取得主题 ID 集合，再删除其下的回帖与点赞。
	GetTopicIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error)

	// DeleteTopicsByIDs 批量物理删除主题，配合用户内容清理事务使用。
	DeleteTopicsByIDs(ctx context.Context, db *gorm.DB, ids []uint64) error
}

// topicRepository 是 TopicRepository 接口针对 MySQL 的具体实现。
type topicRepository struct {
	db     *gorm.DB
	caps   *StoreCapabilities // 启动时探测一次的存储能力，决定读路径走视图还是基础表
	logger *core.ZapLogger
}

// NewTopicRepository 是 topicRepository 的构造函数。
func NewTopicRepository(db *gorm.DB, caps *StoreCapabilities, logger *core.ZapLogger) TopicRepository {
	return &topicRepository{
		db:     db,
		caps:   caps,
		logger: logger,
	}
}

// mapTopicToAuthorRow 将基础表实体映射为统一的读取行结构。
// 基础表路径下作者用户名不可得，AuthorUsername 保持 nil，行结构与视图路径完全一致。
func mapTopicToAuthorRow(topic *entities.Topic) *entities.TopicWithAuthor {
	if topic == nil {
		return nil
	}
	return &entities.TopicWithAuthor{
		ID:         topic.ID,
		CategoryID: topic.CategoryID,
		AuthorID:   topic.AuthorID,
		Title:      topic.Title,
		Content:    topic.Content,
		IsPinned:   topic.IsPinned,
		ViewCount:  topic.ViewCount,
		CreatedAt:  topic.CreatedAt,
		UpdatedAt:  topic.UpdatedAt,
	}
}

// mapTopicsToAuthorRows 批量映射，保持输入顺序。
func mapTopicsToAuthorRows(topics []*entities.Topic) []*entities.TopicWithAuthor {
	rows := make([]*entities.TopicWithAuthor, 0, len(topics))
	for _, topic := range topics {
		if topic == nil {
			continue
		}
		rows = append(rows, mapTopicToAuthorRow(topic))
	}
	return rows
}

// CreateTopic 实现主题的数据库插入操作。
func (r *topicRepository) CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error {
	// 使用传入的 db 对象（可能是事务对象 tx）执行数据库操作。
	// GORM 会自动填充 BaseModel 中的 ID, CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(topic).Error; err != nil {
		return err
	}
	return nil
}

// GetTopicByID 实现根据单个 ID 获取主题。
func (r *topicRepository) GetTopicByID(ctx context.Context, id uint64) (*entities.TopicWithAuthor, error) {
	// 视图可用时直接查视图，行内已带作者名
	if r.caps.TopicAuthorView {
		var row entities.TopicWithAuthor
		err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				r.logger.Warn("根据 ID 获取主题未找到", zap.Uint64("topicID", id))
				return nil, commonerrors.ErrRepoNotFound
			}
			r.logger.Error("根据 ID 获取主题数据库查询失败(视图)", zap.Uint64("topicID", id), zap.Error(err))
			return nil, err
		}
		return &row, nil
	}

	// 基础表回退路径
	var topic entities.Topic
	err := r.db.WithContext(ctx).First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取主题未找到", zap.Uint64("topicID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取主题数据库查询失败", zap.Uint64("topicID", id), zap.Error(err))
		return nil, err
	}
	return mapTopicToAuthorRow(&topic), nil
}

// GetTopicsByCategory 实现版块内主题的偏移分页查询。
func (r *topicRepository) GetTopicsByCategory(ctx context.Context, categoryID uint64, offset, limit int) ([]*entities.TopicWithAuthor, int64, error) {
	var totalCount int64

	// 计数始终走基础表，与读路径无关，保证两条路径口径一致
	if err := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("category_id = ?", categoryID).
		Count(&totalCount).Error; err != nil {
		r.logger.Error("获取版块主题列表：计数查询失败",
			zap.Error(err),
			zap.Uint64("categoryID", categoryID),
		)
		return nil, 0, fmt.Errorf("计数版块主题失败: %w", err)
	}

	// 如果总数为0，无需执行后续的列表查询
	if totalCount == 0 {
		return []*entities.TopicWithAuthor{}, 0, nil
	}

	// 排序: 置顶优先 -> 创建时间降序 -> ID 降序兜底
	if r.caps.TopicAuthorView {
		var rows []*entities.TopicWithAuthor
		err := r.db.WithContext(ctx).
			Where("category_id = ?", categoryID).
			Order("is_pinned DESC").
			Order("created_at DESC").
			Order("id DESC").
			Offset(offset).Limit(limit).
			Find(&rows).Error
		if err != nil {
			r.logger.Error("获取版块主题列表：列表查询失败(视图)",
				zap.Error(err),
				zap.Uint64("categoryID", categoryID),
				zap.Int("offset", offset),
				zap.Int("limit", limit),
			)
			return nil, 0, fmt.Errorf("查询版块主题列表失败: %w", err)
		}
		return rows, totalCount, nil
	}

	var topics []*entities.Topic
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&topics).Error
	if err != nil {
		r.logger.Error("获取版块主题列表：列表查询失败",
			zap.Error(err),
			zap.Uint64("categoryID", categoryID),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询版块主题列表失败: %w", err)
	}
	return mapTopicsToAuthorRows(topics), totalCount, nil
}

// UpdateTopic 实现主题标题与正文的更新。
// 参数为指针类型，如果传入 nil，则对应字段不会被更新。
func (r *topicRepository) UpdateTopic(ctx context.Context, topicID uint64, title *string, content *string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if content != nil {
		updateMap["content"] = *content
	}

	// 检查是否有任何字段需要更新。
	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新主题 (所有可选参数均为nil)",
			zap.Uint64("topicID", topicID),
		)
		return nil
	}

	// 总是更新 updated_at 字段
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("id = ?", topicID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新主题数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("topicID", topicID),
			zap.Any("updateData", updateMap),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新主题但未找到记录", zap.Uint64("topicID", topicID))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeleteTopic 实现主题的物理删除。
func (r *topicRepository) DeleteTopic(ctx context.Context, db *gorm.DB, id uint64) error {
	// Unscoped 绕过软删除，记录被真正移除
	result := db.WithContext(ctx).Unscoped().Delete(&entities.Topic{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SearchTopics 实现大小写不敏感的子串搜索。
// 对列与关键词两侧统一取 LOWER，不依赖列的 collation 配置。
func (r *topicRepository) SearchTopics(ctx context.Context, keyword string, limit int) ([]*entities.TopicWithAuthor, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	if r.caps.TopicAuthorView {
		var rows []*entities.TopicWithAuthor
		err := r.db.WithContext(ctx).
			Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			r.logger.Error("主题搜索数据库查询失败(视图)", zap.String("keyword", keyword), zap.Error(err))
			return nil, fmt.Errorf("搜索主题失败: %w", err)
		}
		return rows, nil
	}

	var topics []*entities.Topic
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&topics).Error
	if err != nil {
		r.logger.Error("主题搜索数据库查询失败", zap.String("keyword", keyword), zap.Error(err))
		return nil, fmt.Errorf("搜索主题失败: %w", err)
	}
	return mapTopicsToAuthorRows(topics), nil
}

// GetRecentTopics 实现全站最新主题查询。
func (r *topicRepository) GetRecentTopics(ctx context.Context, limit int) ([]*entities.TopicWithAuthor, error) {
	if r.caps.TopicAuthorView {
		var rows []*entities.TopicWithAuthor
		err := r.db.WithContext(ctx).
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			r.logger.Error("获取最新主题列表数据库查询失败(视图)", zap.Error(err))
			return nil, fmt.Errorf("查询最新主题失败: %w", err)
		}
		return rows, nil
	}

	var topics []*entities.Topic
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&topics).Error
	if err != nil {
		r.logger.Error("获取最新主题列表数据库查询失败", zap.Error(err))
		return nil, fmt.Errorf("查询最新主题失败: %w", err)
	}
	return mapTopicsToAuthorRows(topics), nil
}

// CountTopics 实现全站主题计数。
func (r *topicRepository) CountTopics(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Topic{}).Count(&count).Error; err != nil {
		r.logger.Error("统计主题总数数据库查询失败", zap.Error(err))
		return 0, fmt.Errorf("统计主题总数失败: %w", err)
	}
	return count, nil
}

// GetTopicIDsByAuthor 实现按作者获取主题 ID 集合。
func (r *topicRepository) GetTopicIDsByAuthor(ctx context.Context, authorID string) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("author_id = ?", authorID).
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("按作者获取主题ID集合数据库查询失败", zap.String("authorID", authorID), zap.Error(err))
		return nil, fmt.Errorf("查询作者主题ID失败: %w", err)
	}
	return ids, nil
}

// DeleteTopicsByIDs 实现主题的批量物理删除。
func (r *topicRepository) DeleteTopicsByIDs(ctx context.Context, db *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&entities.Topic{}).Error; err != nil {
		return err
	}
	return nil
}
