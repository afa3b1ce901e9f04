package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// TopicImageRepository 定义了主题配图数据在 MySQL 中的持久化操作接口。
type TopicImageRepository interface {
	// BatchCreateTopicImages 批量持久化主题配图记录。
	// - 与主题创建共享同一事务，db 参数传入事务对象。
	BatchCreateTopicImages(ctx context.Context, db *gorm.DB, images []*entities.TopicImage) error

	// GetImagesByTopicID 获取指定主题的全部配图，按 DisplayOrder 升序排列。
	GetImagesByTopicID(ctx context.Context, topicID uint64) ([]*entities.TopicImage, error)

	// GetObjectKeysByTopicIDs 批量获取主题配图的 COS ObjectKey。
	// - 删除主题或清理用户内容后，据此异步删除 COS 对象。
	GetObjectKeysByTopicIDs(ctx context.Context, topicIDs []uint64) ([]string, error)

	// DeleteImagesByTopicIDs 批量物理删除主题配图记录。
	DeleteImagesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error
}

// topicImageRepository 是 TopicImageRepository 接口针对 MySQL 的具体实现。
type topicImageRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicImageRepository 是 topicImageRepository 的构造函数。
func NewTopicImageRepository(db *gorm.DB, logger *core.ZapLogger) TopicImageRepository {
	return &topicImageRepository{
		db:     db,
		logger: logger,
	}
}

// BatchCreateTopicImages 实现配图记录的批量插入。
func (r *topicImageRepository) BatchCreateTopicImages(ctx context.Context, db *gorm.DB, images []*entities.TopicImage) error {
	if len(images) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&images).Error; err != nil {
		return err
	}
	return nil
}

// GetImagesByTopicID 实现主题配图的有序查询。
func (r *topicImageRepository) GetImagesByTopicID(ctx context.Context, topicID uint64) ([]*entities.TopicImage, error) {
	var images []*entities.TopicImage

	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("display_order ASC").
		Find(&images).Error
	if err != nil {
		r.logger.Error("获取主题配图数据库查询失败", zap.Uint64("topicID", topicID), zap.Error(err))
		return nil, fmt.Errorf("查询主题配图失败: %w", err)
	}

	return images, nil
}

// GetObjectKeysByTopicIDs 实现 COS ObjectKey 的批量查询。
func (r *topicImageRepository) GetObjectKeysByTopicIDs(ctx context.Context, topicIDs []uint64) ([]string, error) {
	if len(topicIDs) == 0 {
		return []string{}, nil
	}

	var objectKeys []string
	err := r.db.WithContext(ctx).
		Model(&entities.TopicImage{}).
		Where("topic_id IN ?", topicIDs).
		Pluck("object_key", &objectKeys).Error
	if err != nil {
		r.logger.Error("批量获取配图 ObjectKey 数据库查询失败", zap.Any("topicIDs", topicIDs), zap.Error(err))
		return nil, fmt.Errorf("批量查询配图 ObjectKey 失败: %w", err)
	}

	return objectKeys, nil
}

// DeleteImagesByTopicIDs 实现配图记录的批量物理删除。
func (r *topicImageRepository) DeleteImagesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Unscoped().Where("topic_id IN ?", topicIDs).Delete(&entities.TopicImage{}).Error; err != nil {
		return err
	}
	return nil
}
