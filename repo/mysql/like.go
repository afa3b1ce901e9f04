package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// LikeRepository 定义了点赞数据在 MySQL 中的持久化操作接口。
// 点赞切换的并发仲裁依赖数据库复合唯一索引：
// 插入命中唯一索引冲突即视为"已点赞"，由服务层转为删除操作。
type LikeRepository interface {
	// InsertLike 插入一条点赞记录。
	// - 当同一用户对同一目标已存在记录时，返回 gorm.ErrDuplicatedKey
	//   (需要 gorm.Config 开启 TranslateError)，服务层据此执行取消点赞。
	InsertLike(ctx context.Context, like *entities.Like) error

	// DeleteLikeByTarget 删除用户对指定目标的点赞记录。
	// - topicID 与 postID 恰好设置其一，与 Like 实体的约束一致。
	// - 返回 removed 表示是否真的删除了记录（并发下可能已被删除）。
	DeleteLikeByTarget(ctx context.Context, userID string, topicID *uint64, postID *uint64) (bool, error)

	// DeleteLikesByTopicIDs 物理删除指定主题上的全部点赞。
	DeleteLikesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error

	// DeleteLikesByPostID 物理删除指定回帖上的全部点赞。
	DeleteLikesByPostID(ctx context.Context, db *gorm.DB, postID uint64) error

	// DeleteLikesByPostsOfTopics 物理删除指定主题下所有回帖上的点赞。
	// - 通过子查询一次完成，主题删除事务的级联步骤。
	DeleteLikesByPostsOfTopics(ctx context.Context, db *gorm.DB, topicIDs []uint64) error

	// DeleteLikesByUser 物理删除指定用户发出的全部点赞。
	DeleteLikesByUser(ctx context.Context, db *gorm.DB, userID string) error

	// DeleteLikesByPostsOfAuthor 物理删除指定作者的回帖上收到的全部点赞。
	// - 用户内容清理在删除该作者的回帖前，先清掉这些回帖收到的点赞。
	DeleteLikesByPostsOfAuthor(ctx context.Context, db *gorm.DB, authorID string) error
}

// likeRepository 是 LikeRepository 接口针对 MySQL 的具体实现。
type likeRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewLikeRepository 是 likeRepository 的构造函数。
func NewLikeRepository(db *gorm.DB, logger *core.ZapLogger) LikeRepository {
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// InsertLike 实现点赞记录的插入。
// 唯一索引冲突原样上抛 (gorm.ErrDuplicatedKey)，由服务层解释为切换信号。
func (r *likeRepository) InsertLike(ctx context.Context, like *entities.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikeByTarget 实现按目标删除点赞记录。
func (r *likeRepository) DeleteLikeByTarget(ctx context.Context, userID string, topicID *uint64, postID *uint64) (bool, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	if postID != nil {
		query = query.Where("post_id = ?", *postID)
	}

	result := query.Unscoped().Delete(&entities.Like{})
	if result.Error != nil {
		r.logger.Error("删除点赞记录数据库操作失败",
			zap.Error(result.Error),
			zap.String("userID", userID),
			zap.Any("topicID", topicID),
			zap.Any("postID", postID),
		)
		return false, fmt.Errorf("删除点赞记录失败: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DeleteLikesByTopicIDs 实现主题点赞的批量物理删除。
func (r *likeRepository) DeleteLikesByTopicIDs(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Unscoped().Where("topic_id IN ?", topicIDs).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikesByPostID 实现回帖点赞的物理删除。
func (r *likeRepository) DeleteLikesByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	if err := db.WithContext(ctx).Unscoped().Where("post_id = ?", postID).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikesByPostsOfTopics 实现主题下回帖点赞的批量物理删除。
func (r *likeRepository) DeleteLikesByPostsOfTopics(ctx context.Context, db *gorm.DB, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	// 子查询定位主题下的全部回帖，点赞按 post_id 命中后一次删除
	subQuery := db.Model(&entities.Post{}).Select("id").Where("topic_id IN ?", topicIDs)
	if err := db.WithContext(ctx).Unscoped().Where("post_id IN (?)", subQuery).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikesByUser 实现用户发出点赞的物理删除。
func (r *likeRepository) DeleteLikesByUser(ctx context.Context, db *gorm.DB, userID string) error {
	if err := db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLikesByPostsOfAuthor 实现作者回帖所收点赞的物理删除。
func (r *likeRepository) DeleteLikesByPostsOfAuthor(ctx context.Context, db *gorm.DB, authorID string) error {
	subQuery := db.Model(&entities.Post{}).Select("id").Where("author_id = ?", authorID)
	if err := db.WithContext(ctx).Unscoped().Where("post_id IN (?)", subQuery).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	return nil
}
