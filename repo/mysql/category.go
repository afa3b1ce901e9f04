package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/entities"
)

// CategoryRepository 定义了版块数据在 MySQL 中的持久化操作接口。
// 版块由 seeder 或运维脚本预置，服务只读，因此接口不含写操作。
type CategoryRepository interface {
	// ListCategories 获取全部版块，按 SortOrder 升序排列。
	// - 版块数量有限（通常十个以内），不分页。
	ListCategories(ctx context.Context) ([]*entities.Category, error)

	// GetCategoryBySlug 根据 URL 标识符检索版块。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound 错误。
	GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error)

	// GetCategoryByID 根据主键检索版块。
	// - 主题详情页的次级查询使用。未找到返回 commonerrors.ErrRepoNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error)

	// GetCategoriesByIDs 批量检索版块，用于列表页的版块信息拼装。
	// - 一次 IN 查询取回全部命中的版块，缺失的 ID 不报错，由调用方自行处理。
	GetCategoriesByIDs(ctx context.Context, ids []uint64) ([]*entities.Category, error)
}

// categoryRepository 是 CategoryRepository 接口针对 MySQL 的具体实现。
type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListCategories 实现版块列表查询。
func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category

	// SortOrder 相同时按 ID 升序兜底，保证排序稳定
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		r.logger.Error("获取版块列表数据库查询失败", zap.Error(err))
		return nil, fmt.Errorf("查询版块列表失败: %w", err)
	}

	return categories, nil
}

// GetCategoryBySlug 实现根据标识符获取版块。
func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 slug 获取版块未找到", zap.String("slug", slug))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 slug 获取版块数据库查询失败", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	return &category, nil
}

// GetCategoryByID 实现根据主键获取版块。
func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	var category entities.Category

	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取版块未找到", zap.Uint64("categoryID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取版块数据库查询失败", zap.Uint64("categoryID", id), zap.Error(err))
		return nil, err
	}

	return &category, nil
}

// GetCategoriesByIDs 实现版块的批量获取。
func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, ids []uint64) ([]*entities.Category, error) {
	if len(ids) == 0 {
		return []*entities.Category{}, nil
	}

	var categories []*entities.Category
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		r.logger.Error("批量获取版块数据库查询失败", zap.Any("categoryIDs", ids), zap.Error(err))
		return nil, fmt.Errorf("批量查询版块失败: %w", err)
	}

	return categories, nil
}
