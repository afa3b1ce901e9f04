package mysql

import (
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StoreCapabilities 描述底层存储在本次进程生命周期内可用的可选能力。
// - 作者联查视图 (topic_author_view / post_author_view) 由数据库侧按需创建，
//   不同部署环境可能缺失。服务启动时各探测一次，之后所有读路径按探测结果
//   选择视图或基础表，运行期间不再重复探测。
type StoreCapabilities struct {
	// TopicAuthorView 为 true 时，主题读路径走 topic_author_view 视图
	TopicAuthorView bool

	// PostAuthorView 为 true 时，回帖读路径走 post_author_view 视图
	PostAuthorView bool
}

// DetectStoreCapabilities 在服务启动时探测存储能力。
// - 探测方式: 对视图执行一次 LIMIT 1 查询，任何错误（视图不存在、权限不足等）
//   都视为能力缺失并回退到基础表路径，探测失败不会阻断启动。
func DetectStoreCapabilities(db *gorm.DB, logger *core.ZapLogger) *StoreCapabilities {
	caps := &StoreCapabilities{
		TopicAuthorView: probeView(db, "topic_author_view"),
		PostAuthorView:  probeView(db, "post_author_view"),
	}

	logger.Info("存储能力探测完成",
		zap.Bool("topicAuthorView", caps.TopicAuthorView),
		zap.Bool("postAuthorView", caps.PostAuthorView),
	)
	return caps
}

// probeView 探测单个视图是否可查询。
func probeView(db *gorm.DB, viewName string) bool {
	var one int
	// 视图为空时 Scan 不报错，只有视图不可用才返回 error
	err := db.Raw("SELECT 1 FROM " + viewName + " LIMIT 1").Scan(&one).Error
	return err == nil
}
