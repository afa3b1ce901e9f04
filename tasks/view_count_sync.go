package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	"github.com/Xushengqwer/forum_service/repo/redis"
)

// ViewCountSyncTask 负责定时将 Redis 中的主题浏览量同步到 MySQL 数据库。
type ViewCountSyncTask struct {
	topicViewRepo  redis.TopicViewRepository            // Redis 仓库，用于获取浏览量
	topicBatchRepo mysql.TopicBatchOperationsRepository // MySQL 批量操作仓库，用于更新浏览量
	cron           *cron.Cron                           // cron V3 实例
	logger         *core.ZapLogger
}

// NewViewCountSyncTask 初始化并启动浏览量同步的定时任务。
func NewViewCountSyncTask(
	topicViewRepo redis.TopicViewRepository,
	topicBatchRepo mysql.TopicBatchOperationsRepository,
	logger *core.ZapLogger,
) *ViewCountSyncTask {
	cronV3 := cron.New() // 默认分钟级精度
	task := &ViewCountSyncTask{
		topicViewRepo:  topicViewRepo,
		topicBatchRepo: topicBatchRepo,
		cron:           cronV3,
		logger:         logger,
	}
	task.startCronJob() // 在构造函数中启动定时作业
	return task
}

// startCronJob 配置并启动 cron 作业。
// 使用 constant.SyncViewCountInterval 定义的 cron 表达式来调度 syncViewCountsToDB 方法。
func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval
	t.logger.Info("准备启动主题浏览量同步MySQL定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("主题浏览量同步MySQL任务开始执行...")
		startTime := time.Now()
		// 为单次任务执行设置超时，应足够完成 Redis 数据获取和 MySQL 批量更新
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncViewCountsToDB(ctx)

		duration := time.Since(startTime)
		t.logger.Info("主题浏览量同步MySQL任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		// 添加 cron 作业失败通常是 schedule 表达式错误
		t.logger.Fatal("添加主题浏览量同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start() // 启动 cron 调度器 (在后台 goroutine 中运行)
	t.logger.Info("主题浏览量同步MySQL定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncViewCountsToDB 是定时任务执行的实际同步逻辑。
// 1. 从 Redis 获取全量的主题浏览量数据。
// 2. 调用 MySQL 仓库的 BatchUpdateTopicViewCounts 方法批量更新到数据库。
func (t *ViewCountSyncTask) syncViewCountsToDB(ctx context.Context) {
	t.logger.Info("任务步骤1: 开始从 Redis 获取全量主题浏览量...")
	viewCounts, err := t.topicViewRepo.GetAllViewCounts(ctx)
	if err != nil {
		t.logger.Error("从 Redis 获取全量浏览量失败，本次同步中止。", zap.Error(err))
		return
	}

	countFromRedis := len(viewCounts)
	if countFromRedis == 0 {
		t.logger.Info("从 Redis 获取到的浏览量数据为空，无需同步到 MySQL。")
		return
	}
	t.logger.Info("任务步骤1: 成功从 Redis 获取到浏览量数据。", zap.Int("主题数量", countFromRedis))

	t.logger.Info("任务步骤2: 开始将浏览量批量更新到 MySQL...")
	// BatchUpdateTopicViewCounts 允许部分批次失败，失败信息在其内部记录并聚合返回
	if err := t.topicBatchRepo.BatchUpdateTopicViewCounts(ctx, viewCounts); err != nil {
		t.logger.Error("MySQL 批量更新浏览量存在失败的批次",
			zap.Error(err),
			zap.Int("提交数量", countFromRedis),
		)
	} else {
		t.logger.Info("任务步骤2: MySQL 批量更新浏览量操作已完成。", zap.Int("提交数量", countFromRedis))
	}
}

// Stop 优雅地停止 cron 调度器。
// 返回一个 context，调用者可以使用它来等待正在运行的任务完成。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止主题浏览量同步MySQL定时任务...")
	stopCtx := t.cron.Stop() // cron.Stop() 停止新任务调度，并返回一个在其管理的任务都完成后关闭的 context
	t.logger.Info("主题浏览量同步MySQL定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
