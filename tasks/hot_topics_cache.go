package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/repo/redis"
)

// HotTopicsCacheTask 负责定时刷新 Redis 中的热门主题缓存。
// 它协调生成热榜快照 (ZSet)，并基于该快照更新主题基本信息 Hash。
type HotTopicsCacheTask struct {
	taskCache redis.TopicTaskCache
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewHotTopicsCacheTask 初始化并启动热门主题缓存的定时任务。
func NewHotTopicsCacheTask(taskCache redis.TopicTaskCache, logger *core.ZapLogger) *HotTopicsCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &HotTopicsCacheTask{
		taskCache: taskCache,
		cron:      cronV3,
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotTopicsCacheTask) startCronJob() {
	schedule := constant.HotTopicsCacheCronSpec
	t.logger.Info("准备启动热门主题缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门主题缓存刷新任务开始执行...")
		startTime := time.Now()
		// 超时应大于两个子步骤正常执行时间的总和并留有余量
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.syncHotCaches(ctx)

		duration := time.Since(startTime)
		t.logger.Info("热门主题缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门主题缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门主题缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncHotCaches 是定时任务执行的实际同步逻辑。
// 它按顺序调用 TopicTaskCache 接口的方法：
// 1. 从实时排行榜生成热榜快照 ZSet。
// 2. 基于快照同步热门主题基本信息到 Hash。
func (t *HotTopicsCacheTask) syncHotCaches(ctx context.Context) {
	// 步骤 1: 创建/更新热榜快照 (constant.HotTopicsRankKey)，作为后续步骤的数据源
	t.logger.Info("任务步骤1: 开始创建/更新热榜快照 ZSet...")
	if err := t.taskCache.CreateHotList(ctx, constant.HotTopicsCacheSize); err != nil {
		// 快照失败时继续执行，Hash 刷新会基于上一次的快照，数据偏旧但可用
		t.logger.Error("创建/更新热榜快照 ZSet 失败，后续缓存可能不准确", zap.Error(err))
	} else {
		t.logger.Info("任务步骤1: 成功创建/更新热榜快照 ZSet")
	}

	// 步骤 2: 同步热门主题基本信息到 Hash 缓存
	t.logger.Info("任务步骤2: 开始同步热门主题基本信息到 Redis Hash...")
	if err := t.taskCache.CacheHotTopicsToRedis(ctx); err != nil {
		t.logger.Error("同步热门主题基本信息到 Redis Hash 失败", zap.Error(err))
	} else {
		t.logger.Info("任务步骤2: 成功同步热门主题基本信息到 Redis Hash")
	}
}

// Stop 优雅地停止 cron 调度器。
func (t *HotTopicsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门主题缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门主题缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx // 调用者可以使用此 context 等待任务结束
}
