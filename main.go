package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	// 导入项目包
	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/controller"
	"github.com/Xushengqwer/forum_service/dependencies"
	_ "github.com/Xushengqwer/forum_service/docs" // 注册 swagger 文档，/swagger/doc.json 由此提供
	"github.com/Xushengqwer/forum_service/mq/consumer"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/forum_service/repo/redis"
	"github.com/Xushengqwer/forum_service/router"
	"github.com/Xushengqwer/forum_service/service"
	"github.com/Xushengqwer/forum_service/tasks"

	// 导入公共模块
	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	// 导入 OTel HTTP Client Instrumentation
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Forum Service API
// @version         1.0
// @description     论坛服务，提供版块、主题、回帖、点赞与热榜等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8085

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.ForumConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("配置加载成功，最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
		// 当前服务不主动发起 HTTP 调用，Transport 初始化后暂未使用
		_ = otelhttp.NewTransport(http.DefaultTransport)
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 客户端
	cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功")

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，Kafka 生产者将为 nil")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	// 启动时探测一次存储能力，决定主题/回帖读取走作者联查视图还是基础表
	storeCaps := mysql.DetectStoreCapabilities(db, logger)

	categoryRepo := mysql.NewCategoryRepository(db, logger)
	topicRepo := mysql.NewTopicRepository(db, storeCaps, logger)
	postRepo := mysql.NewPostRepository(db, storeCaps, logger)
	likeRepo := mysql.NewLikeRepository(db, logger)
	topicImageRepo := mysql.NewTopicImageRepository(db, logger)
	topicBatchRepo := mysql.NewTopicBatchOperationsRepository(db, logger, cfg.ViewSyncConfig)
	logger.Debug("MySQL Repositories 初始化完成")

	topicViewRepo := redisrepo.NewTopicViewRepository(rdb, logger, cfg.ViewSyncConfig)
	cacheRepo := redisrepo.NewCache(rdb, logger)
	taskRepo := redisrepo.NewTopicTaskCacheImpl(rdb, logger, topicBatchRepo)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	categoryService := service.NewCategoryService(categoryRepo, topicRepo, postRepo, logger)
	topicService := service.NewTopicService(db, topicRepo, postRepo, likeRepo, topicImageRepo, categoryRepo, cos, topicViewRepo, kafkaProducer, logger)
	postService := service.NewPostService(db, postRepo, topicRepo, likeRepo, kafkaProducer, logger)
	likeService := service.NewLikeService(likeRepo, topicRepo, postRepo, logger)
	topicListService := service.NewTopicListService(topicRepo, postRepo, categoryRepo, logger)
	hotTopicService := service.NewHotTopicService(cacheRepo, topicBatchRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	categoryController := controller.NewCategoryController(categoryService)
	topicController := controller.NewTopicController(topicService)
	topicListController := controller.NewTopicListController(topicListService)
	postController := controller.NewPostController(postService)
	likeController := controller.NewLikeController(likeService)
	hotTopicController := controller.NewHotTopicController(hotTopicService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup

	// 可取消的 context，用于通知所有消费者停止
	var consumerCtx, consumerCancel = context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'forum_service_group'")
			groupID = "forum_service_group"
		}

		// 用户注销事件消费者: 清理该用户在论坛中的全部内容
		userDeactivatedTopic := cfg.KafkaConfig.Topics.UserDeactivated
		if userDeactivatedTopic != "" {
			purgeHandler := consumer.NewUserPurgeHandler(logger, topicService)
			purgeConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				userDeactivatedTopic,
				purgeHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化用户注销 Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, purgeConsumer)
			logger.Info("用户注销 Kafka 消费者已准备就绪", zap.String("topic", userDeactivatedTopic))
		} else {
			logger.Warn("UserDeactivated topic 未配置，跳过用户注销消费者创建")
		}

		if len(consumers) > 0 {
			logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
			for _, c := range consumers {
				consumerWg.Add(1)
				go func(cons *consumer.Consumer) {
					defer consumerWg.Done()
					cons.Start(consumerCtx)
				}(c)
			}
		} else {
			logger.Warn("没有配置任何有效的 Kafka 消费者。")
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	syncTask := tasks.NewViewCountSyncTask(topicViewRepo, topicBatchRepo, logger)
	cacheTask := tasks.NewHotTopicsCacheTask(taskRepo, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg,
		categoryController, topicController, topicListController,
		postController, likeController, hotTopicController)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭 Kafka 消费者
	logger.Info("正在发送停止信号给 Kafka 消费者...")
	consumerCancel()
	logger.Info("等待 Kafka 消费者停止...")
	consumerWg.Wait()

	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// c. 停止定时任务调度器，逐个等待正在执行的任务结束（受总关停超时约束）
	logger.Info("正在停止定时任务...")
	for name, stopCtx := range map[string]context.Context{
		"浏览量同步任务": syncTask.Stop(),
		"热榜缓存任务":  cacheTask.Stop(),
	} {
		select {
		case <-stopCtx.Done():
			logger.Info(name + "已停止")
		case <-shutdownCtx.Done():
			logger.Error("等待"+name+"停止超时", zap.Error(shutdownCtx.Err()))
		}
	}
	logger.Info("所有定时任务已停止")

	logger.Info("服务已成功关闭")
}
