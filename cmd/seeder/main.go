package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/forum_service/config"
	"github.com/Xushengqwer/forum_service/dependencies"
	"github.com/Xushengqwer/forum_service/mq/producer"
	"github.com/Xushengqwer/forum_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/forum_service/repo/redis"
	forumService "github.com/Xushengqwer/forum_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numTopics int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numTopics, "n", 50, "要生成的主题数量 (默认: 50)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' (尝试绝对路径: '%s') 生成 %d 个测试主题...\n", configFile, absConfigFile, numTopics)

	if numTopics <= 0 {
		fmt.Println("错误: 生成的主题数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.ForumConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空。请检查：")
		fmt.Println("1. 配置文件路径是否正确 (当前尝试路径: ", absConfigFile, ")。")
		fmt.Println("2. 配置文件内容中 `mysql.write.dsn` 是否存在且有值。")
		fmt.Println("3. 是否有环境变量覆盖了此配置项为空字符串。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		logger.Info("Seeder: 正在刷新日志...")
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka brokers，填充过程不发送事件 (Seeder)")
	}

	// --- 5. 初始化 COS 客户端 ---
	cos, cosError := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosError != nil {
		logger.Fatal("初始化 COS 客户端失败 (Seeder)", zap.Error(cosError))
	}
	logger.Info("COS 客户端初始化成功 (Seeder)")

	// --- 6. 初始化 Repositories ---
	storeCaps := mysql.DetectStoreCapabilities(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	topicRepo := mysql.NewTopicRepository(db, storeCaps, logger)
	postRepo := mysql.NewPostRepository(db, storeCaps, logger)
	likeRepo := mysql.NewLikeRepository(db, logger)
	topicImageRepo := mysql.NewTopicImageRepository(db, logger)

	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，浏览量计数将不可用", zap.Error(redisErr))
	}
	var topicViewRepo redisRepo.TopicViewRepository
	if rdb != nil {
		topicViewRepo = redisRepo.NewTopicViewRepository(rdb, logger, cfg.ViewSyncConfig)
	} else {
		logger.Warn("TopicViewRepository (Redis) 未初始化，依赖此仓库的功能将不可用")
	}

	// --- 7. 初始化 Services ---
	topicSvc := forumService.NewTopicService(
		db,
		topicRepo,
		postRepo,
		likeRepo,
		topicImageRepo,
		categoryRepo,
		cos,
		topicViewRepo,
		kafkaProducer,
		logger,
	)
	postSvc := forumService.NewPostService(db, postRepo, topicRepo, likeRepo, kafkaProducer, logger)
	likeSvc := forumService.NewLikeService(likeRepo, topicRepo, postRepo, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 8. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计主题数量", numTopics))

	Seed(ctx, db, topicSvc, postSvc, likeSvc, logger, numTopics)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 9. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 数据填充请求已发送，等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成（包括等待期），准备退出。")
}
