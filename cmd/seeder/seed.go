package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/models/dto"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/service"
)

// seedCategory 描述一个预置版块。版块是服务的只读数据，由 seeder 按 slug 幂等写入。
type seedCategory struct {
	Slug        string
	Name        string
	Description string
	Icon        string
	Color       string
	SortOrder   int
}

// 预置版块列表。slug 固定，重复执行 seeder 不会产生重复版块。
var seedCategories = []seedCategory{
	{"general-discussion", "综合讨论", "新手提问与日常交流", "chat", "#4f8cff", 1},
	{"peptide-stacks", "组合方案", "多肽组合方案的分享与讨论", "layers", "#22c55e", 2},
	{"dosing-protocols", "剂量方案", "剂量、周期与给药方式", "syringe", "#f59e0b", 3},
	{"results-progress", "效果记录", "使用记录、数据与进度追踪", "chart", "#a855f7", 4},
	{"sourcing-vendors", "渠道与供应商", "供应商口碑与检测报告", "store", "#ef4444", 5},
	{"research-news", "研究动态", "论文、临床进展与行业新闻", "book", "#06b6d4", 6},
}

// Seed 填充测试数据: 先幂等预置版块，然后通过服务层并发创建主题，
// 再为每个主题生成若干回帖和点赞，走与线上请求相同的业务路径。
func Seed(
	ctx context.Context,
	db *gorm.DB,
	topicSvc service.TopicService,
	postSvc service.PostService,
	likeSvc service.LikeService,
	logger *core.ZapLogger,
	numTopics int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("主题数量", numTopics))

	// --- 步骤 1: 预置版块 (直接写库，服务层没有版块写接口) ---
	categoryIDs := make([]uint64, 0, len(seedCategories))
	for _, sc := range seedCategories {
		category := entities.Category{
			Slug:        sc.Slug,
			Name:        sc.Name,
			Description: sc.Description,
			Icon:        sc.Icon,
			Color:       sc.Color,
			SortOrder:   sc.SortOrder,
		}
		// 按 slug 幂等: 已存在则仅取回主键
		if err := db.WithContext(ctx).Where("slug = ?", sc.Slug).FirstOrCreate(&category).Error; err != nil {
			logger.Error("预置版块失败", zap.String("slug", sc.Slug), zap.Error(err))
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}
	if len(categoryIDs) == 0 {
		logger.Error("没有任何可用版块，填充中止")
		return
	}
	logger.Info("版块预置完成", zap.Int("版块数量", len(categoryIDs)))

	// --- 步骤 2: 并发创建主题 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	var mu sync.Mutex
	topicIDs := make([]uint64, 0, numTopics)

	for i := 0; i < numTopics; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := uuid.New().String()
			createReq := &dto.CreateTopicRequest{
				CategoryID: categoryIDs[rand.Intn(len(categoryIDs))],
				Title:      strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(5, 12)), "."),
				Content:    gofakeit.Paragraph(3, 5, 20, "\n\n"),
			}

			resp, err := topicSvc.CreateTopic(ctx, authorID, createReq, nil)
			if err != nil {
				logger.Error(fmt.Sprintf("创建主题 %d/%d 失败", itemIndex+1, numTopics),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author_id", authorID))
				return
			}

			mu.Lock()
			topicIDs = append(topicIDs, resp.ID)
			mu.Unlock()

			// 每个主题下随机生成 0-5 条回帖，并随机点赞
			numPosts := gofakeit.Number(0, 5)
			for p := 0; p < numPosts; p++ {
				replierID := uuid.New().String()
				postResp, postErr := postSvc.CreatePost(ctx, replierID, resp.ID, &dto.CreatePostRequest{
					Content: gofakeit.Paragraph(1, 3, 15, "\n"),
				})
				if postErr != nil {
					logger.Error("创建回帖失败", zap.Uint64("topic_id", resp.ID), zap.Error(postErr))
					continue
				}

				// 约三分之一的回帖收到一个点赞
				if gofakeit.Number(0, 2) == 0 {
					postID := postResp.ID
					if _, likeErr := likeSvc.ToggleLike(ctx, uuid.New().String(), &dto.ToggleLikeRequest{PostID: &postID}); likeErr != nil {
						logger.Warn("回帖点赞失败", zap.Uint64("post_id", postID), zap.Error(likeErr))
					}
				}
			}

			// 主题本身随机收到 0-3 个点赞
			numLikes := gofakeit.Number(0, 3)
			for l := 0; l < numLikes; l++ {
				topicID := resp.ID
				if _, likeErr := likeSvc.ToggleLike(ctx, uuid.New().String(), &dto.ToggleLikeRequest{TopicID: &topicID}); likeErr != nil {
					logger.Warn("主题点赞失败", zap.Uint64("topic_id", topicID), zap.Error(likeErr))
				}
			}

			logger.Info(fmt.Sprintf("成功创建主题 %d/%d", itemIndex+1, numTopics),
				zap.Uint64("topic_id", resp.ID),
				zap.String("title", resp.Title))
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。",
		zap.Int("成功创建主题数", len(topicIDs)))
}
