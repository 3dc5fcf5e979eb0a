package search_ser

import (
	"context"
	"fmt"
	"time"

	"website/global"
	"website/models"
	"website/models/ctypes"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"go.uber.org/zap"
)

// SearchDoc 搜索索引文档，文章、百科、讨论主题统一成一种结构
type SearchDoc struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"` // article/wiki/discuss
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	URL       string        `json:"url"`
	CreatedAt ctypes.MyTime `json:"created_at"`
}

const indexTimeout = time.Second * 5

// IndexCreate 创建搜索索引，已存在则先删除重建
func IndexCreate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	index := global.Config.Search.Index

	exist, err := global.Es.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("检查索引是否存在失败: %w", err)
	}
	if exist {
		if _, err := global.Es.Indices.Delete(index).Do(ctx); err != nil {
			return fmt.Errorf("删除已存在的索引失败: %w", err)
		}
	}

	// 索引映射
	properties := map[string]types.Property{
		"type":       types.NewKeywordProperty(),
		"title":      types.NewTextProperty(),
		"content":    types.NewTextProperty(),
		"url":        types.NewKeywordProperty(),
		"created_at": types.NewDateProperty(),
	}

	_, err = global.Es.Indices.Create(index).
		Mappings(&types.TypeMapping{
			Properties: properties,
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("创建索引失败: %w", err)
	}
	global.Log.Info("创建索引成功", zap.String("index", index))
	return nil
}

// IndexDoc 写入或覆盖一条索引文档
func IndexDoc(ctx context.Context, doc *SearchDoc) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := global.Es.Index(global.Config.Search.Index).
		Id(doc.Type + ":" + doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("写入索引失败: %w", err)
	}
	return nil
}

// Reindex 从数据库全量重建索引，flags命令调用
func Reindex(ctx context.Context) error {
	if err := IndexCreate(ctx); err != nil {
		return err
	}

	articles, err := models.GetRecentArticles(10000)
	if err != nil {
		return err
	}
	for i := range articles {
		a := &articles[i]
		doc := &SearchDoc{
			ID:        a.ID,
			Type:      "article",
			Title:     a.Title,
			Content:   a.Content,
			URL:       "/article/" + a.ID,
			CreatedAt: a.CreatedAt,
		}
		if err := IndexDoc(ctx, doc); err != nil {
			return err
		}
	}

	var wikis []models.WikiModel
	if err := global.DB.Find(&wikis).Error; err != nil {
		return fmt.Errorf("查询百科失败: %w", err)
	}
	for i := range wikis {
		w := &wikis[i]
		doc := &SearchDoc{
			ID:        w.ID,
			Type:      "wiki",
			Title:     w.Name,
			Content:   w.Content,
			URL:       "/wiki/" + w.ID,
			CreatedAt: w.CreatedAt,
		}
		if err := IndexDoc(ctx, doc); err != nil {
			return err
		}
	}

	var topics []models.TopicModel
	if err := global.DB.Find(&topics).Error; err != nil {
		return fmt.Errorf("查询讨论主题失败: %w", err)
	}
	for i := range topics {
		t := &topics[i]
		doc := &SearchDoc{
			ID:        t.ID,
			Type:      "discuss",
			Title:     t.Title,
			Content:   t.Content,
			URL:       "/discuss/" + t.BoardID + "/" + t.ID,
			CreatedAt: t.CreatedAt,
		}
		if err := IndexDoc(ctx, doc); err != nil {
			return err
		}
	}

	global.Log.Info("重建索引完成",
		zap.Int("articles", len(articles)),
		zap.Int("wikis", len(wikis)),
		zap.Int("topics", len(topics)),
	)
	return nil
}
