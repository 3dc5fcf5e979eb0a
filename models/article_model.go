package models

import (
	"errors"
	"fmt"
	"time"

	"website/global"
	"website/models/ctypes"
	"website/models/res"

	"gorm.io/gorm"
)

// ArticleModel 文章模型
type ArticleModel struct {
	MODEL      `json:","`
	Title      string        `json:"title" gorm:"size:200" validate:"required,max=200"` // 文章标题
	Abstract   string        `json:"abstract" gorm:"size:500"`                          // 文章简介
	Content    string        `json:"content"`                                           // 文章内容（Markdown）
	CategoryID string        `json:"category_id" gorm:"size:24;index"`                  // 所属分类
	UserID     string        `json:"user_id" gorm:"size:24"`                            // 作者
	PublishAt  ctypes.MyTime `json:"publish_at"`                                        // 发布时间，晚于当前时间视为未发布
	Reads      int64         `json:"reads" gorm:"-"`                                    // 阅读数，渲染前从计数服务回填
	ReadsSync  int64         `json:"-" gorm:"column:reads_sync"`                        // 定时任务回写的近似阅读数
}

// IsPublished 发布时间是否已到
func (a *ArticleModel) IsPublished(now time.Time) bool {
	return !time.Time(a.PublishAt).After(now)
}

// GetArticle 按ID获取文章
func GetArticle(id string) (*ArticleModel, error) {
	var article ArticleModel
	err := global.DB.Take(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("文章")
	}
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	return &article, nil
}

// GetRecentArticles 获取最近发布的文章，未到发布时间的不出现在列表中
func GetRecentArticles(limit int) ([]ArticleModel, error) {
	var articles []ArticleModel
	err := global.DB.
		Where("publish_at <= ?", time.Now()).
		Order("publish_at desc").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询最近文章失败: %w", err)
	}
	return articles, nil
}

// GetArticlesByCategory 按分类分页获取已发布文章，并回填游标总数
// 分类不存在与分类下无文章是两种情况，前者由调用方先行解析分类
func GetArticlesByCategory(page *Page, categoryID string) ([]ArticleModel, error) {
	query := global.DB.Model(&ArticleModel{}).
		Where("category_id = ?", categoryID).
		Where("publish_at <= ?", time.Now())

	if err := query.Count(&page.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("统计分类文章数失败: %w", err)
	}

	var articles []ArticleModel
	err := query.
		Order("publish_at desc").
		Limit(page.ItemsPerPage).
		Offset(page.Offset()).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询分类文章失败: %w", err)
	}
	return articles, nil
}

// ArticleIDs 提取文章ID序列，顺序与输入一致
func ArticleIDs(articles []ArticleModel) []string {
	ids := make([]string, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	return ids
}
