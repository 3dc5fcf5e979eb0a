package theme

import (
	"sort"

	"website/global"
	"website/models"
	"website/models/res"
	"website/service/theme_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getHotArticles 按阅读数取前3篇，阅读数相同时先后顺序不作保证
// 不足3篇时全部返回
func getHotArticles(articles []models.ArticleModel) []models.ArticleModel {
	hot := make([]models.ArticleModel, len(articles))
	copy(hot, articles)
	sort.SliceStable(hot, func(i, j int) bool {
		return hot[i].Reads > hot[j].Reads
	})
	if len(hot) > 3 {
		hot = hot[:3]
	}
	return hot
}

// Home 首页
// 分类列表 -> 最近文章 -> 批量读取阅读数 -> 按位置回贴 -> 渲染
func (t *Theme) Home(c *gin.Context) {
	categories, err := models.GetCategories()
	if err != nil {
		global.Log.Error("加载分类失败", zap.String("error", err.Error()))
		res.HandleError(c, err)
		return
	}

	articles, err := models.GetRecentArticles(recentArticleLimit)
	if err != nil {
		global.Log.Error("加载最近文章失败", zap.String("error", err.Error()))
		res.HandleError(c, err)
		return
	}

	// 批量读取必须与文章顺序一一对应，错位就是把阅读数贴错文章
	counts, err := global.Cache.Counts(c.Request.Context(), models.ArticleIDs(articles))
	if err != nil {
		global.Log.Error("批量读取阅读数失败", zap.String("error", err.Error()))
		res.HandleError(c, err)
		return
	}
	for i := range articles {
		articles[i].Reads = counts[i]
	}

	theme_ser.Render(c, "index.html", gin.H{
		"categories":  categories,
		"articles":    articles,
		"hotArticles": getHotArticles(articles),
	})
}
