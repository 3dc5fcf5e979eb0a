package theme

import (
	"website/global"
	"website/models"
	"website/models/res"
	"website/service/theme_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Category 分类文章列表页
// 解析分类 -> 分页取文章 -> 批量读取阅读数 -> 渲染
// 分类不存在是404；分类下没有文章渲染空列表，两者不能混
func (t *Theme) Category(c *gin.Context) {
	category, err := models.GetCategory(c.Param("id"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	page := getPage(c)
	articles, err := models.GetArticlesByCategory(page, category.ID)
	if err != nil {
		global.Log.Error("加载分类文章失败",
			zap.String("category_id", category.ID),
			zap.String("error", err.Error()),
		)
		res.HandleError(c, err)
		return
	}

	counts, err := global.Cache.Counts(c.Request.Context(), models.ArticleIDs(articles))
	if err != nil {
		global.Log.Error("批量读取阅读数失败", zap.String("error", err.Error()))
		res.HandleError(c, err)
		return
	}
	for i := range articles {
		articles[i].Reads = counts[i]
	}

	theme_ser.Render(c, "article/category.html", gin.H{
		"category": category,
		"articles": articles,
		"page":     page,
	})
}
