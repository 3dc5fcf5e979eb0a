package theme

import (
	"time"

	"website/global"
	"website/models"
	"website/models/res"
	"website/service/theme_ser"
	"website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Article 文章详情页
// 解析文章 -> 发布时间检查 -> 递增阅读数 -> 解析分类 -> 加载评论 -> 渲染
// 发布时间检查必须在递增之前，未发布的内容一次也不能计数
func (t *Theme) Article(c *gin.Context) {
	article, err := models.GetArticle(c.Param("id"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	if !article.IsPublished(time.Now()) {
		res.HandleError(c, res.NotFoundErr("文章"))
		return
	}

	// 本次访问也计入，访问者看到的阅读数包含自己这一次
	reads, err := global.Cache.Incr(c.Request.Context(), article.ID)
	if err != nil {
		global.Log.Error("递增阅读数失败",
			zap.String("article_id", article.ID),
			zap.String("error", err.Error()),
		)
		res.HandleError(c, err)
		return
	}
	article.Reads = reads

	category, err := models.GetCategory(article.CategoryID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	comments, err := models.GetCommentsByRef(article.ID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	htmlContent, err := utils.Md2HTML(article.Content)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "article/article.html", gin.H{
		"article":      article,
		"category":     category,
		"comments":     comments,
		"html_content": htmlContent,
	})
}
