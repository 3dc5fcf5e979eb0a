package theme

import (
	"website/global"
	"website/middleware"
	"website/models"
	"website/models/res"
	"website/service/comment_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentRequest struct {
	Content string `json:"content" form:"content"`
}

// createComment 三种评论入口共用的提交管道入口
func (t *Theme) createComment(c *gin.Context, refType models.CommentRefType) {
	var req commentRequest
	if err := c.ShouldBind(&req); err != nil {
		global.Log.Error("c.ShouldBind() failed", zap.String("error", err.Error()))
		res.HandleError(c, res.InvalidParam("content", "请求参数格式错误"))
		return
	}

	comment, err := comment_ser.Create(
		middleware.CurrentUser(c),
		refType,
		c.Param("id"),
		req.Content,
		c.Request.Host,
	)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	res.Success(c, comment)
}

// ArticleComment 文章评论
func (t *Theme) ArticleComment(c *gin.Context) {
	t.createComment(c, models.RefArticle)
}

// WikiComment 百科评论
func (t *Theme) WikiComment(c *gin.Context) {
	t.createComment(c, models.RefWiki)
}

// WikiPageComment 百科子页评论
func (t *Theme) WikiPageComment(c *gin.Context) {
	t.createComment(c, models.RefWikiPage)
}
