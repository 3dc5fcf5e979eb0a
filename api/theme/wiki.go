package theme

import (
	"net/http"

	"website/global"
	"website/models"
	"website/models/res"
	"website/service/theme_ser"
	"website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wiki 百科首页
// 解析百科（含正文）-> 递增阅读数 -> 加载目录树 -> 加载评论 -> 渲染
func (t *Theme) Wiki(c *gin.Context) {
	wiki, err := models.GetWikiWithContent(c.Param("id"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	reads, err := global.Cache.Incr(c.Request.Context(), wiki.ID)
	if err != nil {
		global.Log.Error("递增阅读数失败",
			zap.String("wiki_id", wiki.ID),
			zap.String("error", err.Error()),
		)
		res.HandleError(c, err)
		return
	}
	wiki.Reads = reads

	tree, err := models.GetWikiTree(wiki.ID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	comments, err := models.GetCommentsByRef(wiki.ID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	htmlContent, err := utils.Md2HTML(wiki.Content)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "wiki/wiki.html", gin.H{
		"wiki":         wiki,
		"tree":         tree,
		"comments":     comments,
		"html_content": htmlContent,
	})
}

// WikiPageRedirect 子页短链接跳转到规范路径 /wiki/:wid/:pid
func (t *Theme) WikiPageRedirect(c *gin.Context) {
	page, err := models.GetWikiPage(c.Param("id"))
	if err != nil {
		res.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/wiki/"+page.WikiID+"/"+page.ID)
}

// WikiPage 百科子页
// 解析子页（含正文）-> 递增阅读数 -> 校验子页确实属于路径里的百科 ->
// 加载目录树 -> 加载评论 -> 渲染
// 父子不匹配按404处理，防止用别的百科ID拼路径读到这个子页
func (t *Theme) WikiPage(c *gin.Context) {
	page, err := models.GetWikiPageWithContent(c.Param("pid"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	reads, err := global.Cache.Incr(c.Request.Context(), page.ID)
	if err != nil {
		global.Log.Error("递增阅读数失败",
			zap.String("wiki_page_id", page.ID),
			zap.String("error", err.Error()),
		)
		res.HandleError(c, err)
		return
	}
	page.Reads = reads

	if page.WikiID != c.Param("id") {
		res.HandleError(c, res.NotFoundErr("百科"))
		return
	}

	wiki, err := models.GetWiki(page.WikiID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	tree, err := models.GetWikiTree(wiki.ID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	comments, err := models.GetCommentsByRef(page.ID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	htmlContent, err := utils.Md2HTML(page.Content)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "wiki/wiki.html", gin.H{
		"wiki":         wiki,
		"page":         page,
		"tree":         tree,
		"comments":     comments,
		"html_content": htmlContent,
	})
}
