package theme

import (
	"website/models"
	"website/models/res"
	"website/service/theme_ser"
	"website/utils"

	"github.com/gin-gonic/gin"
)

// Page 独立单页
// 草稿对外等同于不存在
func (t *Theme) Page(c *gin.Context) {
	page, err := models.GetPageByAlias(c.Param("alias"))
	if err != nil {
		res.HandleError(c, err)
		return
	}
	if page.Draft {
		res.HandleError(c, res.NotFoundErr("页面"))
		return
	}

	htmlContent, err := utils.Md2HTML(page.Content)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "page/page.html", gin.H{
		"page":         page,
		"html_content": htmlContent,
	})
}

// User 用户主页
func (t *Theme) User(c *gin.Context) {
	user, err := models.GetUser(c.Param("id"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "user/profile.html", gin.H{
		"user": user,
	})
}
