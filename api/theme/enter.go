package theme

import (
	"strconv"

	"website/models"

	"github.com/gin-gonic/gin"
)

// Theme 主题页面控制器，聚合管道都在这里
// 每个页面是一条固定顺序的取数流水线：上一步的产出喂给下一步，
// 任何一步失败立即终止并返回错误，绝不渲染半成品页面
type Theme struct{}

// 每页条数，分类列表、讨论区、搜索共用同一游标约定
const itemsPerPage = 10

// 首页最近文章数量
const recentArticleLimit = 20

// getPage 从请求的page参数构建分页游标，非法页码回退到第一页
func getPage(c *gin.Context) *models.Page {
	index, err := strconv.Atoi(c.Query("page"))
	if err != nil || index < 1 {
		index = 1
	}
	return models.NewPage(index, itemsPerPage)
}
