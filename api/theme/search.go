package theme

import (
	"net/http"

	"website/models/res"
	"website/service/search_ser"
	"website/service/theme_ser"

	"github.com/gin-gonic/gin"
)

// Search 站内搜索
// 外部引擎：直接302到引擎自己的查询地址，本地逻辑全部跳过
// 内部引擎：类型归一 -> 查询词消毒 -> 分页搜索 -> 总数回填游标 -> 渲染
func (t *Theme) Search(c *gin.Context) {
	q := c.Query("q")

	if search_ser.External() {
		c.Redirect(http.StatusFound, search_ser.ExternalURL(q))
		return
	}

	searchType := search_ser.NormalizeType(c.Query("type"))
	page := getPage(c)

	results, err := search_ser.Search(c.Request.Context(), search_ser.NormalizeQuery(q), searchType, page)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "search.html", gin.H{
		"searchTypes": search_ser.SearchTypes,
		"type":        searchType,
		"page":        page,
		"q":           q,
		"results":     results.Items,
	})
}
