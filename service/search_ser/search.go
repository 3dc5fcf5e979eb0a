package search_ser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"website/global"
	"website/models"
	"website/models/res"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"go.uber.org/zap"
)

// SearchType 搜索类型选项
type SearchType struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SearchTypes 可选类型的固定集合，第一项为默认值
var SearchTypes = []SearchType{
	{Label: "All", Value: "all"},
	{Label: "Article", Value: "article"},
	{Label: "Wiki", Value: "wiki"},
	{Label: "Discuss", Value: "discuss"},
}

// SearchResults 搜索结果
type SearchResults struct {
	Items []SearchDoc `json:"items"`
	Total int64       `json:"total"`
}

// External 是否配置了外部搜索引擎
func External() bool {
	return global.Config.Search.External
}

// ExternalURL 外部引擎的查询地址，直接携带原始查询词
func ExternalURL(q string) string {
	return fmt.Sprintf(global.Config.Search.ExternalURL, url.QueryEscape(q))
}

// NormalizeType 校验类型参数，无法识别或缺失时静默回退到all
func NormalizeType(t string) string {
	for _, st := range SearchTypes {
		if st.Value == t {
			return t
		}
	}
	return SearchTypes[0].Value
}

// NormalizeQuery 去掉查询词里的引号，防御性归一化而非完整转义
func NormalizeQuery(q string) string {
	q = strings.ReplaceAll(q, "'", "")
	return strings.ReplaceAll(q, `"`, "")
}

// Search 调用内部引擎执行搜索
// 只有选择了非all类型才追加类型过滤；分页由游标换算为offset/limit；
// 引擎异常不向外透传内部状态，统一升级为通用引擎错误
func Search(ctx context.Context, q, searchType string, page *models.Page) (*SearchResults, error) {
	boolQuery := types.NewBoolQuery()
	boolQuery.Must = append(boolQuery.Must, types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:  q,
			Fields: []string{"title", "content"},
		},
	})
	if searchType != "all" {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Term: map[string]types.TermQuery{
				"type": {Value: searchType},
			},
		})
	}

	from := page.Offset()
	size := page.ItemsPerPage

	resp, err := global.Es.Search().
		Index(global.Config.Search.Index).
		Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{Score_: &types.ScoreSort{Order: &sortorder.Desc}}).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		global.Log.Error("搜索请求失败",
			zap.String("query", q),
			zap.String("type", searchType),
			zap.String("error", err.Error()),
		)
		return nil, res.EngineErr()
	}

	items := make([]SearchDoc, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc SearchDoc
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			global.Log.Error("解析搜索结果失败",
				zap.String("error", err.Error()),
				zap.String("document_id", *hit.Id_),
			)
			continue
		}
		items = append(items, doc)
	}

	// 命中总数回填到游标，列表页据此渲染分页
	page.TotalItems = resp.Hits.Total.Value

	return &SearchResults{
		Items: items,
		Total: resp.Hits.Total.Value,
	}, nil
}
