package models

import (
	"errors"
	"fmt"

	"website/global"
	"website/models/res"

	"gorm.io/gorm"
)

// WikiModel 百科模型
type WikiModel struct {
	MODEL       `json:","`
	Name        string `json:"name" gorm:"size:200" validate:"required,max=200"` // 百科名称
	Description string `json:"description" gorm:"size:500"`                      // 百科描述
	Content     string `json:"content"`                                          // 首页正文（Markdown）
	Reads       int64  `json:"reads" gorm:"-"`                                   // 阅读数，渲染前从计数服务回填
	ReadsSync   int64  `json:"-" gorm:"column:reads_sync"`                       // 定时任务回写的近似阅读数
}

// WikiPageModel 百科子页模型
type WikiPageModel struct {
	MODEL        `json:","`
	WikiID       string           `json:"wiki_id" gorm:"size:24;index"`                      // 所属百科
	ParentID     string           `json:"parent_id" gorm:"size:24;index"`                    // 父页面，空串表示挂在百科根下
	DisplayOrder int              `json:"display_order"`                                     // 同级排序
	Title        string           `json:"title" gorm:"size:200" validate:"required,max=200"` // 页面标题
	Content      string           `json:"content"`                                           // 页面正文（Markdown）
	Reads        int64            `json:"reads" gorm:"-"`                                    // 阅读数，渲染前从计数服务回填
	ReadsSync    int64            `json:"-" gorm:"column:reads_sync"`                        // 定时任务回写的近似阅读数
	Children     []*WikiPageModel `json:"children" gorm:"-"`                                 // 树结构，查询后装配
}

// GetWiki 按ID获取百科（不含正文）
func GetWiki(id string) (*WikiModel, error) {
	var wiki WikiModel
	err := global.DB.Omit("content").Take(&wiki, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("百科")
	}
	if err != nil {
		return nil, fmt.Errorf("查询百科失败: %w", err)
	}
	return &wiki, nil
}

// GetWikiWithContent 按ID获取百科（含正文）
func GetWikiWithContent(id string) (*WikiModel, error) {
	var wiki WikiModel
	err := global.DB.Take(&wiki, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("百科")
	}
	if err != nil {
		return nil, fmt.Errorf("查询百科失败: %w", err)
	}
	return &wiki, nil
}

// GetWikiPage 按ID获取百科子页（不含正文）
func GetWikiPage(id string) (*WikiPageModel, error) {
	var page WikiPageModel
	err := global.DB.Omit("content").Take(&page, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("百科页")
	}
	if err != nil {
		return nil, fmt.Errorf("查询百科页失败: %w", err)
	}
	return &page, nil
}

// GetWikiPageWithContent 按ID获取百科子页（含正文）
func GetWikiPageWithContent(id string) (*WikiPageModel, error) {
	var page WikiPageModel
	err := global.DB.Take(&page, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("百科页")
	}
	if err != nil {
		return nil, fmt.Errorf("查询百科页失败: %w", err)
	}
	return &page, nil
}

// GetWikiTree 获取整棵百科目录树，子页不含正文
// 同级按display_order排序，父子关系在内存中装配
func GetWikiTree(wikiID string) ([]*WikiPageModel, error) {
	var pages []*WikiPageModel
	err := global.DB.
		Omit("content").
		Where("wiki_id = ?", wikiID).
		Order("display_order asc").
		Find(&pages).Error
	if err != nil {
		return nil, fmt.Errorf("查询百科目录失败: %w", err)
	}

	byParent := make(map[string][]*WikiPageModel, len(pages))
	for _, p := range pages {
		byParent[p.ParentID] = append(byParent[p.ParentID], p)
	}
	for _, p := range pages {
		p.Children = byParent[p.ID]
	}
	return byParent[""], nil
}
