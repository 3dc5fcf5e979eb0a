package models

import (
	"errors"
	"fmt"

	"website/global"
	"website/models/res"

	"gorm.io/gorm"
)

// PageModel 单页模型（关于、联系等独立页面）
type PageModel struct {
	MODEL   `json:","`
	Alias   string `json:"alias" gorm:"size:100;uniqueIndex" validate:"required,max=100"` // URL别名
	Title   string `json:"title" gorm:"size:200" validate:"required,max=200"`             // 页面标题
	Content string `json:"content"`                                                       // 页面正文（Markdown）
	Draft   bool   `json:"draft"`                                                         // 草稿不对外展示
}

// GetPageByAlias 按别名获取单页
func GetPageByAlias(alias string) (*PageModel, error) {
	var page PageModel
	err := global.DB.Take(&page, "alias = ?", alias).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("页面")
	}
	if err != nil {
		return nil, fmt.Errorf("查询页面失败: %w", err)
	}
	return &page, nil
}
