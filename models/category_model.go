package models

import (
	"errors"
	"fmt"

	"website/global"
	"website/models/res"

	"gorm.io/gorm"
)

// CategoryModel 文章分类
type CategoryModel struct {
	MODEL        `json:","`
	Name         string `json:"name" gorm:"size:100" validate:"required,max=100"` // 分类名称
	Description  string `json:"description" gorm:"size:500"`                      // 分类描述
	DisplayOrder int    `json:"display_order"`                                    // 展示顺序
}

// GetCategory 按ID获取分类
func GetCategory(id string) (*CategoryModel, error) {
	var category CategoryModel
	err := global.DB.Take(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("分类")
	}
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	return &category, nil
}

// GetCategories 获取全部分类，按展示顺序排列
func GetCategories() ([]CategoryModel, error) {
	var categories []CategoryModel
	err := global.DB.Order("display_order asc").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	return categories, nil
}
