package models

import (
	"context"
	"fmt"

	"website/global"
	"website/models/res"
	"website/pkg/cache"
	"website/utils"

	"github.com/go-playground/validator/v10"
)

// NavigationModel 导航菜单项
type NavigationModel struct {
	MODEL        `json:","`
	Name         string `json:"name" gorm:"size:100" validate:"required,max=100"` // 菜单名称
	URL          string `json:"url" gorm:"size:500" validate:"required,max=500"` // 链接地址，站内相对路径或完整网址
	DisplayOrder int    `json:"display_order"`                                    // 展示顺序
}

// GetNavigations 获取导航列表，按展示顺序排列
func GetNavigations() ([]NavigationModel, error) {
	var navigations []NavigationModel
	err := global.DB.Order("display_order asc").Find(&navigations).Error
	if err != nil {
		return nil, fmt.Errorf("查询导航列表失败: %w", err)
	}
	return navigations, nil
}

// SaveNavigation 管理入口：校验后保存菜单项并让缓存整体失效
func SaveNavigation(ctx context.Context, nav *NavigationModel) error {
	if err := utils.Validate(nav); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return res.InvalidParam("navigation", utils.FormatValidationError(errs))
		}
		return err
	}
	if err := global.DB.Save(nav).Error; err != nil {
		return fmt.Errorf("保存导航失败: %w", err)
	}
	return global.Cache.Invalidate(ctx, cache.KeyNavigations)
}
