package models

import (
	"context"
	"errors"
	"fmt"

	"website/global"
	"website/pkg/cache"

	"gorm.io/gorm"
)

// SettingModel 站点设置，按分类组织的键值对
type SettingModel struct {
	MODEL    `json:","`
	Category string `json:"category" gorm:"size:50;uniqueIndex:idx_category_key"`             // 设置分类
	Key      string `json:"key" gorm:"column:setting_key;size:100;uniqueIndex:idx_category_key"` // 设置键
	Value    string `json:"value" gorm:"size:2000"`                                           // 设置值
}

// GetSettingsByDefaults 获取某分类下的全部设置并叠加默认值
// 已持久化的键覆盖默认值，缺失的键回退到默认值，杜绝页面渲染出空白配置
func GetSettingsByDefaults(category string, defaults map[string]string) (map[string]string, error) {
	var rows []SettingModel
	err := global.DB.Where("category = ?", category).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询站点设置失败: %w", err)
	}

	merged := make(map[string]string, len(defaults)+len(rows))
	for k, v := range defaults {
		merged[k] = v
	}
	for _, row := range rows {
		merged[row.Key] = row.Value
	}
	return merged, nil
}

// SetSetting 管理入口：写入设置并让整个设置缓存失效
// 缓存永远整包替换，不做原地修改
func SetSetting(ctx context.Context, category, key, value string) error {
	var row SettingModel
	err := global.DB.Where("category = ? AND setting_key = ?", category, key).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = SettingModel{Category: category, Key: key, Value: value}
		if err := global.DB.Create(&row).Error; err != nil {
			return fmt.Errorf("保存站点设置失败: %w", err)
		}
	case err != nil:
		return fmt.Errorf("查询站点设置失败: %w", err)
	default:
		if err := global.DB.Model(&row).Update("value", value).Error; err != nil {
			return fmt.Errorf("更新站点设置失败: %w", err)
		}
	}
	return global.Cache.Invalidate(ctx, cache.KeyWebsiteSettings)
}
