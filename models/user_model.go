package models

import (
	"errors"
	"fmt"

	"website/global"
	"website/models/ctypes"
	"website/models/res"

	"gorm.io/gorm"
)

// UserModel 用户模型
type UserModel struct {
	MODEL    `json:","`
	Name     string          `json:"name" gorm:"size:100" validate:"required,max=100"` // 用户昵称
	Email    string          `json:"email" gorm:"size:191;index"`                      // 邮箱
	ImageURL string          `json:"image_url" gorm:"size:500"`                        // 头像
	Role     ctypes.UserRole `json:"role" gorm:"size:20"`                              // 角色
}

// UserBound 可以批量装配用户信息的对象（主题、回复等）
type UserBound interface {
	GetUserID() string
	SetUser(*UserModel)
}

// GetUser 按ID获取用户
func GetUser(id string) (*UserModel, error) {
	var user UserModel
	err := global.DB.Take(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("用户")
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// BindUsers 把作者信息一次性装配到一组对象上
// 去重后只发起一次IN查询；查不到的用户保持为空，不让单个缺失拖垮整批
func BindUsers(items []UserBound) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id := item.GetUserID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	var users []UserModel
	if err := global.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return fmt.Errorf("批量查询用户失败: %w", err)
	}

	byID := make(map[string]*UserModel, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for _, item := range items {
		if u, ok := byID[item.GetUserID()]; ok {
			item.SetUser(u)
		}
	}
	return nil
}
