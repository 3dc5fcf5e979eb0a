package models

import (
	"errors"
	"fmt"

	"website/global"
	"website/models/res"

	"gorm.io/gorm"
)

// BoardModel 讨论区板块
type BoardModel struct {
	MODEL        `json:","`
	Name         string `json:"name" gorm:"size:100" validate:"required,max=100"` // 板块名称
	Description  string `json:"description" gorm:"size:500"`                      // 板块描述
	DisplayOrder int    `json:"display_order"`                                    // 展示顺序
	Topics       int64  `json:"topics"`                                           // 主题数
}

// TopicModel 讨论主题
type TopicModel struct {
	MODEL   `json:","`
	BoardID string     `json:"board_id" gorm:"size:24;index"`                     // 所属板块
	UserID  string     `json:"user_id" gorm:"size:24"`                            // 发帖人
	Title   string     `json:"title" gorm:"size:200" validate:"required,max=200"` // 主题标题
	Content string     `json:"content"`                                           // 主题内容
	Replies int64      `json:"replies"`                                           // 回复数
	User    *UserModel `json:"user" gorm:"-"`                                     // 发帖人信息，渲染前批量装配
}

// ReplyModel 主题回复
type ReplyModel struct {
	MODEL   `json:","`
	TopicID string     `json:"topic_id" gorm:"size:24;index"` // 所属主题
	UserID  string     `json:"user_id" gorm:"size:24"`        // 回复人
	Content string     `json:"content"`                       // 回复内容
	User    *UserModel `json:"user" gorm:"-"`                 // 回复人信息，渲染前批量装配
}

// GetUserID 实现UserBound
func (t *TopicModel) GetUserID() string { return t.UserID }

// SetUser 实现UserBound
func (t *TopicModel) SetUser(u *UserModel) { t.User = u }

// GetUserID 实现UserBound
func (r *ReplyModel) GetUserID() string { return r.UserID }

// SetUser 实现UserBound
func (r *ReplyModel) SetUser(u *UserModel) { r.User = u }

// GetBoards 获取全部板块，按展示顺序排列
func GetBoards() ([]BoardModel, error) {
	var boards []BoardModel
	err := global.DB.Order("display_order asc").Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("查询板块列表失败: %w", err)
	}
	return boards, nil
}

// GetBoard 按ID获取板块
func GetBoard(id string) (*BoardModel, error) {
	var board BoardModel
	err := global.DB.Take(&board, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("板块")
	}
	if err != nil {
		return nil, fmt.Errorf("查询板块失败: %w", err)
	}
	return &board, nil
}

// GetTopics 按板块分页获取主题，并回填游标总数
func GetTopics(boardID string, page *Page) ([]*TopicModel, error) {
	query := global.DB.Model(&TopicModel{}).Where("board_id = ?", boardID)

	if err := query.Count(&page.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("统计主题数失败: %w", err)
	}

	var topics []*TopicModel
	err := query.
		Order("updated_at desc").
		Limit(page.ItemsPerPage).
		Offset(page.Offset()).
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("查询主题列表失败: %w", err)
	}
	return topics, nil
}

// GetTopic 按ID获取主题
func GetTopic(id string) (*TopicModel, error) {
	var topic TopicModel
	err := global.DB.Take(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("主题")
	}
	if err != nil {
		return nil, fmt.Errorf("查询主题失败: %w", err)
	}
	return &topic, nil
}

// GetReply 按ID获取回复
func GetReply(id string) (*ReplyModel, error) {
	var reply ReplyModel
	err := global.DB.Take(&reply, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, res.NotFoundErr("回复")
	}
	if err != nil {
		return nil, fmt.Errorf("查询回复失败: %w", err)
	}
	return &reply, nil
}

// CountRepliesBefore 统计同主题内排在该回复之前的回复数
// 回复ID按生成顺序单调递增，ID序即回复的展示序
func CountRepliesBefore(reply *ReplyModel) (int64, error) {
	var count int64
	err := global.DB.Model(&ReplyModel{}).
		Where("topic_id = ? AND id < ?", reply.TopicID, reply.ID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计回复位置失败: %w", err)
	}
	return count, nil
}

// GetReplies 按主题分页获取回复，并回填游标总数
func GetReplies(topicID string, page *Page) ([]*ReplyModel, error) {
	query := global.DB.Model(&ReplyModel{}).Where("topic_id = ?", topicID)

	if err := query.Count(&page.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("统计回复数失败: %w", err)
	}

	var replies []*ReplyModel
	err := query.
		Order("created_at asc").
		Limit(page.ItemsPerPage).
		Offset(page.Offset()).
		Find(&replies).Error
	if err != nil {
		return nil, fmt.Errorf("查询回复列表失败: %w", err)
	}
	return replies, nil
}
