package models

import (
	"fmt"

	"website/global"
)

// CommentRefType 评论引用目标类型
type CommentRefType string

const (
	RefArticle  CommentRefType = "article"
	RefWiki     CommentRefType = "wiki"
	RefWikiPage CommentRefType = "wikipage"
)

// CommentModel 评论模型，只能通过评论提交管道创建，创建后不再修改
type CommentModel struct {
	MODEL    `json:","`
	RefType  CommentRefType `json:"ref_type" gorm:"size:20;index:idx_ref"` // 引用目标类型
	RefID    string         `json:"ref_id" gorm:"size:24;index:idx_ref"`   // 引用目标ID
	UserID   string         `json:"user_id" gorm:"size:24"`                // 评论人
	UserName string         `json:"user_name" gorm:"size:100"`             // 评论人昵称快照
	Content  string         `json:"content"`                               // 评论内容（已消毒）
}

// CreateComment 持久化评论，ID由调用方（管道）生成
func CreateComment(comment *CommentModel) error {
	if err := global.DB.Create(comment).Error; err != nil {
		return fmt.Errorf("创建评论失败: %w", err)
	}
	return nil
}

// GetCommentsByRef 获取目标下的全部评论，按时间正序
func GetCommentsByRef(refID string) ([]CommentModel, error) {
	var comments []CommentModel
	err := global.DB.
		Where("ref_id = ?", refID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	return comments, nil
}
