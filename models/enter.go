package models

import (
	"time"

	"website/models/ctypes"
	"website/utils"

	"gorm.io/gorm"
)

// MODEL 公共字段
type MODEL struct {
	ID        string         `gorm:"primaryKey;size:24" json:"id"`
	CreatedAt ctypes.MyTime  `json:"created_at"` // 创建时间
	UpdatedAt ctypes.MyTime  `json:"updated_at"` // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate 生成雪花ID并补齐时间字段，兼容没有列默认值的数据库
func (m *MODEL) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	now := ctypes.MyTime(time.Now())
	if time.Time(m.CreatedAt).IsZero() {
		m.CreatedAt = now
	}
	if time.Time(m.UpdatedAt).IsZero() {
		m.UpdatedAt = now
	}
	return nil
}

// Page 统一分页游标，分类列表、讨论区、搜索共用
type Page struct {
	PageIndex    int   `json:"page_index"`     // 页码，从1开始
	ItemsPerPage int   `json:"items_per_page"` // 每页条数
	TotalItems   int64 `json:"total_items"`    // 总条数，计数完成后回填
}

// NewPage 创建分页游标
func NewPage(index, itemsPerPage int) *Page {
	if index < 1 {
		index = 1
	}
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}
	return &Page{PageIndex: index, ItemsPerPage: itemsPerPage}
}

// Offset 查询偏移量
func (p *Page) Offset() int {
	return (p.PageIndex - 1) * p.ItemsPerPage
}

// TotalPages 总页数
func (p *Page) TotalPages() int64 {
	if p.ItemsPerPage == 0 {
		return 0
	}
	return (p.TotalItems + int64(p.ItemsPerPage) - 1) / int64(p.ItemsPerPage)
}
