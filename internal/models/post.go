package models

import (
	"time"
)

// Post 博客文章表
type Post struct {
	ID       uint      `gorm:"primarykey;autoIncrement" json:"id"`          // 主键
	Title    string    `gorm:"not null" json:"title"`                       // 标题
	Slug     string    `gorm:"not null;index" json:"slug"`                  // 访问标识（唯一性由业务层保证）
	Excerpt  string    `gorm:"not null" json:"excerpt"`                     // 摘要
	Content  string    `gorm:"type:text;not null" json:"content"`           // HTML 正文
	ImageURL *string   `gorm:"column:image_url" json:"imageUrl"`            // 封面图地址
	Category string    `gorm:"not null" json:"category"`                    // 分类名称
	Date     time.Time `gorm:"not null;index" json:"date"`                  // 发布时间（服务端写入）
	AuthorID *uint     `gorm:"column:author_id" json:"authorId"`            // 作者
	Language string    `gorm:"not null;default:'fr';index" json:"language"` // 语言
	Image    *string   `json:"image"`                                       // 上传图片路径
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// Clone 返回独立副本
func (p Post) Clone() Post {
	p.ImageURL = cloneString(p.ImageURL)
	p.AuthorID = cloneUint(p.AuthorID)
	p.Image = cloneString(p.Image)
	return p
}

// PostPatch 文章局部更新，nil 字段保持原值
type PostPatch struct {
	Title    *string    `json:"title"`
	Slug     *string    `json:"slug"`
	Excerpt  *string    `json:"excerpt"`
	Content  *string    `json:"content"`
	ImageURL *string    `json:"imageUrl"`
	Category *string    `json:"category"`
	AuthorID *uint      `json:"authorId"`
	Language *string    `json:"language"`
	Image    *string    `json:"image"`
	Date     *time.Time `json:"-"` // 仅存储层可改写
}

// Apply 将非空字段合并到 post
func (p PostPatch) Apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.ImageURL != nil {
		post.ImageURL = cloneString(p.ImageURL)
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.AuthorID != nil {
		post.AuthorID = cloneUint(p.AuthorID)
	}
	if p.Language != nil {
		post.Language = *p.Language
	}
	if p.Image != nil {
		post.Image = cloneString(p.Image)
	}
	if p.Date != nil {
		post.Date = *p.Date
	}
}

// Columns 转换为 gorm 更新字段
func (p PostPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.Excerpt != nil {
		cols["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.AuthorID != nil {
		cols["author_id"] = *p.AuthorID
	}
	if p.Language != nil {
		cols["language"] = *p.Language
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	if p.Date != nil {
		cols["date"] = p.Date.UTC()
	}
	return cols
}
