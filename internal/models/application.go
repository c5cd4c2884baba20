package models

// Application 实验室应用展示表
type Application struct {
	ID          uint    `gorm:"primarykey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Icon        string  `gorm:"not null" json:"icon"` // 图标 class，例如 fas fa-robot
	URL         string  `gorm:"column:url;not null" json:"url"`
	Link        *string `json:"link"`
	Order       int     `gorm:"column:sort_order;not null;default:0;index" json:"order"` // 展示顺序，升序
	Language    string  `gorm:"not null;default:'fr';index" json:"language"`
}

// TableName 指定表名
func (Application) TableName() string {
	return "applications"
}

// Clone 返回独立副本
func (a Application) Clone() Application {
	a.Link = cloneString(a.Link)
	return a
}

// ApplicationPatch 应用局部更新
type ApplicationPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	URL         *string `json:"url"`
	Link        *string `json:"link"`
	Order       *int    `json:"order"`
	Language    *string `json:"language"`
}

// Apply 将非空字段合并到 app
func (p ApplicationPatch) Apply(app *Application) {
	if p.Title != nil {
		app.Title = *p.Title
	}
	if p.Description != nil {
		app.Description = *p.Description
	}
	if p.Icon != nil {
		app.Icon = *p.Icon
	}
	if p.URL != nil {
		app.URL = *p.URL
	}
	if p.Link != nil {
		app.Link = cloneString(p.Link)
	}
	if p.Order != nil {
		app.Order = *p.Order
	}
	if p.Language != nil {
		app.Language = *p.Language
	}
}

// Columns 转换为 gorm 更新字段
func (p ApplicationPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Icon != nil {
		cols["icon"] = *p.Icon
	}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.Link != nil {
		cols["link"] = *p.Link
	}
	if p.Order != nil {
		cols["sort_order"] = *p.Order
	}
	if p.Language != nil {
		cols["language"] = *p.Language
	}
	return cols
}
