package models

import "time"

// ContactSubmission 联系表单提交记录，只追加
type ContactSubmission struct {
	ID      uint      `gorm:"primarykey;autoIncrement" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Subject string    `gorm:"not null" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Date    time.Time `gorm:"not null;index" json:"date"`
	Status  string    `gorm:"not null;default:'new'" json:"status"`
}

// TableName 指定表名
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
