package models

// ChatbotQa 聊天机器人问答条目
type ChatbotQa struct {
	ID       uint        `gorm:"primarykey;autoIncrement" json:"id"`
	Language string      `gorm:"not null;default:'fr';index" json:"language"`
	Keywords StringArray `gorm:"type:json;not null" json:"keywords"`
	Question string      `gorm:"type:text;not null" json:"question"`
	Answer   string      `gorm:"type:text;not null" json:"answer"`
}

// TableName 指定表名
func (ChatbotQa) TableName() string {
	return "chatbot_qas"
}

// Clone 返回独立副本
func (q ChatbotQa) Clone() ChatbotQa {
	q.Keywords = q.Keywords.Clone()
	return q
}
