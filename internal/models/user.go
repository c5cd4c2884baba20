package models

// User 后台账号表
type User struct {
	ID       uint   `gorm:"primarykey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // 明文或 bcrypt 哈希，永不返回给前端
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
