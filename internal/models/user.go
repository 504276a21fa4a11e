package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 表示系統中的用戶
// Sid 為學號，在註冊完成後設定一次，之後不可變更（由 OAuth 流程把關，資料層不強制）
type User struct {
	ID    string  `gorm:"type:uuid;primaryKey" json:"id"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"` // 電子郵件，必須唯一
	Name  *string `json:"name"`
	Sid   *string `json:"sid"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
