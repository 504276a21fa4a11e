package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Side 定義參賽者立場的類型
type Side string

const (
	SidePro Side = "pro" // 正方
	SideCon Side = "con" // 反方
)

// Valid 檢查立場是否為合法值
func (s Side) Valid() bool {
	return s == SidePro || s == SideCon
}

// Opposite 回傳對立的立場
func (s Side) Opposite() Side {
	if s == SidePro {
		return SideCon
	}
	return SidePro
}

// Debate 表示一場辯論
type Debate struct {
	ID         string   `gorm:"type:uuid;primaryKey" json:"id"`
	TopicText  string   `gorm:"not null" json:"topic_text"`
	DebateDate DateOnly `gorm:"not null" json:"debate_date"`
	WinnerSide *Side    `gorm:"type:varchar(10)" json:"winner_side"` // 勝方，只能透過專用操作設定
	Notes      *string  `gorm:"type:text" json:"notes"`
	CreatedBy  *string  `gorm:"type:uuid" json:"created_by"`
}

func (d *Debate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DebateParticipant 表示辯論的參賽者
// 每組 (debate_id, user_id) 至多一筆，重複加入時改為更新立場
type DebateParticipant struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DebateID string `gorm:"type:uuid;not null;uniqueIndex:idx_debate_user" json:"debate_id"`
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_debate_user" json:"user_id"`
	Side     Side   `gorm:"type:varchar(10);not null" json:"side"`
}
